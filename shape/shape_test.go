// Package shape_test verifies stride math, the {1} normalization and
// coordinate iteration of the shape package.
package shape_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndarray/shape"
	"github.com/stretchr/testify/require"
)

// TestNew_StridesAndSize checks size == Π extents and the row-major stride recurrence
// for both Fixed (d ≤ 4) and Dynamic (d > 4) representations.
func TestNew_StridesAndSize(t *testing.T) {
	cases := []struct {
		name    string
		extents []int
		size    int
		strides []int
	}{
		{"1d", []int{5}, 5, []int{1}},
		{"2d", []int{3, 4}, 12, []int{4, 1}},
		{"3d", []int{2, 3, 4}, 24, []int{12, 4, 1}},
		{"4d", []int{2, 1, 3, 2}, 12, []int{6, 6, 2, 1}},
		{"5d dynamic", []int{2, 2, 2, 2, 3}, 48, []int{24, 12, 6, 3, 1}},
		{"zero extent", []int{3, 0, 2}, 0, []int{0, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := shape.New(tc.extents...)
			require.NoError(t, err)
			require.Equal(t, len(tc.extents), s.Dimension())
			require.Equal(t, tc.size, s.Size())
			require.Equal(t, tc.extents, s.Extents())
			require.Equal(t, tc.strides, s.Offsets())

			d := s.Dimension()
			require.Equal(t, 1, s.Offset(d-1)) // innermost stride is always 1
			for i := 0; i < d-1; i++ {
				require.Equal(t, s.Offset(i+1)*s.Extent(i+1), s.Offset(i))
			}
			require.Equal(t, s.Extent(0)*s.Offset(0), s.Size())
		})
	}
}

// TestNew_Representation ensures New picks Fixed up to MaxFixedDimension and Dynamic beyond.
func TestNew_Representation(t *testing.T) {
	s2 := shape.Must(3, 4)
	_, ok := s2.(shape.Fixed[[2]int])
	require.True(t, ok, "2 axes should be Fixed[[2]int], got %T", s2)

	s4 := shape.Must(1, 2, 3, 4)
	_, ok = s4.(shape.Fixed[[4]int])
	require.True(t, ok)

	s5 := shape.Must(1, 2, 3, 4, 5)
	_, ok = s5.(shape.Dynamic)
	require.True(t, ok)
}

// TestScalarNormalization pins the 0-dim → {1} rule for every entry point.
func TestScalarNormalization(t *testing.T) {
	s, err := shape.New()
	require.NoError(t, err)
	require.Equal(t, 1, s.Dimension())
	require.Equal(t, 1, s.Size())
	require.Equal(t, []int{1}, s.Extents())
	require.True(t, shape.Equal(s, shape.Scalar()))

	d, err := shape.NewDynamic(nil)
	require.NoError(t, err)
	require.True(t, shape.Equal(d, shape.Scalar()))
}

// TestNew_BadShape covers negative extents and element counts that overflow int.
func TestNew_BadShape(t *testing.T) {
	const big = math.MaxInt/2 + 1
	cases := map[string][]int{
		"negative 2d":             {3, -1},
		"negative 5d":             {1, 1, 1, 1, -2},
		"overflow wraps to zero":  {1 << 32, 1 << 32},
		"overflow goes negative":  {3, 1 << 62},
		"overflow behind zero":    {0, big, 4},
		"overflow 5d":             {2, 1, 1, 1, big},
		"overflow 4d last factor": {big, 1, 1, 2},
	}
	for name, extents := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := shape.New(extents...)
			require.ErrorIs(t, err, shape.ErrBadShape)
			require.Nil(t, s)
		})
	}

	_, err := shape.NewFixed([3]int{1, -1, 1})
	require.ErrorIs(t, err, shape.ErrBadShape)

	_, err = shape.NewDynamic([]int{big, 2, 1, 1, 1})
	require.ErrorIs(t, err, shape.ErrBadShape)

	require.Panics(t, func() { shape.Must(-1) })
}

// TestNew_LargestRepresentable accepts a size of exactly math.MaxInt.
func TestNew_LargestRepresentable(t *testing.T) {
	s, err := shape.New(math.MaxInt, 1)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, s.Size())

	s, err = shape.New(0, math.MaxInt)
	require.NoError(t, err)
	require.Zero(t, s.Size())
}

// TestOf builds each Fixed arity and checks it matches New.
func TestOf(t *testing.T) {
	s1, err := shape.Of1(5)
	require.NoError(t, err)
	require.Equal(t, [1]int{5}, s1.Array())

	s2, err := shape.Of2(2, 3)
	require.NoError(t, err)
	require.True(t, shape.Equal(shape.Must(2, 3), s2))
	require.Equal(t, []int{3, 1}, s2.Offsets())

	s3, err := shape.Of3(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 24, s3.Size())

	s4, err := shape.Of4(1, 2, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 4, s4.Dimension())

	_, err = shape.Of2(-1, 3)
	require.ErrorIs(t, err, shape.ErrBadShape)
	_, err = shape.Of2(1<<40, 1<<40)
	require.ErrorIs(t, err, shape.ErrBadShape)
}

func TestFixed_Array(t *testing.T) {
	f, err := shape.NewFixed([3]int{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, [3]int{2, 3, 4}, f.Array())
	require.Equal(t, []int{0, 0, 0}, f.Zero())
	require.Equal(t, "[2 3 4]", f.String())
}

// TestLinearUnravel_RoundTrip walks every coordinate and checks Linear/Unravel agree with All.
func TestLinearUnravel_RoundTrip(t *testing.T) {
	s := shape.Must(2, 3, 4)
	seen := 0
	for lin, idx := range shape.All(s) {
		off, err := shape.Linear(s, idx)
		require.NoError(t, err)
		require.Equal(t, lin, off)

		back, err := shape.Unravel(s, lin)
		require.NoError(t, err)
		require.Equal(t, idx, back)
		seen++
	}
	require.Equal(t, s.Size(), seen)
}

func TestLinear_OutOfBounds(t *testing.T) {
	s := shape.Must(3, 4)

	_, err := shape.Linear(s, []int{3, 0})
	require.ErrorIs(t, err, shape.ErrOutOfBounds)

	_, err = shape.Linear(s, []int{0, -1})
	require.ErrorIs(t, err, shape.ErrOutOfBounds)

	_, err = shape.Linear(s, []int{0})
	require.ErrorIs(t, err, shape.ErrOutOfBounds)

	_, err = shape.Unravel(s, 12)
	require.ErrorIs(t, err, shape.ErrOutOfBounds)
}

func TestEqualAndSameSize(t *testing.T) {
	a := shape.Must(2, 6)
	b, err := shape.NewDynamic([]int{2, 6})
	require.NoError(t, err)
	require.True(t, shape.Equal(a, b))
	require.False(t, shape.Equal(a, shape.Must(6, 2)))
	require.NoError(t, shape.SameSize(a, shape.Must(3, 4)))
	require.ErrorIs(t, shape.SameSize(a, shape.Must(5)), shape.ErrMismatch)
}

// TestAll_EarlyStopAndEmpty checks Each stops on false and zero-size shapes yield nothing.
func TestAll_EarlyStopAndEmpty(t *testing.T) {
	count := 0
	shape.Each(shape.Must(4, 4), func(lin int, _ []int) bool {
		count++
		return lin < 2
	})
	require.Equal(t, 3, count)

	for range shape.All(shape.Must(3, 0)) {
		t.Fatal("zero-size shape must not yield")
	}
}

func TestRowMajorStrides(t *testing.T) {
	require.Equal(t, []int{20, 5, 1}, shape.RowMajorStrides(3, 4, 5))
	require.Empty(t, shape.RowMajorStrides())
}
