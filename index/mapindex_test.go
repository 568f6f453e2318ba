package index_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/ndarray/index"
	"github.com/katalvlaran/ndarray/shape"
	"github.com/stretchr/testify/require"
)

// TestCompile_Transpose: {_1, _0} on {3,4} yields {4,3} with swapped terms.
func TestCompile_Transpose(t *testing.T) {
	mp, err := index.Compile([]index.MapIndex{index.P1, index.P0}, shape.Must(3, 4))
	require.NoError(t, err)
	require.Equal(t, []int{4, 3}, mp.Out.Extents())
	require.Empty(t, mp.Pins)
	require.Len(t, mp.Axes, 2)
	require.Equal(t, 1, mp.Axes[0][0].Axis, spew.Sdump(mp.Axes))
	require.Equal(t, 0, mp.Axes[1][0].Axis)
}

// TestCompile_ScalarCollapses: scalar selections pin an axis and do not count.
func TestCompile_ScalarCollapses(t *testing.T) {
	src := shape.Must(2, 3, 4)
	mp, err := index.Compile([]index.MapIndex{
		index.Select(index.At(1)),
		index.P0,
		index.Select(index.Range(1, 3)),
	}, src)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, mp.Out.Extents())
	require.Equal(t, []index.Pin{{Axis: 0, Pos: 1}}, mp.Pins)
	require.Equal(t, 1, mp.Axes[0][0].Axis)
	require.Equal(t, 2, mp.Axes[1][0].Axis)
	require.Equal(t, []int{1, 2}, mp.Axes[1][0].Plan.Materialize())
}

// TestCompile_PlaceholderAfterSelection: selections fill the free slots in source order.
func TestCompile_PlaceholderAfterSelection(t *testing.T) {
	mp, err := index.Compile([]index.MapIndex{
		index.Select(index.List(2, 0)),
		index.P0,
	}, shape.Must(3, 5))
	require.NoError(t, err)
	require.Equal(t, []int{5, 2}, mp.Out.Extents())
	require.Equal(t, 1, mp.Axes[0][0].Axis)
	require.Equal(t, 0, mp.Axes[1][0].Axis)
}

func TestCompile_AllCollapsedIsScalarShape(t *testing.T) {
	mp, err := index.Compile([]index.MapIndex{index.Select(index.At(0)), index.Select(index.At(-1))}, shape.Must(2, 2))
	require.NoError(t, err)
	require.True(t, shape.Equal(shape.Scalar(), mp.Out))
	require.Len(t, mp.Axes, 1)
	require.Empty(t, mp.Axes[0])
	require.Len(t, mp.Pins, 2)
}

func TestCompile_Malformed(t *testing.T) {
	src := shape.Must(3, 4)
	cases := map[string][]index.MapIndex{
		"duplicate":          {index.P0, index.P0},
		"gap":                {index.P0, index.P2},
		"gap after collapse": {index.Select(index.At(0)), index.P1},
		"too short":          {index.P0},
		"too long":           {index.P0, index.P1, index.P2},
		"negative":           {index.Placeholder(-1), index.P0},
	}
	for name, mv := range cases {
		t.Run(name, func(t *testing.T) {
			mp, err := index.Compile(mv, src)
			require.ErrorIs(t, err, index.ErrMalformedMapVector)
			require.Nil(t, mp)
		})
	}
}

func TestCompile_PropagatesBoundsAndInvalid(t *testing.T) {
	_, err := index.Compile([]index.MapIndex{index.Select(index.At(3)), index.P0}, shape.Must(3, 4))
	require.ErrorIs(t, err, index.ErrOutOfBounds)

	_, err = index.Compile([]index.MapIndex{{}, index.P0}, shape.Must(3, 4))
	require.ErrorIs(t, err, index.ErrInvalid)
}

func TestDiagonal(t *testing.T) {
	mp, err := index.Diagonal(shape.Must(2, 3, 3), 2, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, mp.Out.Extents())
	require.Len(t, mp.Axes[1], 2)
	require.Equal(t, 2, mp.Axes[1][0].Axis)
	require.Equal(t, 1, mp.Axes[1][1].Axis)

	_, err = index.Diagonal(shape.Must(2, 3), 0, 1)
	require.ErrorIs(t, err, shape.ErrMismatch)

	_, err = index.Diagonal(shape.Must(3, 3), 0, 0)
	require.ErrorIs(t, err, index.ErrMalformedMapVector)

	_, err = index.Diagonal(shape.Must(3, 3), 0, 2)
	require.ErrorIs(t, err, index.ErrMalformedMapVector)

	_, err = index.Diagonal(shape.Must(3, 3))
	require.ErrorIs(t, err, index.ErrMalformedMapVector)
}

func TestMapIndex_Accessors(t *testing.T) {
	m := index.Placeholder(2)
	require.True(t, m.IsPlaceholder())
	require.Equal(t, 2, m.To())

	s := index.Select(index.Range(0, 2))
	require.False(t, s.IsPlaceholder())
	require.Equal(t, index.KindRange, s.Index().Kind())
	require.Equal(t, "[0:2)", s.String())
}
