package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/ndarray/index"
	"github.com/katalvlaran/ndarray/ndarray"
	"github.com/katalvlaran/ndarray/shape"
	"github.com/stretchr/testify/require"
)

// TestAssign_AcrossViewKinds copies a transposed view into a strided one.
func TestAssign_AcrossViewKinds(t *testing.T) {
	src := seq(t, []int{2, 3})
	tr, err := src.Map(index.P1, index.P0)
	require.NoError(t, err)

	dst, err := ndarray.New[int](shape.Must(4, 4))
	require.NoError(t, err)
	win, err := dst.Select(index.Range(1, 4), index.Range(2, 4))
	require.NoError(t, err)

	require.NoError(t, ndarray.Assign[int](win, tr))
	require.Equal(t, []int{0, 3, 1, 4, 2, 5}, values(t, win))
	require.Equal(t, 5, at(t, dst, 3, 3))
	require.Equal(t, 0, at(t, dst, 0, 0))
}

// TestAssign_Aliasing: src is fully read before dst is written.
func TestAssign_Aliasing(t *testing.T) {
	m := seq(t, []int{2, 2})
	tr, err := m.Map(index.P1, index.P0)
	require.NoError(t, err)
	require.NoError(t, ndarray.Assign[int](m, tr))
	require.Equal(t, []int{0, 2, 1, 3}, values(t, m))
}

func TestAssign_Errors(t *testing.T) {
	a := seq(t, []int{2, 3})
	b := seq(t, []int{3, 2})
	err := ndarray.Assign[int](a, b)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	require.Equal(t, ndarray.KindShapeMismatch, ndarray.KindOf(err))

	require.ErrorIs(t, ndarray.Assign[int](nil, b), ndarray.ErrNilArray)

	var typedNil *ndarray.Dense[int]
	require.ErrorIs(t, ndarray.Assign[int](a, typedNil), ndarray.ErrNilArray)
	require.ErrorIs(t, ndarray.Assign[int](a, &ndarray.Dense[int]{}), ndarray.ErrNilArray)
}

func TestFill(t *testing.T) {
	m := seq(t, []int{2, 2})
	require.NoError(t, ndarray.Fill[int](m, 3))
	require.Equal(t, []int{3, 3, 3, 3}, values(t, m))

	require.ErrorIs(t, ndarray.Fill[int](nil, 0), ndarray.ErrNilArray)

	m.Release()
	require.ErrorIs(t, ndarray.Fill[int](m, 0), ndarray.ErrReleased)
}

func TestEqual(t *testing.T) {
	m := seq(t, []int{3, 3})
	tr, err := m.Map(index.P1, index.P0)
	require.NoError(t, err)

	ok, err := ndarray.Equal[int](m, m)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ndarray.Equal[int](m, tr)
	require.NoError(t, err)
	require.False(t, ok)

	sym, err := ndarray.FromSlice(shape.Must(2, 2), []int{1, 2, 2, 1})
	require.NoError(t, err)
	symT, err := sym.Map(index.P1, index.P0)
	require.NoError(t, err)
	ok, err = ndarray.Equal[int](sym, symT)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ndarray.Equal[int](m, seq(t, []int{9}))
	require.NoError(t, err)
	require.False(t, ok, "different shapes are not equal")

	_, err = ndarray.Equal[int](m, nil)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}

func TestValidators(t *testing.T) {
	require.ErrorIs(t, ndarray.ValidateShape(nil), ndarray.ErrBadShape)
	require.NoError(t, ndarray.ValidateShape(shape.Must(0)))

	var v *ndarray.View[int]
	require.ErrorIs(t, ndarray.ValidateNotNil[int](v), ndarray.ErrNilArray)
	var mv *ndarray.MapView[int]
	require.ErrorIs(t, ndarray.ValidateNotNil[int](mv), ndarray.ErrNilArray)
	require.NoError(t, ndarray.ValidateNotNil[int](seq(t, []int{1})))

	err := ndarray.ValidatePair[int](seq(t, []int{2}), seq(t, []int{3}))
	require.EqualError(t, err, "ValidatePair: [2] vs [3]: shape: shape mismatch")
}
