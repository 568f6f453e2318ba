// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures: arrays whose element equals its linear position.

package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/ndarray/ndarray"
	"github.com/katalvlaran/ndarray/shape"
	"github.com/stretchr/testify/require"
)

// seq returns a Dense of the given extents with element == row-major position.
func seq(tb testing.TB, extents []int, opts ...ndarray.Option) *ndarray.Dense[int] {
	tb.Helper()
	s, err := shape.New(extents...)
	require.NoError(tb, err)
	m, err := ndarray.NewFunc(s, func(lin int, _ []int) int { return lin }, opts...)
	require.NoError(tb, err)

	return m
}

// values returns a.Values() or fails the test.
func values(tb testing.TB, a ndarray.Array[int]) []int {
	tb.Helper()
	vals, err := a.Values()
	require.NoError(tb, err)

	return vals
}

// at returns a.At(idx...) or fails the test.
func at(tb testing.TB, a ndarray.Array[int], idx ...int) int {
	tb.Helper()
	v, err := a.At(idx...)
	require.NoError(tb, err)

	return v
}
