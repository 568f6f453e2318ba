// SPDX-License-Identifier: MIT

// Package ndarray: the Array capability and free functions over it.
// Callers program against Array[T]; Dense, View and MapView implement it.
// The interface is sealed (unexported method) because every implementation
// must address the same owner-controlled storage.

package ndarray

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ndarray/index"
	"github.com/katalvlaran/ndarray/shape"
)

// Array is the read/write capability shared by Dense, View and MapView.
type Array[T any] interface {
	// Shape returns the array's own shape (a view's shape, not the owner's).
	Shape() shape.Shape
	// Size returns Shape().Size().
	Size() int
	// Dimension returns Shape().Dimension().
	Dimension() int

	// At reads one element; negative coordinates count from the end.
	At(idx ...int) (T, error)
	// Set writes one element (through to the owner for views).
	Set(v T, idx ...int) error
	// Ref returns a pointer to one element of the owner's buffer.
	Ref(idx ...int) (*T, error)

	// Select narrows with one Index per axis and returns a strided view.
	Select(sel ...index.Index) (*View[T], error)
	// Map applies a map-vector and returns an indirected view.
	Map(mv ...index.MapIndex) (*MapView[T], error)
	// Diagonal merges equal-length axes into one.
	Diagonal(axes ...int) (*MapView[T], error)

	// All lazily yields (coordinates, value) in row-major order.
	All() iter.Seq2[[]int, T]
	// Values returns a row-major copy of every element.
	Values() ([]T, error)
	// Clone materializes the array into a new, independent Dense.
	Clone() (*Dense[T], error)

	snapshot() (borrow[T], *layout, error)
}

// Compile-time assertions.
var (
	_ Array[float64] = (*Dense[float64])(nil)
	_ Array[float64] = (*View[float64])(nil)
	_ Array[float64] = (*MapView[float64])(nil)
)

// Assign copies src into dst element-wise in row-major order.
//
// Implementation:
//   - Stage 1: validate both arrays and require equal shapes.
//   - Stage 2: read every src value first (src and dst may alias).
//   - Stage 3: write the values through dst's layout.
//
// Errors:
//   - ErrNilArray, ErrShapeMismatch, ErrDanglingBorrow, ErrReleased.
//
// Complexity:
//   - Time O(n·d), Space O(n).
func Assign[T any](dst, src Array[T]) error {
	if err := ValidatePair(dst, src); err != nil {
		return fmt.Errorf("ndarray.Assign: %w", err)
	}
	vals, err := src.Values()
	if err != nil {
		return fmt.Errorf("ndarray.Assign: source: %w", err)
	}
	b, lay, err := dst.snapshot()
	if err != nil {
		return fmt.Errorf("ndarray.Assign: destination: %w", err)
	}
	data, err := b.data()
	if err != nil {
		return fmt.Errorf("ndarray.Assign: destination: %w", err)
	}
	for lin, idx := range shape.All(lay.shape) {
		data[lay.offsetOf(idx)] = vals[lin]
	}

	return nil
}

// Fill sets every element of a to v.
func Fill[T any](a Array[T], v T) error {
	if err := ValidateNotNil(a); err != nil {
		return fmt.Errorf("ndarray.Fill: %w", err)
	}
	b, lay, err := a.snapshot()
	if err != nil {
		return fmt.Errorf("ndarray.Fill: %w", err)
	}
	data, err := b.data()
	if err != nil {
		return fmt.Errorf("ndarray.Fill: %w", err)
	}
	for _, idx := range shape.All(lay.shape) {
		data[lay.offsetOf(idx)] = v
	}

	return nil
}

// Equal reports whether a and b have equal shapes and equal elements.
func Equal[T comparable](a, b Array[T]) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("ndarray.Equal: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("ndarray.Equal: %w", err)
	}
	if !shape.Equal(a.Shape(), b.Shape()) {
		return false, nil
	}
	av, err := a.Values()
	if err != nil {
		return false, fmt.Errorf("ndarray.Equal: %w", err)
	}
	bv, err := b.Values()
	if err != nil {
		return false, fmt.Errorf("ndarray.Equal: %w", err)
	}
	for i := range av {
		if av[i] != bv[i] {
			return false, nil
		}
	}

	return true, nil
}
