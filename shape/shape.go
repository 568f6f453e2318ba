// SPDX-License-Identifier: MIT

// Package shape - the Shape capability, constructors and generic primitives.
//
// Purpose:
//   - One interface (Shape) implemented by the fixed- and dynamic-dimension variants.
//   - A single constructor (New) that applies the 0-dim → {1} normalization.
//   - Offset math shared by arrays, views and external table-like consumers.
//
// Complexity quicksheet:
//   - New: O(d); Linear/Unravel: O(d); All/Each: O(size·d) amortized O(size).

package shape

import (
	"fmt"
	"iter"
)

// Shape is the read-only description of an N-dimensional row-major layout.
//
// Implementations are immutable values. Extents and Offsets return copies.
// Extent and Offset panic on an axis outside [0, Dimension()), like a slice
// index: the axis number is a programmer choice, not user data.
type Shape interface {
	// Dimension returns the number of axes (always >= 1).
	Dimension() int

	// Size returns the number of elements (product of extents).
	Size() int

	// Zero returns the all-zero coordinate vector of length Dimension().
	Zero() []int

	// Extent returns the length of the given axis.
	Extent(axis int) int

	// Offset returns the stride of the given axis, in elements.
	Offset(axis int) int

	// Extents returns a copy of all axis lengths.
	Extents() []int

	// Offsets returns a copy of all strides.
	Offsets() []int

	fmt.Stringer
}

// Compile-time assertions.
var (
	_ Shape = Fixed[[1]int]{}
	_ Shape = Fixed[[2]int]{}
	_ Shape = Fixed[[3]int]{}
	_ Shape = Fixed[[4]int]{}
	_ Shape = Dynamic{}
)

// MaxFixedDimension is the largest dimensionality New stores as a Fixed shape.
const MaxFixedDimension = 4

// New builds a Shape from extents.
//
// Implementation:
//   - Stage 1: zero extents → Scalar() (the {1} normalization).
//   - Stage 2: 1..MaxFixedDimension extents → Fixed[[N]int].
//   - Stage 3: more extents → Dynamic.
//
// Errors:
//   - ErrBadShape when any extent is negative or the element count
//     does not fit in an int.
//
// Complexity:
//   - Time O(d), Space O(d).
func New(extents ...int) (Shape, error) {
	var (
		s   Shape
		err error
	)
	switch len(extents) {
	case 0:
		return Scalar(), nil
	case 1:
		f, e := NewFixed([1]int{extents[0]})
		s, err = f, e
	case 2:
		f, e := NewFixed([2]int{extents[0], extents[1]})
		s, err = f, e
	case 3:
		f, e := NewFixed([3]int{extents[0], extents[1], extents[2]})
		s, err = f, e
	case 4:
		f, e := NewFixed([4]int{extents[0], extents[1], extents[2], extents[3]})
		s, err = f, e
	default:
		var d Dynamic
		d, err = NewDynamic(extents)
		s = d
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Must is New for literals in tests and examples; it panics on error.
func Must(extents ...int) Shape {
	s, err := New(extents...)
	if err != nil {
		panic(err)
	}

	return s
}

// Scalar returns the normalized 0-dimensional shape: one axis of extent 1.
func Scalar() Shape {
	return Fixed[[1]int]{extent: [1]int{1}, offset: [1]int{1}, size: 1}
}

// RowMajorStrides computes C-order strides for extents in one pass from the
// last axis to the first. Negative extents are not checked here.
func RowMajorStrides(extents ...int) []int {
	strides := make([]int, len(extents))
	acc := 1
	for i := len(extents) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= extents[i]
	}

	return strides
}

// Linear translates a resolved coordinate vector into a flat row-major offset.
// Negative coordinates are rejected: they must be resolved by the caller.
//
// Errors:
//   - ErrOutOfBounds when len(idx) != s.Dimension() or any idx[i] ∉ [0, extent[i]).
func Linear(s Shape, idx []int) (int, error) {
	if len(idx) != s.Dimension() {
		return 0, fmt.Errorf("shape.Linear: %d indices for %d axes: %w", len(idx), s.Dimension(), ErrOutOfBounds)
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= s.Extent(axis) {
			return 0, fmt.Errorf("shape.Linear: axis %d index %d (extent %d): %w", axis, i, s.Extent(axis), ErrOutOfBounds)
		}
		off += i * s.Offset(axis)
	}

	return off, nil
}

// Unravel is the inverse of Linear.
func Unravel(s Shape, lin int) ([]int, error) {
	if lin < 0 || lin >= s.Size() {
		return nil, fmt.Errorf("shape.Unravel(%d) size %d: %w", lin, s.Size(), ErrOutOfBounds)
	}
	idx := make([]int, s.Dimension())
	for axis := range idx {
		st := s.Offset(axis)
		idx[axis] = lin / st
		lin %= st
	}

	return idx, nil
}

// Equal reports whether a and b have the same dimensionality and extents.
// The concrete representation (Fixed vs Dynamic) is irrelevant.
func Equal(a, b Shape) bool {
	if a.Dimension() != b.Dimension() {
		return false
	}
	for axis := 0; axis < a.Dimension(); axis++ {
		if a.Extent(axis) != b.Extent(axis) {
			return false
		}
	}

	return true
}

// SameSize returns ErrMismatch (wrapped) unless a and b hold the same number of elements.
func SameSize(a, b Shape) error {
	if a.Size() != b.Size() {
		return fmt.Errorf("shape.SameSize: %v (%d) vs %v (%d): %w", a, a.Size(), b, b.Size(), ErrMismatch)
	}

	return nil
}

// All iterates every coordinate of s in row-major order, yielding the linear
// offset and the coordinate vector. The yielded slice is owned by the
// iterator and reused between steps: copy it to retain it.
// A zero-size shape yields nothing. The sequence is restartable.
func All(s Shape) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		n := s.Size()
		if n == 0 {
			return
		}
		ext := s.Extents()
		idx := make([]int, len(ext))
		for lin := 0; lin < n; lin++ {
			if !yield(lin, idx) {
				return
			}
			for axis := len(idx) - 1; axis >= 0; axis-- {
				idx[axis]++
				if idx[axis] < ext[axis] {
					break
				}
				idx[axis] = 0
			}
		}
	}
}

// Each calls fn for every coordinate of s in row-major order until fn returns false.
func Each(s Shape, fn func(lin int, idx []int) bool) {
	for lin, idx := range All(s) {
		if !fn(lin, idx) {
			return
		}
	}
}

// format renders extents as "[e0 e1 ...]".
func format(extents []int) string {
	return fmt.Sprint(extents)
}
