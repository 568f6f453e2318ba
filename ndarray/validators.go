// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - One canonical place for argument checks shared by constructors and
//     the free functions (Assign, Fill, Equal).
//   - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, O(1) or O(d), and allocate only on failure.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/ndarray/shape"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures s is usable as an array shape: non-nil and at least
// one-dimensional (the zero-dimensional case is normalized to {1} by shape.New).
//
// Complexity: O(1).
func ValidateShape(s shape.Shape) error {
	if s == nil {
		return validatorErrorf("ValidateShape: nil", ErrBadShape)
	}
	if s.Dimension() < 1 {
		return validatorErrorf("ValidateShape: dimension", ErrBadShape)
	}

	return nil
}

// ValidateNotNil ensures the array reference is usable.
//
// Inputs: any Array implementation.
// Returns ErrNilArray for a nil interface, a typed nil *Dense or a
// zero-value Dense that was never constructed.
// Complexity: O(1).
func ValidateNotNil[T any](a Array[T]) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}
	switch v := a.(type) {
	case *Dense[T]:
		if v == nil || v.cur.Load() == nil {
			return validatorErrorf("ValidateNotNil", ErrNilArray)
		}
	case *View[T]:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilArray)
		}
	case *MapView[T]:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilArray)
		}
	}

	return nil
}

// ValidatePair ensures dst and src are non-nil and have equal shapes.
//
// Errors: ErrNilArray, ErrShapeMismatch.
// Complexity: O(d).
func ValidatePair[T any](dst, src Array[T]) error {
	if err := ValidateNotNil(dst); err != nil {
		return validatorErrorf("ValidatePair: dst", err)
	}
	if err := ValidateNotNil(src); err != nil {
		return validatorErrorf("ValidatePair: src", err)
	}
	if !shape.Equal(dst.Shape(), src.Shape()) {
		return validatorErrorf(
			fmt.Sprintf("ValidatePair: %v vs %v", dst.Shape(), src.Shape()),
			ErrShapeMismatch,
		)
	}

	return nil
}
