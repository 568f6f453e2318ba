// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set and error classification.
// Every fallible operation returns one of these sentinels wrapped with
// method context ("Dense.At(1,7): ..."); tests match them via errors.Is.
// No method panics on user-triggered conditions.

package ndarray

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndarray/index"
	"github.com/katalvlaran/ndarray/shape"
)

var (
	// ErrIndexOutOfBounds indicates a coordinate or selection outside its axis,
	// or a coordinate vector of the wrong length.
	ErrIndexOutOfBounds = shape.ErrOutOfBounds

	// ErrMalformedMapVector indicates a map-vector that does not fit the source
	// (length mismatch, duplicate or gapped placeholders).
	ErrMalformedMapVector = index.ErrMalformedMapVector

	// ErrShapeMismatch indicates two shapes that must agree do not
	// (Reshape to a different size, FromSlice length, Assign).
	ErrShapeMismatch = shape.ErrMismatch

	// ErrBadShape indicates an invalid shape (negative extent or nil shape).
	ErrBadShape = shape.ErrBadShape

	// ErrDanglingBorrow is reported under the Checked borrow policy when a view
	// is used after its array was reshaped, resized or released.
	ErrDanglingBorrow = errors.New("ndarray: view outlived its array storage")

	// ErrReleased indicates use of a Dense after Release.
	ErrReleased = errors.New("ndarray: array released")

	// ErrNilArray indicates a nil array (or a zero-value Dense) argument.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrNilFunc indicates a nil generator or visitor function.
	ErrNilFunc = errors.New("ndarray: nil function")
)

//go:generate go tool stringer -type=ErrorKind,BorrowPolicy -trimprefix=Kind -output=enums_string.go

// ErrorKind classifies errors returned by this module.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindUnknown is any error not produced by this module.
	KindUnknown
	KindIndexOutOfBounds
	KindMalformedMapVector
	KindShapeMismatch
	KindDanglingBorrow
	// KindInvalidArgument covers bad shapes, nil arrays/functions and
	// zero-value index expressions: caller bugs reported as errors.
	KindInvalidArgument
)

// KindOf returns the ErrorKind of err by matching the sentinels with errors.Is.
// ErrReleased is a use-after-destroy and therefore a KindDanglingBorrow.
// Bad shapes, nil arguments and index.ErrInvalid are KindInvalidArgument.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrIndexOutOfBounds):
		return KindIndexOutOfBounds
	case errors.Is(err, ErrMalformedMapVector):
		return KindMalformedMapVector
	case errors.Is(err, ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, ErrDanglingBorrow), errors.Is(err, ErrReleased):
		return KindDanglingBorrow
	case errors.Is(err, ErrBadShape), errors.Is(err, ErrNilArray),
		errors.Is(err, ErrNilFunc), errors.Is(err, index.ErrInvalid):
		return KindInvalidArgument
	}

	return KindUnknown
}

// coordErrorf wraps err with "<Type>.<method>(c0,c1,...)" context.
func coordErrorf(typ, method string, idx []int, err error) error {
	return fmt.Errorf("%s.%s%s: %w", typ, method, coords(idx), err)
}

// coords renders a coordinate vector as "(1,2,3)".
func coords(idx []int) string {
	b := make([]byte, 0, 2+4*len(idx))
	b = append(b, '(')
	for i, v := range idx {
		if i > 0 {
			b = append(b, ',')
		}
		b = fmt.Appendf(b, "%d", v)
	}

	return string(append(b, ')'))
}
