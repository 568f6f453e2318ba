// SPDX-License-Identifier: MIT

package shape

import "errors"

// Sentinel errors for shape construction and coordinate translation.
// Callers match them with errors.Is; call sites wrap with context.
var (
	// ErrBadShape is returned when an extent is negative.
	ErrBadShape = errors.New("shape: invalid shape")

	// ErrOutOfBounds indicates a coordinate (or linear offset) outside the shape,
	// including a coordinate vector whose length differs from Dimension().
	ErrOutOfBounds = errors.New("shape: index out of bounds")

	// ErrMismatch indicates two shapes (or lengths) that must agree do not.
	ErrMismatch = errors.New("shape: shape mismatch")
)
