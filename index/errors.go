// SPDX-License-Identifier: MIT

package index

import (
	"errors"

	"github.com/katalvlaran/ndarray/shape"
)

var (
	// ErrOutOfBounds is the shape package sentinel, re-exported so callers of
	// this package can match resolution failures without importing shape.
	ErrOutOfBounds = shape.ErrOutOfBounds

	// ErrMalformedMapVector indicates a map-vector whose length does not match
	// the source dimensionality, or whose placeholders repeat or leave a gap.
	ErrMalformedMapVector = errors.New("index: malformed map vector")

	// ErrInvalid indicates a zero-value Index or MapIndex (no kind set).
	ErrInvalid = errors.New("index: invalid index expression")
)
