// Package shape describes the extents of an N-dimensional array and the
// row-major (C-order) strides derived from them.
//
// What:
//
//   - Shape is the capability every array, view and map view exposes:
//     Dimension, Size, Zero, per-axis Extent and Offset (stride).
//   - Fixed[E] stores extents in a Go array type E ([1]int … [4]int), so the
//     dimensionality is part of the type and known at compile time.
//   - Dynamic stores extents in slices for any run-time dimensionality.
//   - New picks the densest representation for a given extent list.
//
// Zero-dimensional shapes:
//
//	A 0-dimensional shape is modeled as a 1-dimensional shape of extent {1}
//	(a scalar is a length-1 array). New() and Scalar() both return it.
//	Uniform indexing code relies on Dimension() >= 1; do not "fix" this.
//
// Layout:
//
//	offset[dim-1] == 1
//	offset[i]     == offset[i+1] * extent[i+1]
//	size          == extent[0] * offset[0]   (0 when any extent is 0)
//
// Generic primitives (Linear, Unravel, RowMajorStrides, All, Each) carry no
// array types and can be reused by table-like consumers directly.
//
// Errors:
//
//   - ErrBadShape: negative extent.
//   - ErrOutOfBounds: coordinate or linear offset outside the shape.
//   - ErrMismatch: two shapes were required to agree and did not.
package shape
