// Package ndarray provides an owning N-dimensional array (Dense) and two
// kinds of non-owning views over it (View, MapView), all addressed through
// the index package's selection expressions.
//
// What:
//
//   - Dense[T] owns contiguous row-major storage plus its shape. The shape
//     may be Fixed (1..4 axes, dimensionality in the type) or Dynamic.
//   - At/Set/Ref address one element with scalar coordinates (negative
//     coordinates count from the end).
//   - Select narrows with index.Index values and returns a View: scalars
//     collapse their axis, ranges/full/lists keep it. Selecting with only
//     scalars yields the normalized {1} view.
//   - Map applies a map-vector (index.MapIndex) and returns a MapView that
//     can permute, drop or reorder axes; Diagonal merges equal-length axes.
//   - Views and map views can be re-indexed recursively; nested narrowing
//     is exact and associative.
//
// Borrowing:
//
//	A view borrows the storage record of the Dense it came from; it never
//	owns it. Reshape, Resize and Release install a new record, and every
//	outstanding view becomes dangling. Under the Checked borrow policy each
//	view access detects this and fails with ErrDanglingBorrow. Under
//	Unchecked nothing is detected: a dangling view keeps reading and writing
//	orphaned storage, which is undefined behavior by contract.
//
//	The build-wide default is DefaultBorrowPolicy (Checked; the
//	ndarray_unchecked build tag switches it to Unchecked). Individual arrays
//	override it with WithCheckedBorrow / WithUncheckedBorrow.
//
// Concurrency:
//
//	No goroutines, no locks around elements. Read-only sharing is safe.
//	Concurrent writers must be serialized by the caller, and an array must
//	not be reshaped, resized or released while its views are in use. The
//	(shape, storage) pair is swapped atomically, so a reader never observes
//	one without the other.
//
// Errors:
//
//   - ErrIndexOutOfBounds, ErrMalformedMapVector, ErrShapeMismatch,
//     ErrDanglingBorrow, ErrReleased, ErrBadShape, ErrNilArray, ErrNilFunc.
//   - KindOf classifies any returned error into an ErrorKind.
package ndarray
