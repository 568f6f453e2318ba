// Package ndarray is an in-memory engine for N-dimensional arrays: an owning
// row-major container, no-copy views that narrow it, and map views that
// reorder, drop or merge its axes.
//
// What is in the module?
//
//	• shape/    Shape (fixed 1..4 axes or dynamic), row-major strides,
//	             linear offset ↔ coordinates, lazy coordinate iteration
//	• index/    selection expressions (scalar, range, full, list),
//	             their resolution into plans, map-vectors with placeholders
//	             and diagonal mappings
//	• ndarray/  Dense (owner), View (strided window), MapView (indirected
//	             window), the Array capability, borrow policy, error kinds
//
// Why this design?
//
//   - One addressing rule for every view: base + Σ per-axis contribution.
//   - Views of views resolve straight to the owner; nesting is exact.
//   - Dangling views are detected (Checked policy) or free (Unchecked).
//   - Pure Go, no cgo, no goroutines.
//
// Quick start:
//
//	m, _ := ndarray.FromSlice(shape.Must(2, 3), []int{1, 2, 3, 4, 5, 6})
//	row, _ := m.Select(index.At(1), index.Full())  // [4, 5, 6]
//	t, _ := m.Map(index.P1, index.P0)               // 3×2 transpose
//	d, _ := ndarray.New[int](shape.Must(3, 3))
//	diag, _ := d.Diagonal(0, 1)                     // length-3 view
//
// See examples/ for runnable scenarios.
package ndarray
