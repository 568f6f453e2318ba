// SPDX-License-Identifier: MIT

package ndarray

// Test bridge (white-box) for layout internals.
//
// Purpose:
//   - Let ndarray_test check how a view addresses its owner (strided vs
//     indirected axes, shared tables) without widening the production API.
//   - Compiled only with the package's tests (file name ends in _test.go).

// PanicBorrowPolicyInvalid_TestOnly avoids a magic string in tests.
const PanicBorrowPolicyInvalid_TestOnly = panicBorrowPolicyInvalid

// LayoutSnapshot is a read-only copy of a view's addressing.
type LayoutSnapshot struct {
	Base    int
	Strides []int   // 0 for indirected axes
	Tables  [][]int // nil for strided axes
}

// LayoutOf_TestOnly returns the addressing of a (identity layout for a Dense).
func LayoutOf_TestOnly[T any](a Array[T]) (LayoutSnapshot, error) {
	_, lay, err := a.snapshot()
	if err != nil {
		return LayoutSnapshot{}, err
	}
	out := LayoutSnapshot{Base: lay.base}
	for _, ax := range lay.axes {
		out.Strides = append(out.Strides, ax.stride)
		out.Tables = append(out.Tables, ax.table)
	}

	return out, nil
}
