// SPDX-License-Identifier: MIT

//go:build !ndarray_unchecked

package ndarray

// DefaultBorrowPolicy is the borrow policy of arrays created without an
// explicit WithCheckedBorrow / WithUncheckedBorrow option.
// Build with -tags ndarray_unchecked to default to Unchecked.
const DefaultBorrowPolicy = Checked
