// SPDX-License-Identifier: MIT

//go:build ndarray_unchecked

package ndarray

// DefaultBorrowPolicy is the borrow policy of arrays created without an
// explicit WithCheckedBorrow / WithUncheckedBorrow option.
// This build (ndarray_unchecked) skips dangling-view detection by default.
const DefaultBorrowPolicy = Unchecked
