// SPDX-License-Identifier: MIT

package ndarray

import "github.com/katalvlaran/ndarray/shape"

// releasedShape is reported by a Dense after Release.
var releasedShape = shape.Must(0)

// storage is one immutable (shape, data) record. A Dense swaps whole records
// atomically; it never mutates the shape or length of an installed record.
// Element values inside data are mutable.
type storage[T any] struct {
	shape    shape.Shape
	data     []T // len(data) == shape.Size()
	released bool
}

// borrow is a view's non-owning link to the record it was created over.
type borrow[T any] struct {
	owner   *Dense[T]
	st      *storage[T]
	checked bool
}

// data returns the borrowed buffer, or ErrDanglingBorrow when the policy is
// Checked and the owner has installed another record since the borrow.
func (b borrow[T]) data() ([]T, error) {
	if b.checked && b.owner.cur.Load() != b.st {
		return nil, ErrDanglingBorrow
	}

	return b.st.data, nil
}
