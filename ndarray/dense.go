// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Dense[T] is the owning n-dimensional array: one contiguous row-major
//     buffer plus its shape, swapped as a single record.
//   - Provide constructors (New, NewFill, NewFunc, FromSlice), O(d) element
//     access, view creation (Select, Map, Diagonal) and storage replacement
//     (Reshape, Resize, Release).
//
// Behavior highlights:
//   - Any operation that replaces the (shape, data) record does so with one
//     atomic store: readers observe either the old record or the new one.
//   - Views created before a replacement keep the old record; under the
//     Checked policy they fail with ErrDanglingBorrow, under Unchecked they
//     keep addressing the old buffer.
//   - Element writes are not synchronized; concurrent writers must coordinate.
//
// Errors:
//   - ErrIndexOutOfBounds, ErrShapeMismatch, ErrBadShape, ErrReleased, ErrNilFunc.
//
// Complexity:
//   - New/NewFill/NewFunc/FromSlice/Clone: O(n). At/Set/Ref: O(d).
//   - Select/Map/Diagonal: independent of n. Reshape: O(d). Resize: O(n).

package ndarray

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/katalvlaran/ndarray/index"
	"github.com/katalvlaran/ndarray/shape"
)

const (
	ctxDense   = "Dense"
	ctxNew     = "New"
	ctxReshape = "Reshape"
	ctxResize  = "Resize"
	ctxInduced = "Induced"
)

// Dense is an owning, row-major n-dimensional array.
// A Dense must not be copied after first use.
type Dense[T any] struct {
	cur    atomic.Pointer[storage[T]]
	policy BorrowPolicy
}

// New allocates a zero-filled array of shape s.
//
// Implementation:
//   - Stage 1: validate s (non-nil, at least one axis).
//   - Stage 2: resolve options (borrow policy).
//   - Stage 3: allocate s.Size() zero values and install the record.
//
// Errors:
//   - ErrBadShape for a nil or zero-dimensional shape.
func New[T any](s shape.Shape, opts ...Option) (*Dense[T], error) {
	if err := ValidateShape(s); err != nil {
		return nil, fmt.Errorf("ndarray.%s: %w", ctxNew, err)
	}
	o := gatherOptions(opts...)

	return newDense(s, make([]T, s.Size()), o.borrow), nil
}

// NewFill allocates an array of shape s with every element set to v.
func NewFill[T any](s shape.Shape, v T, opts ...Option) (*Dense[T], error) {
	m, err := New[T](s, opts...)
	if err != nil {
		return nil, err
	}
	data := m.cur.Load().data
	for i := range data {
		data[i] = v
	}

	return m, nil
}

// NewFunc allocates an array of shape s whose element at linear position lin
// (coordinates idx) is fn(lin, idx). fn is called exactly once per position,
// in row-major order; idx is reused between calls and must not be retained.
func NewFunc[T any](s shape.Shape, fn func(lin int, idx []int) T, opts ...Option) (*Dense[T], error) {
	if fn == nil {
		return nil, fmt.Errorf("ndarray.NewFunc: %w", ErrNilFunc)
	}
	m, err := New[T](s, opts...)
	if err != nil {
		return nil, err
	}
	data := m.cur.Load().data
	for lin, idx := range shape.All(s) {
		data[lin] = fn(lin, idx)
	}

	return m, nil
}

// FromSlice copies data (row-major) into a new array of shape s.
//
// Errors:
//   - ErrBadShape for a nil shape; ErrShapeMismatch if len(data) != s.Size().
func FromSlice[T any](s shape.Shape, data []T, opts ...Option) (*Dense[T], error) {
	if err := ValidateShape(s); err != nil {
		return nil, fmt.Errorf("ndarray.FromSlice: %w", err)
	}
	if len(data) != s.Size() {
		return nil, fmt.Errorf("ndarray.FromSlice: %d values for shape %v: %w", len(data), s, ErrShapeMismatch)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return newDense(s, buf, gatherOptions(opts...).borrow), nil
}

// newDense installs the first record; buf is owned by the new array.
func newDense[T any](s shape.Shape, buf []T, p BorrowPolicy) *Dense[T] {
	m := &Dense[T]{policy: p}
	m.cur.Store(&storage[T]{shape: s, data: buf})

	return m
}

// load returns the current record, or an error if there is none to use.
func (m *Dense[T]) load() (*storage[T], error) {
	st := m.cur.Load()
	switch {
	case st == nil:
		return nil, ErrNilArray
	case st.released:
		return nil, ErrReleased
	}

	return st, nil
}

// Policy returns the borrow policy every view of m inherits.
func (m *Dense[T]) Policy() BorrowPolicy { return m.policy }

// Shape returns the current shape; {0} after Release.
func (m *Dense[T]) Shape() shape.Shape {
	st := m.cur.Load()
	if st == nil {
		return releasedShape
	}

	return st.shape
}

// Size returns the current number of elements.
func (m *Dense[T]) Size() int { return m.Shape().Size() }

// Dimension returns the current number of axes.
func (m *Dense[T]) Dimension() int { return m.Shape().Dimension() }

// Data returns the live row-major buffer (no copy). Writes are visible to
// every view; the slice stops being the array's storage after Reshape,
// Resize or Release. Returns nil for a released array.
func (m *Dense[T]) Data() []T {
	st, err := m.load()
	if err != nil {
		return nil
	}

	return st.data
}

// At returns the element at idx; negative coordinates count from the end.
func (m *Dense[T]) At(idx ...int) (T, error) {
	var zero T
	data, off, err := m.locate(idx)
	if err != nil {
		return zero, coordErrorf(ctxDense, "At", idx, err)
	}

	return data[off], nil
}

// Set writes v at idx.
func (m *Dense[T]) Set(v T, idx ...int) error {
	data, off, err := m.locate(idx)
	if err != nil {
		return coordErrorf(ctxDense, "Set", idx, err)
	}
	data[off] = v

	return nil
}

// Ref returns a pointer to the element at idx, valid until the storage is replaced.
func (m *Dense[T]) Ref(idx ...int) (*T, error) {
	data, off, err := m.locate(idx)
	if err != nil {
		return nil, coordErrorf(ctxDense, "Ref", idx, err)
	}

	return &data[off], nil
}

// locate resolves idx against the current record without building a layout.
func (m *Dense[T]) locate(idx []int) ([]T, int, error) {
	st, err := m.load()
	if err != nil {
		return nil, 0, err
	}
	s := st.shape
	if len(idx) != s.Dimension() {
		return nil, 0, fmt.Errorf("%d coordinates for %d axes: %w", len(idx), s.Dimension(), ErrIndexOutOfBounds)
	}
	off := 0
	for k, c := range idx {
		n := s.Extent(k)
		if c < 0 {
			c += n
		}
		if c < 0 || c >= n {
			return nil, 0, fmt.Errorf("axis %d extent %d: %w", k, n, ErrIndexOutOfBounds)
		}
		off += c * s.Offset(k)
	}

	return st.data, off, nil
}

func (m *Dense[T]) snapshot() (borrow[T], *layout, error) {
	st, err := m.load()
	if err != nil {
		return borrow[T]{}, nil, err
	}
	lay := denseLayout(st.shape)

	return borrow[T]{owner: m, st: st, checked: m.policy == Checked}, &lay, nil
}

// Select returns a strided view with one Index per axis.
//
// Behavior highlights:
//   - Scalar selections collapse their axis; ranges and lists keep it.
//   - Collapsing every axis yields a view of shape {1}.
//   - An empty range keeps its axis with extent 0.
//
// Errors:
//   - ErrIndexOutOfBounds (bounds or selector count), index.ErrInvalid, ErrReleased.
func (m *Dense[T]) Select(sel ...index.Index) (*View[T], error) {
	b, lay, err := m.snapshot()
	if err == nil {
		var v *View[T]
		if v, err = selectOn(b, lay, sel); err == nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%s.Select: %w", ctxDense, err)
}

// Map applies a map-vector (one entry per axis) and returns an indirected view.
// Placeholders place source axes at output positions (transpose, axis moves);
// non-collapsing selections fill the remaining output positions in source order.
//
// Errors:
//   - ErrMalformedMapVector (reported before any element access),
//     ErrIndexOutOfBounds, index.ErrInvalid, ErrReleased.
func (m *Dense[T]) Map(mv ...index.MapIndex) (*MapView[T], error) {
	b, lay, err := m.snapshot()
	if err == nil {
		var v *MapView[T]
		if v, err = mapOn(b, lay, mv); err == nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%s.Map: %w", ctxDense, err)
}

// Diagonal merges the listed equal-length axes into one, placed at the
// lowest listed axis. Diagonal(0, 1) of an n×n array is its main diagonal.
func (m *Dense[T]) Diagonal(axes ...int) (*MapView[T], error) {
	b, lay, err := m.snapshot()
	if err == nil {
		var v *MapView[T]
		if v, err = diagonalOn(b, lay, axes); err == nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%s.Diagonal%s: %w", ctxDense, coords(axes), err)
}

// All lazily yields every (coordinates, value) pair in row-major order.
// Yields nothing for a released array.
func (m *Dense[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		st, err := m.load()
		if err != nil {
			return
		}
		for lin, idx := range shape.All(st.shape) {
			if !yield(idx, st.data[lin]) {
				return
			}
		}
	}
}

// Values returns a row-major copy of every element.
func (m *Dense[T]) Values() ([]T, error) {
	st, err := m.load()
	if err != nil {
		return nil, fmt.Errorf("%s.Values: %w", ctxDense, err)
	}
	out := make([]T, len(st.data))
	copy(out, st.data)

	return out, nil
}

// Clone returns a deep copy (same shape and policy, independent buffer).
func (m *Dense[T]) Clone() (*Dense[T], error) {
	st, err := m.load()
	if err != nil {
		return nil, fmt.Errorf("%s.Clone: %w", ctxDense, err)
	}
	buf := make([]T, len(st.data))
	copy(buf, st.data)

	return newDense(st.shape, buf, m.policy), nil
}

// Do calls fn for every element in row-major order until fn returns false.
func (m *Dense[T]) Do(fn func(idx []int, v T) bool) error {
	if fn == nil {
		return fmt.Errorf("%s.Do: %w", ctxDense, ErrNilFunc)
	}
	st, err := m.load()
	if err != nil {
		return fmt.Errorf("%s.Do: %w", ctxDense, err)
	}
	for lin, idx := range shape.All(st.shape) {
		if !fn(idx, st.data[lin]) {
			break
		}
	}

	return nil
}

// Apply replaces every element with fn(idx, old) in row-major order.
func (m *Dense[T]) Apply(fn func(idx []int, v T) T) error {
	if fn == nil {
		return fmt.Errorf("%s.Apply: %w", ctxDense, ErrNilFunc)
	}
	st, err := m.load()
	if err != nil {
		return fmt.Errorf("%s.Apply: %w", ctxDense, err)
	}
	for lin, idx := range shape.All(st.shape) {
		st.data[lin] = fn(idx, st.data[lin])
	}

	return nil
}

// Reshape reinterprets the same elements under shape s (same total size).
// The buffer is shared, not copied; existing views become dangling.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch (different size), ErrReleased.
func (m *Dense[T]) Reshape(s shape.Shape) error {
	if err := ValidateShape(s); err != nil {
		return fmt.Errorf("%s.%s: %w", ctxDense, ctxReshape, err)
	}
	st, err := m.load()
	if err != nil {
		return fmt.Errorf("%s.%s: %w", ctxDense, ctxReshape, err)
	}
	if err = shape.SameSize(st.shape, s); err != nil {
		return fmt.Errorf("%s.%s(%v): %w", ctxDense, ctxReshape, s, err)
	}
	m.cur.Store(&storage[T]{shape: s, data: st.data})

	return nil
}

// Resize installs fresh storage of shape s filled with fill.
// When the dimensionality is unchanged, elements at coordinates present in
// both shapes are carried over.
//
// Errors:
//   - ErrBadShape, ErrReleased.
func (m *Dense[T]) Resize(s shape.Shape, fill T) error {
	if err := ValidateShape(s); err != nil {
		return fmt.Errorf("%s.%s: %w", ctxDense, ctxResize, err)
	}
	st, err := m.load()
	if err != nil {
		return fmt.Errorf("%s.%s: %w", ctxDense, ctxResize, err)
	}
	buf := make([]T, s.Size())
	for i := range buf {
		buf[i] = fill
	}
	if old := st.shape; old.Dimension() == s.Dimension() {
		common := make([]int, s.Dimension())
		for k := range common {
			common[k] = min(old.Extent(k), s.Extent(k))
		}
		overlap, err := shape.New(common...)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", ctxDense, ctxResize, err)
		}
		for _, idx := range shape.All(overlap) {
			from, to := 0, 0
			for k, c := range idx {
				from += c * old.Offset(k)
				to += c * s.Offset(k)
			}
			buf[to] = st.data[from]
		}
	}
	m.cur.Store(&storage[T]{shape: s, data: buf})

	return nil
}

// Release drops the storage. Afterwards Shape reports {0} and every
// element operation returns ErrReleased; views become dangling.
// Releasing twice is a no-op.
func (m *Dense[T]) Release() {
	m.cur.Store(&storage[T]{shape: releasedShape, released: true})
}

// Induced materializes a copy over explicit per-axis position lists
// (duplicates allowed, negative positions count from the end).
//
// Errors:
//   - ErrIndexOutOfBounds, ErrReleased.
func (m *Dense[T]) Induced(lists ...[]int) (*Dense[T], error) {
	sel := make([]index.Index, len(lists))
	for k, l := range lists {
		sel[k] = index.List(l...)
	}
	v, err := m.Select(sel...)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", ctxDense, ctxInduced, err)
	}

	return v.Clone()
}

// String renders the array one innermost row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense[T]) String() string {
	st, err := m.load()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", ctxDense, err)
	}

	return formatValues(st.shape, st.data)
}
