// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Non-owning views over a Dense: View (strided, from Select) and MapView
//     (indirected, from Map and Diagonal).
//   - Both share one implementation (window); they differ only in how their
//     layout was built and in the type name used in error context.
//
// Behavior highlights:
//   - Views never copy elements: Set and Ref write through to the owner.
//   - A view's shape is its own; it never changes after creation.
//   - Every access resolves the layout against the borrowed storage record;
//     with the Checked policy a replaced record fails with ErrDanglingBorrow.
//   - Views are derivable from views to any depth; the result addresses the
//     owner directly (no chain of lookups through intermediate views).
//
// Complexity:
//   - At/Set/Ref: O(d). Select: O(d + Σ list lengths). Map: O(d + Σ extents).

package ndarray

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ndarray/index"
	"github.com/katalvlaran/ndarray/shape"
)

const (
	ctxView    = "View"
	ctxMapView = "MapView"
)

// window is the borrowed storage plus the addressing shared by every view kind.
type window[T any] struct {
	b   borrow[T]
	lay layout
	typ string
}

// View is a strided window produced by Select.
type View[T any] struct {
	window[T]
}

// MapView is an indirected window produced by Map or Diagonal.
type MapView[T any] struct {
	window[T]
}

// Shape returns the view's own shape.
func (w *window[T]) Shape() shape.Shape { return w.lay.shape }

// Size returns the number of elements the view addresses.
func (w *window[T]) Size() int { return w.lay.shape.Size() }

// Dimension returns the view's number of axes.
func (w *window[T]) Dimension() int { return w.lay.shape.Dimension() }

// Policy returns the borrow policy inherited from the owner.
func (w *window[T]) Policy() BorrowPolicy {
	if w.b.checked {
		return Checked
	}

	return Unchecked
}

// At returns the element at idx.
func (w *window[T]) At(idx ...int) (T, error) {
	var zero T
	data, off, err := w.locate(idx)
	if err != nil {
		return zero, coordErrorf(w.typ, "At", idx, err)
	}

	return data[off], nil
}

// Set writes v at idx into the owner's buffer.
func (w *window[T]) Set(v T, idx ...int) error {
	data, off, err := w.locate(idx)
	if err != nil {
		return coordErrorf(w.typ, "Set", idx, err)
	}
	data[off] = v

	return nil
}

// Ref returns a pointer to the owner's element at idx.
// The pointer is valid only while the owner's storage is not replaced.
func (w *window[T]) Ref(idx ...int) (*T, error) {
	data, off, err := w.locate(idx)
	if err != nil {
		return nil, coordErrorf(w.typ, "Ref", idx, err)
	}

	return &data[off], nil
}

// locate checks the borrow, then resolves idx.
func (w *window[T]) locate(idx []int) ([]T, int, error) {
	data, err := w.b.data()
	if err != nil {
		return nil, 0, err
	}
	off, err := w.lay.offset(idx)
	if err != nil {
		return nil, 0, err
	}

	return data, off, nil
}

// Select narrows the view further; see Dense.Select.
func (w *window[T]) Select(sel ...index.Index) (*View[T], error) {
	v, err := selectOn(w.b, &w.lay, sel)
	if err != nil {
		return nil, fmt.Errorf("%s.Select: %w", w.typ, err)
	}

	return v, nil
}

// Map applies a map-vector to the view; see Dense.Map.
func (w *window[T]) Map(mv ...index.MapIndex) (*MapView[T], error) {
	v, err := mapOn(w.b, &w.lay, mv)
	if err != nil {
		return nil, fmt.Errorf("%s.Map: %w", w.typ, err)
	}

	return v, nil
}

// Diagonal merges equal-length axes of the view; see Dense.Diagonal.
func (w *window[T]) Diagonal(axes ...int) (*MapView[T], error) {
	v, err := diagonalOn(w.b, &w.lay, axes)
	if err != nil {
		return nil, fmt.Errorf("%s.Diagonal%s: %w", w.typ, coords(axes), err)
	}

	return v, nil
}

// All lazily yields every (coordinates, value) pair in row-major order.
// The coordinate slice is reused between steps. Iteration stops silently
// when the borrow becomes invalid; Values reports that case as an error.
func (w *window[T]) All() iter.Seq2[[]int, T] {
	return allOn(w.b, &w.lay)
}

// Values returns a row-major copy of the view's elements.
func (w *window[T]) Values() ([]T, error) {
	vals, err := valuesOn(w.b, &w.lay)
	if err != nil {
		return nil, fmt.Errorf("%s.Values: %w", w.typ, err)
	}

	return vals, nil
}

// Clone materializes the view into a new Dense with the owner's policy.
func (w *window[T]) Clone() (*Dense[T], error) {
	vals, err := valuesOn(w.b, &w.lay)
	if err != nil {
		return nil, fmt.Errorf("%s.Clone: %w", w.typ, err)
	}

	return newDense(w.lay.shape, vals, w.b.owner.policy), nil
}

// Do calls fn for every element in row-major order until fn returns false.
func (w *window[T]) Do(fn func(idx []int, v T) bool) error {
	if err := doOn(w.b, &w.lay, fn); err != nil {
		return fmt.Errorf("%s.Do: %w", w.typ, err)
	}

	return nil
}

// Apply replaces every element with fn(idx, old), in row-major order.
// Positions addressed more than once (replicated lists) are updated once per visit.
func (w *window[T]) Apply(fn func(idx []int, v T) T) error {
	if err := applyOn(w.b, &w.lay, fn); err != nil {
		return fmt.Errorf("%s.Apply: %w", w.typ, err)
	}

	return nil
}

// String renders the view's elements, one innermost row per line.
func (w *window[T]) String() string {
	vals, err := valuesOn(w.b, &w.lay)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", w.typ, err)
	}

	return formatValues(w.lay.shape, vals)
}

func (w *window[T]) snapshot() (borrow[T], *layout, error) {
	return w.b, &w.lay, nil
}

// selectOn builds a strided view over the storage borrowed by b.
func selectOn[T any](b borrow[T], lay *layout, sel []index.Index) (*View[T], error) {
	if _, err := b.data(); err != nil {
		return nil, err
	}
	nl, err := lay.narrow(sel)
	if err != nil {
		return nil, err
	}

	return &View[T]{window[T]{b: b, lay: nl, typ: ctxView}}, nil
}

// mapOn compiles mv against lay's shape and builds the indirected view.
// Malformed map-vectors fail here, before any element is touched.
func mapOn[T any](b borrow[T], lay *layout, mv []index.MapIndex) (*MapView[T], error) {
	if _, err := b.data(); err != nil {
		return nil, err
	}
	mp, err := index.Compile(mv, lay.shape)
	if err != nil {
		return nil, err
	}

	return &MapView[T]{window[T]{b: b, lay: lay.remap(mp), typ: ctxMapView}}, nil
}

func diagonalOn[T any](b borrow[T], lay *layout, axes []int) (*MapView[T], error) {
	if _, err := b.data(); err != nil {
		return nil, err
	}
	mp, err := index.Diagonal(lay.shape, axes...)
	if err != nil {
		return nil, err
	}

	return &MapView[T]{window[T]{b: b, lay: lay.remap(mp), typ: ctxMapView}}, nil
}

func allOn[T any](b borrow[T], lay *layout) iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for _, idx := range shape.All(lay.shape) {
			data, err := b.data()
			if err != nil {
				return
			}
			if !yield(idx, data[lay.offsetOf(idx)]) {
				return
			}
		}
	}
}

func valuesOn[T any](b borrow[T], lay *layout) ([]T, error) {
	data, err := b.data()
	if err != nil {
		return nil, err
	}
	out := make([]T, lay.shape.Size())
	for lin, idx := range shape.All(lay.shape) {
		out[lin] = data[lay.offsetOf(idx)]
	}

	return out, nil
}

func doOn[T any](b borrow[T], lay *layout, fn func(idx []int, v T) bool) error {
	if fn == nil {
		return ErrNilFunc
	}
	data, err := b.data()
	if err != nil {
		return err
	}
	for _, idx := range shape.All(lay.shape) {
		if !fn(idx, data[lay.offsetOf(idx)]) {
			break
		}
	}

	return nil
}

func applyOn[T any](b borrow[T], lay *layout, fn func(idx []int, v T) T) error {
	if fn == nil {
		return ErrNilFunc
	}
	data, err := b.data()
	if err != nil {
		return err
	}
	for _, idx := range shape.All(lay.shape) {
		off := lay.offsetOf(idx)
		data[off] = fn(idx, data[off])
	}

	return nil
}
