// SPDX-License-Identifier: MIT

// Package index - map-vectors: per-source-axis selections and placeholders,
// compiled eagerly into a Mapping (output shape + per-output-axis terms).
//
// Purpose:
//   - Validate the whole map-vector before any storage is touched (fail fast).
//   - Describe the result purely in terms of source axes and positions, so the
//     storage layer can turn it into offset tables without re-validating.

package index

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ndarray/shape"
)

// MapIndex is one entry of a map-vector: either a selection (Index) or a
// placeholder that assigns the full source axis to output axis To.
// The zero value is invalid.
type MapIndex struct {
	sel         Index
	to          int
	placeholder bool
}

// Select wraps an Index as a map-vector entry.
func Select(ix Index) MapIndex {
	return MapIndex{sel: ix}
}

// Placeholder assigns the whole source axis to output axis to.
func Placeholder(to int) MapIndex {
	return MapIndex{to: to, placeholder: true}
}

// Shorthand placeholders for the first output axes (_0 … _3).
var (
	P0 = Placeholder(0)
	P1 = Placeholder(1)
	P2 = Placeholder(2)
	P3 = Placeholder(3)
)

// IsPlaceholder reports whether m is a placeholder.
func (m MapIndex) IsPlaceholder() bool { return m.placeholder }

// To returns the placeholder's output axis (meaningless for selections).
func (m MapIndex) To() int { return m.to }

// Index returns the wrapped selection (zero Index for placeholders).
func (m MapIndex) Index() Index { return m.sel }

// String renders "_k" for placeholders and the Index notation otherwise.
func (m MapIndex) String() string {
	if m.placeholder {
		return "_" + strconv.Itoa(m.to)
	}

	return m.sel.String()
}

// Pin is a collapsed source axis fixed at one position.
type Pin struct {
	Axis int
	Pos  int
}

// Term is one source axis contributing to an output axis: output coordinate c
// reads source position Plan.At(c) on Axis.
type Term struct {
	Axis int
	Plan Plan
}

// Mapping is a compiled map-vector. For output coordinate (c0 … cn-1) the
// source coordinate is: every Pin fixed, and for each output axis o and each
// Term t in Axes[o], source axis t.Axis at t.Plan.At(c_o).
//
// When every source axis collapses, Out is the normalized {1} shape and
// Axes holds one empty term list.
type Mapping struct {
	Out  shape.Shape
	Pins []Pin
	Axes [][]Term
}

// Compile validates mv against src and builds the Mapping.
//
// Implementation:
//   - Stage 1: len(mv) must equal src.Dimension().
//   - Stage 2: resolve every selection (bounds errors surface here).
//   - Stage 3: place placeholders at their output axis; reject duplicates and
//     targets beyond the output dimensionality (a gap).
//   - Stage 4: fill the free output axes with the remaining non-collapsed
//     selections in source-axis order.
//
// Errors:
//   - ErrMalformedMapVector (length, duplicate, gap, negative target).
//   - ErrOutOfBounds (selection outside its axis).
//   - ErrInvalid (zero-value entry).
//
// Complexity:
//   - Time O(d + Σ list lengths), Space O(d).
func Compile(mv []MapIndex, src shape.Shape) (*Mapping, error) {
	dim := src.Dimension()
	if len(mv) != dim {
		return nil, fmt.Errorf("index.Compile: %d entries for %d source axes: %w", len(mv), dim, ErrMalformedMapVector)
	}

	// Stage 2: resolve.
	plans := make([]Plan, dim)
	outDim := 0
	for axis, m := range mv {
		var (
			p   Plan
			err error
		)
		if m.placeholder {
			if m.to < 0 {
				return nil, fmt.Errorf("index.Compile: axis %d placeholder %s: %w", axis, m, ErrMalformedMapVector)
			}
			p, err = Full().Resolve(src.Extent(axis))
		} else {
			p, err = m.sel.Resolve(src.Extent(axis))
		}
		if err != nil {
			return nil, fmt.Errorf("index.Compile: axis %d: %w", axis, err)
		}
		plans[axis] = p
		if !p.Collapse {
			outDim++
		}
	}

	// Stage 3: placeholders claim their slots.
	slots := make([]int, outDim)
	for i := range slots {
		slots[i] = -1
	}
	for axis, m := range mv {
		if !m.placeholder {
			continue
		}
		if m.to >= outDim {
			return nil, fmt.Errorf("index.Compile: axis %d placeholder %s leaves a gap (output dimension %d): %w", axis, m, outDim, ErrMalformedMapVector)
		}
		if slots[m.to] != -1 {
			return nil, fmt.Errorf("index.Compile: placeholder %s used by axes %d and %d: %w", m, slots[m.to], axis, ErrMalformedMapVector)
		}
		slots[m.to] = axis
	}

	// Stage 4: remaining selections fill free slots in order.
	next := 0
	for axis, m := range mv {
		if m.placeholder || plans[axis].Collapse {
			continue
		}
		for slots[next] != -1 {
			next++
		}
		slots[next] = axis
	}

	mp := &Mapping{}
	for axis, p := range plans {
		if p.Collapse {
			mp.Pins = append(mp.Pins, Pin{Axis: axis, Pos: p.Start})
		}
	}
	if outDim == 0 {
		mp.Out = shape.Scalar()
		mp.Axes = [][]Term{{}}

		return mp, nil
	}
	extents := make([]int, outDim)
	mp.Axes = make([][]Term, outDim)
	for o, axis := range slots {
		extents[o] = plans[axis].Count()
		mp.Axes[o] = []Term{{Axis: axis, Plan: plans[axis]}}
	}
	out, err := shape.New(extents...)
	if err != nil {
		return nil, fmt.Errorf("index.Compile: %w", err)
	}
	mp.Out = out

	return mp, nil
}

// Diagonal maps several equal-length source axes onto a single output axis
// whose coordinate advances all of them together (A[i,i] for axes 0 and 1).
// The merged axis takes the position of the lowest listed axis; every other
// source axis keeps its relative order as a full-range output axis.
//
// Errors:
//   - ErrMalformedMapVector when axes is empty, repeats an axis or names an
//     axis outside the source.
//   - shape.ErrMismatch when the listed axes differ in length.
func Diagonal(src shape.Shape, axes ...int) (*Mapping, error) {
	dim := src.Dimension()
	if len(axes) == 0 {
		return nil, fmt.Errorf("index.Diagonal: no axes: %w", ErrMalformedMapVector)
	}
	merged := make([]bool, dim)
	first := dim
	for _, a := range axes {
		if a < 0 || a >= dim {
			return nil, fmt.Errorf("index.Diagonal: axis %d of %d: %w", a, dim, ErrMalformedMapVector)
		}
		if merged[a] {
			return nil, fmt.Errorf("index.Diagonal: axis %d repeated: %w", a, ErrMalformedMapVector)
		}
		if src.Extent(a) != src.Extent(axes[0]) {
			return nil, fmt.Errorf("index.Diagonal: axis %d extent %d vs %d: %w", a, src.Extent(a), src.Extent(axes[0]), shape.ErrMismatch)
		}
		merged[a] = true
		first = min(first, a)
	}

	n := src.Extent(axes[0])
	full := Plan{Start: 0, Len: n}
	mp := &Mapping{}
	var extents []int
	for axis := 0; axis < dim; axis++ {
		switch {
		case axis == first:
			terms := make([]Term, len(axes))
			for k, a := range axes {
				terms[k] = Term{Axis: a, Plan: full}
			}
			mp.Axes = append(mp.Axes, terms)
			extents = append(extents, n)
		case merged[axis]:
			continue
		default:
			mp.Axes = append(mp.Axes, []Term{{Axis: axis, Plan: Plan{Start: 0, Len: src.Extent(axis)}}})
			extents = append(extents, src.Extent(axis))
		}
	}
	out, err := shape.New(extents...)
	if err != nil {
		return nil, fmt.Errorf("index.Diagonal: %w", err)
	}
	mp.Out = out

	return mp, nil
}
