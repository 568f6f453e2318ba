// SPDX-License-Identifier: MIT

// Package ndarray - layout: how a view's coordinates reach the owner's flat buffer.
//
// Purpose:
//   - One representation for strided views and map views:
//     offset(c) = base + Σ_k axes[k].at(c_k).
//   - A strided axis contributes c*stride; an indirected axis reads its
//     contribution from a table (one extra lookup, any permutation,
//     replication or diagonal pattern).
//
// Determinism:
//   - All composition is integer arithmetic; narrowing a narrowed layout is
//     identical to narrowing the original once.
//
// Complexity quicksheet:
//   - offset: O(d); narrow: O(d + Σ list lengths); remap: O(Σ output extents · terms).

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/ndarray/index"
	"github.com/katalvlaran/ndarray/shape"
)

// axis maps one view coordinate to a flat-buffer contribution.
type axis struct {
	stride int   // used when table == nil
	table  []int // per-coordinate contribution (indirection)
}

// at returns the contribution of coordinate c.
func (a axis) at(c int) int {
	if a.table != nil {
		return a.table[c]
	}

	return c * a.stride
}

// layout is a view's shape plus its addressing into the owner's buffer.
type layout struct {
	shape shape.Shape
	base  int
	axes  []axis
}

// denseLayout is the identity layout of a row-major buffer of shape s.
func denseLayout(s shape.Shape) layout {
	l := layout{shape: s, axes: make([]axis, s.Dimension())}
	for k := range l.axes {
		l.axes[k].stride = s.Offset(k)
	}

	return l
}

// offset resolves coordinates (negative ones count from the end) into a flat offset.
func (l *layout) offset(idx []int) (int, error) {
	if len(idx) != len(l.axes) {
		return 0, fmt.Errorf("%d coordinates for %d axes: %w", len(idx), len(l.axes), ErrIndexOutOfBounds)
	}
	off := l.base
	for k, c := range idx {
		n := l.shape.Extent(k)
		if c < 0 {
			c += n
		}
		if c < 0 || c >= n {
			return 0, fmt.Errorf("axis %d extent %d: %w", k, n, ErrIndexOutOfBounds)
		}
		off += l.axes[k].at(c)
	}

	return off, nil
}

// offsetOf is offset without checks, for coordinates produced by shape.All.
func (l *layout) offsetOf(idx []int) int {
	off := l.base
	for k, c := range idx {
		off += l.axes[k].at(c)
	}

	return off
}

// narrow applies one Index per axis.
//
// Implementation:
//   - Stage 1: resolve each selection against the view's own extent.
//   - Stage 2: collapsed axes fold their contribution into base.
//   - Stage 3: contiguous plans shift base (strided) or re-slice the table
//     (indirected, shared, no copy); lists gather a new table.
//   - Stage 4: no surviving axis → the normalized {1} shape.
func (l *layout) narrow(sel []index.Index) (layout, error) {
	if len(sel) != len(l.axes) {
		return layout{}, fmt.Errorf("%d selectors for %d axes: %w", len(sel), len(l.axes), ErrIndexOutOfBounds)
	}
	out := layout{base: l.base}
	extents := make([]int, 0, len(sel))
	for k, ix := range sel {
		p, err := ix.Resolve(l.shape.Extent(k))
		if err != nil {
			return layout{}, fmt.Errorf("axis %d: %w", k, err)
		}
		src := l.axes[k]
		if p.Collapse {
			out.base += src.at(p.Start)
			continue
		}
		var a axis
		switch {
		case p.Contiguous() && src.table == nil:
			out.base += p.Start * src.stride
			a.stride = src.stride
		case p.Contiguous():
			a.table = src.table[p.Start : p.Start+p.Len : p.Start+p.Len]
		default:
			a.table = make([]int, p.Len)
			for c := range a.table {
				a.table[c] = src.at(p.At(c))
			}
		}
		out.axes = append(out.axes, a)
		extents = append(extents, p.Count())
	}
	s, err := shape.New(extents...)
	if err != nil {
		return layout{}, err
	}
	out.shape = s
	if len(out.axes) == 0 {
		out.axes = []axis{{}}
	}

	return out, nil
}

// remap builds the indirected layout of a compiled mapping over l.
// Every output axis gets a table: Σ over its terms of the source contribution.
func (l *layout) remap(mp *index.Mapping) layout {
	out := layout{shape: mp.Out, base: l.base, axes: make([]axis, len(mp.Axes))}
	for _, pin := range mp.Pins {
		out.base += l.axes[pin.Axis].at(pin.Pos)
	}
	for o, terms := range mp.Axes {
		table := make([]int, mp.Out.Extent(o))
		for c := range table {
			for _, t := range terms {
				table[c] += l.axes[t.Axis].at(t.Plan.At(c))
			}
		}
		out.axes[o].table = table
	}

	return out
}
