// SPDX-License-Identifier: MIT

package index

import "fmt"

// Plan is the resolved form of an Index against a concrete axis.
//
// A Plan is either contiguous (Positions == nil: positions Start … Start+Len-1)
// or explicit (Positions lists every position, Len == len(Positions)).
// Collapse marks a scalar selection whose axis is dropped from the output.
type Plan struct {
	Start     int
	Len       int
	Positions []int
	Collapse  bool
}

// Contiguous reports whether the plan is a plain run.
func (p Plan) Contiguous() bool { return p.Positions == nil }

// Count returns the number of selected positions.
func (p Plan) Count() int { return p.Len }

// At returns the k-th selected position, k in [0, Count()).
func (p Plan) At(k int) int {
	if p.Positions != nil {
		return p.Positions[k]
	}

	return p.Start + k
}

// Materialize returns every selected position as a fresh slice.
func (p Plan) Materialize() []int {
	out := make([]int, p.Len)
	for k := range out {
		out[k] = p.At(k)
	}

	return out
}

// Sub composes an inner plan (resolved against p.Count()) with p, yielding a
// plan over p's axis. Contiguous∘contiguous stays contiguous; anything else
// becomes explicit. The inner Collapse flag is kept.
//
// Composition is exact integer arithmetic, so nesting is associative:
// Range(2,8) then Range(1,3) equals Range(3,5).
func (p Plan) Sub(inner Plan) (Plan, error) {
	if inner.Contiguous() {
		if inner.Len == 0 {
			return Plan{Collapse: inner.Collapse}, nil
		}
		if inner.Start < 0 || inner.Start+inner.Len > p.Len {
			return Plan{}, fmt.Errorf("index.Plan.Sub: inner [%d,+%d) over %d: %w", inner.Start, inner.Len, p.Len, ErrOutOfBounds)
		}
		if p.Contiguous() {
			return Plan{Start: p.Start + inner.Start, Len: inner.Len, Collapse: inner.Collapse}, nil
		}
	}
	out := make([]int, inner.Len)
	for k := range out {
		q := inner.At(k)
		if q < 0 || q >= p.Len {
			return Plan{}, fmt.Errorf("index.Plan.Sub: inner position %d over %d: %w", q, p.Len, ErrOutOfBounds)
		}
		out[k] = p.At(q)
	}

	return Plan{Positions: out, Len: len(out), Collapse: inner.Collapse}, nil
}
