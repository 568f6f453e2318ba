// SPDX-License-Identifier: MIT

// Package index - the Index sum type and its normalization against an axis.
//
// Purpose:
//   - Keep every selection form behind one value type with an explicit Kind.
//   - Resolve is the only place negative positions and inclusive bounds are
//     normalized; arrays and views never re-implement that logic.
//
// Complexity quicksheet:
//   - Scalar/Range/Full Resolve: O(1), no allocation; List Resolve: O(n).

package index

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Integer lists the element types accepted by Scalar and ListOf.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// bound flags for Range.
const (
	flagHasLo uint8 = 1 << iota
	flagHasHi
	flagLoExclusive
	flagHiInclusive
	flagUnsigned
)

// Index is one per-axis selection expression. The zero value is invalid.
// Values are immutable; the position list is copied on construction.
type Index struct {
	kind  Kind
	lo    int    // scalar position or range lower bound
	hi    int    // range upper bound
	flags uint8  // bound and signedness flags
	list  []int  // KindList positions
	uns   []bool // KindList per-position unsigned marks (nil when all signed)
}

// At selects a single signed position; -1 is the last element. The axis collapses.
func At(i int) Index {
	return Index{kind: KindScalar, lo: i}
}

// Scalar selects a single position of any integer type. Unsigned positions
// never count from the end. The axis collapses.
func Scalar[I Integer](i I) Index {
	n, unsigned := toInt(i)
	ix := Index{kind: KindScalar, lo: n}
	if unsigned {
		ix.flags |= flagUnsigned
	}

	return ix
}

// Range selects the half-open run [lo, hi). Negative bounds count from the end.
func Range(lo, hi int) Index {
	return Bounded(lo, true, hi, false)
}

// RangeInclusive selects the closed run [lo, hi].
func RangeInclusive(lo, hi int) Index {
	return Bounded(lo, true, hi, true)
}

// Bounded selects a run with explicit inclusivity on both ends.
func Bounded(lo int, loInclusive bool, hi int, hiInclusive bool) Index {
	ix := Index{kind: KindRange, lo: lo, hi: hi, flags: flagHasLo | flagHasHi}
	if !loInclusive {
		ix.flags |= flagLoExclusive
	}
	if hiInclusive {
		ix.flags |= flagHiInclusive
	}

	return ix
}

// From selects [lo, end of axis).
func From(lo int) Index {
	return Index{kind: KindRange, lo: lo, flags: flagHasLo}
}

// To selects [0, hi).
func To(hi int) Index {
	return Index{kind: KindRange, hi: hi, flags: flagHasHi}
}

// Full selects the whole axis.
func Full() Index {
	return Index{kind: KindFull}
}

// List selects the given signed positions in the given order; duplicates are kept.
func List(positions ...int) Index {
	cp := make([]int, len(positions))
	copy(cp, positions)

	return Index{kind: KindList, list: cp}
}

// ListOf is List for any integer type. Unsigned positions never count from the end.
func ListOf[I Integer](positions ...I) Index {
	cp := make([]int, len(positions))
	var uns []bool
	for k, p := range positions {
		n, unsigned := toInt(p)
		cp[k] = n
		if unsigned {
			if uns == nil {
				uns = make([]bool, len(positions))
			}
			uns[k] = true
		}
	}

	return Index{kind: KindList, list: cp, uns: uns}
}

// toInt converts any integer into int. Values that do not fit are clamped to
// the int range, which no axis length can reach, so they still fail bounds checks.
func toInt[I Integer](v I) (n int, unsigned bool) {
	var zero I
	if ^zero > 0 {
		u := uint64(v)
		if u > math.MaxInt {
			return math.MaxInt, true
		}

		return int(u), true
	}
	s := int64(v)
	switch {
	case s > math.MaxInt:
		return math.MaxInt, false
	case s < math.MinInt:
		return math.MinInt, false
	}

	return int(s), false
}

// Kind reports the variant.
func (ix Index) Kind() Kind { return ix.kind }

// Collapses reports whether resolving ix removes the axis from the output.
func (ix Index) Collapses() bool { return ix.kind == KindScalar }

// normalize applies the negative-position convention for a signed position.
func normalize(pos, axisLen int, unsigned bool) int {
	if pos < 0 && !unsigned {
		return pos + axisLen
	}

	return pos
}

// Resolve normalizes ix against an axis of length axisLen.
//
// Implementation:
//   - Scalar: -L <= i < L (unsigned: 0 <= i < L) → single position, Collapse=true.
//   - Range: normalize bounds, apply inclusivity, empty when lo >= hi,
//     otherwise both bounds must lie in [0, L].
//   - Full: [0, L).
//   - List: per-position normalization, order and duplicates preserved.
//
// Errors:
//   - ErrOutOfBounds for any position outside [0, L).
//   - ErrInvalid for a zero-value Index.
//
// Complexity:
//   - O(1) except List: O(n).
func (ix Index) Resolve(axisLen int) (Plan, error) {
	switch ix.kind {
	case KindScalar:
		pos := normalize(ix.lo, axisLen, ix.flags&flagUnsigned != 0)
		if pos < 0 || pos >= axisLen {
			return Plan{}, fmt.Errorf("index.Resolve(%s) axis length %d: %w", ix, axisLen, ErrOutOfBounds)
		}

		return Plan{Start: pos, Len: 1, Collapse: true}, nil

	case KindRange:
		lo, hi := 0, axisLen
		if ix.flags&flagHasLo != 0 {
			lo = normalize(ix.lo, axisLen, false)
			if ix.flags&flagLoExclusive != 0 {
				if lo == math.MaxInt {
					// (MaxInt: …) starts past every position.
					return Plan{}, nil
				}
				lo++
			}
		}
		pastEnd := false // inclusive upper bound MaxInt: hi+1 is not representable
		if ix.flags&flagHasHi != 0 {
			hi = normalize(ix.hi, axisLen, false)
			if ix.flags&flagHiInclusive != 0 {
				if hi == math.MaxInt {
					pastEnd = true
				} else {
					hi++
				}
			}
		}
		if lo >= hi && !pastEnd {
			// Empty selection: no position exists to be out of bounds.
			return Plan{}, nil
		}
		if lo < 0 || hi > axisLen || pastEnd {
			return Plan{}, fmt.Errorf("index.Resolve(%s) axis length %d: %w", ix, axisLen, ErrOutOfBounds)
		}

		return Plan{Start: lo, Len: hi - lo}, nil

	case KindFull:
		return Plan{Start: 0, Len: axisLen}, nil

	case KindList:
		out := make([]int, len(ix.list))
		for k, p := range ix.list {
			pos := normalize(p, axisLen, ix.uns != nil && ix.uns[k])
			if pos < 0 || pos >= axisLen {
				return Plan{}, fmt.Errorf("index.Resolve(%s) element %d axis length %d: %w", ix, k, axisLen, ErrOutOfBounds)
			}
			out[k] = pos
		}

		return Plan{Positions: out, Len: len(out)}, nil
	}

	return Plan{}, fmt.Errorf("index.Resolve: %w", ErrInvalid)
}

// String renders ix in a compact slice-like notation:
// "3", "7u", ":", "[1:4)", "(1:4]", "[2:)", "{2 0 2}".
func (ix Index) String() string {
	switch ix.kind {
	case KindScalar:
		if ix.flags&flagUnsigned != 0 {
			return strconv.Itoa(ix.lo) + "u"
		}

		return strconv.Itoa(ix.lo)
	case KindFull:
		return ":"
	case KindRange:
		var b strings.Builder
		if ix.flags&flagLoExclusive != 0 {
			b.WriteByte('(')
		} else {
			b.WriteByte('[')
		}
		if ix.flags&flagHasLo != 0 {
			b.WriteString(strconv.Itoa(ix.lo))
		}
		b.WriteByte(':')
		if ix.flags&flagHasHi != 0 {
			b.WriteString(strconv.Itoa(ix.hi))
		}
		if ix.flags&flagHiInclusive != 0 {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}

		return b.String()
	case KindList:
		parts := make([]string, len(ix.list))
		for k, p := range ix.list {
			parts[k] = strconv.Itoa(p)
		}

		return "{" + strings.Join(parts, " ") + "}"
	}

	return "<invalid>"
}
