// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"
)

// Dims lists the extent vectors a Fixed shape may be built from.
// The length of the array type is the dimensionality.
type Dims interface {
	[1]int | [2]int | [3]int | [4]int
}

// Fixed is a shape whose dimensionality is part of its type.
// Extents and strides are stored inline (no slices), so a Fixed value is a
// small comparable struct that never allocates after construction.
type Fixed[E Dims] struct {
	extent E   // axis lengths
	offset E   // row-major strides
	size   int // product of extents
}

// NewFixed builds a Fixed shape, computing strides from the last axis to the first.
//
// Errors:
//   - ErrBadShape when any extent is negative or the element count
//     does not fit in an int.
//
// Complexity:
//   - Time O(d), Space O(1).
func NewFixed[E Dims](e E) (Fixed[E], error) {
	var f Fixed[E]
	acc := 1
	for i := len(e) - 1; i >= 0; i-- {
		f.offset[i] = acc
		next, err := grow(acc, e[i])
		if err != nil {
			return Fixed[E]{}, fmt.Errorf("shape.NewFixed: axis %d extent %d: %w", i, e[i], err)
		}
		acc = next
	}
	f.extent = e
	f.size = acc

	return f, nil
}

// Dimension returns len(E).
func (f Fixed[E]) Dimension() int { return len(f.extent) }

// Size returns the element count.
func (f Fixed[E]) Size() int { return f.size }

// Zero returns a fresh all-zero coordinate vector.
func (f Fixed[E]) Zero() []int { return make([]int, len(f.extent)) }

// Extent returns the length of axis.
func (f Fixed[E]) Extent(axis int) int { return f.extent[axis] }

// Offset returns the stride of axis.
func (f Fixed[E]) Offset(axis int) int { return f.offset[axis] }

// Array returns the extent vector as its array type.
func (f Fixed[E]) Array() E { return f.extent }

// Extents returns a copy of the extents.
func (f Fixed[E]) Extents() []int {
	out := make([]int, len(f.extent))
	for i := range out {
		out[i] = f.extent[i]
	}

	return out
}

// Offsets returns a copy of the strides.
func (f Fixed[E]) Offsets() []int {
	out := make([]int, len(f.offset))
	for i := range out {
		out[i] = f.offset[i]
	}

	return out
}

// String implements fmt.Stringer.
func (f Fixed[E]) String() string { return format(f.Extents()) }

// Of1 builds a one-axis Fixed shape.
func Of1(n int) (Fixed[[1]int], error) { return NewFixed([1]int{n}) }

// Of2 builds a rows×cols Fixed shape.
func Of2(rows, cols int) (Fixed[[2]int], error) { return NewFixed([2]int{rows, cols}) }

// Of3 builds a three-axis Fixed shape.
func Of3(a, b, c int) (Fixed[[3]int], error) { return NewFixed([3]int{a, b, c}) }

// Of4 builds a four-axis Fixed shape.
func Of4(a, b, c, d int) (Fixed[[4]int], error) { return NewFixed([4]int{a, b, c, d}) }

// grow multiplies the running element count acc by extent e.
// Strides of lower axes are multiples of acc, so a product that does not
// fit in an int is rejected even when a lower axis has extent zero.
func grow(acc, e int) (int, error) {
	if e < 0 {
		return 0, ErrBadShape
	}
	if e > 0 && acc > math.MaxInt/e {
		return 0, fmt.Errorf("element count overflows int: %w", ErrBadShape)
	}

	return acc * e, nil
}
