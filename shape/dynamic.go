// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"slices"
)

// Dynamic is a shape whose dimensionality is only known at run time.
// The slices are private and never handed out, so the value stays immutable.
type Dynamic struct {
	extent []int
	offset []int
	size   int
}

// NewDynamic builds a Dynamic shape from a copy of extents.
// An empty extent list yields the normalized {1} shape.
//
// Errors:
//   - ErrBadShape when any extent is negative or the element count
//     does not fit in an int.
func NewDynamic(extents []int) (Dynamic, error) {
	if len(extents) == 0 {
		extents = []int{1}
	}
	acc := 1
	for i := len(extents) - 1; i >= 0; i-- {
		next, err := grow(acc, extents[i])
		if err != nil {
			return Dynamic{}, fmt.Errorf("shape.NewDynamic: axis %d extent %d: %w", i, extents[i], err)
		}
		acc = next
	}
	d := Dynamic{
		extent: slices.Clone(extents),
		offset: RowMajorStrides(extents...),
		size:   acc,
	}

	return d, nil
}

// Dimension returns the axis count.
func (d Dynamic) Dimension() int { return len(d.extent) }

// Size returns the element count.
func (d Dynamic) Size() int { return d.size }

// Zero returns a fresh all-zero coordinate vector.
func (d Dynamic) Zero() []int { return make([]int, len(d.extent)) }

// Extent returns the length of axis.
func (d Dynamic) Extent(axis int) int { return d.extent[axis] }

// Offset returns the stride of axis.
func (d Dynamic) Offset(axis int) int { return d.offset[axis] }

// Extents returns a copy of the extents.
func (d Dynamic) Extents() []int { return slices.Clone(d.extent) }

// Offsets returns a copy of the strides.
func (d Dynamic) Offsets() []int { return slices.Clone(d.offset) }

// String implements fmt.Stringer.
func (d Dynamic) String() string { return format(d.extent) }
