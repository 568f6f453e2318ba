// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndarray/shape"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtBlockSep = "\n"
)

// formatValues renders row-major vals of shape s one innermost row per line.
// Rows that start a new block over the leading axes are preceded by a blank line.
func formatValues[T any](s shape.Shape, vals []T) string {
	d := s.Dimension()
	row := s.Extent(d - 1)
	if row == 0 || len(vals) == 0 {
		return _fmtRowOpen + _fmtRowClose
	}
	plane := row
	if d >= 2 {
		plane *= s.Extent(d - 2)
	}

	var b strings.Builder
	for start := 0; start < len(vals); start += row {
		if d > 2 && start > 0 && start%plane == 0 {
			b.WriteString(_fmtBlockSep)
		}
		b.WriteString(_fmtRowOpen)
		for j := 0; j < row; j++ {
			b.WriteString(fmt.Sprintf("%v", vals[start+j]))
			if j+1 < row {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
