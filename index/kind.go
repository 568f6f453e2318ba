// SPDX-License-Identifier: MIT

package index

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind tags the variant held by an Index.
type Kind int

const (
	_ Kind = iota // zero value is an invalid (unset) Index

	// KindScalar selects one position and collapses the axis.
	KindScalar
	// KindRange selects a contiguous run with optional open ends.
	KindRange
	// KindFull selects the whole axis.
	KindFull
	// KindList selects an explicit ordered list of positions.
	KindList
)
