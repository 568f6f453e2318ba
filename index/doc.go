// Package index translates per-axis index expressions into concrete
// iteration plans, and map-vectors into dimension-permuting mappings.
//
// What:
//
//   - Index is a tagged union over the four selection forms:
//     Scalar (signed or unsigned), bounded Range (lower/upper with inclusive
//     flags, either end may be open), Full range, and a discrete List.
//   - Index.Resolve(axisLen) normalizes negative positions (-1 is the last
//     element) and returns a Plan: either a contiguous run [Start, Start+Len)
//     or an explicit ordered list of Positions.
//   - MapIndex is either a selection (an Index) or a Placeholder naming the
//     output axis a source axis is assigned to. Compile validates a whole
//     map-vector against a source shape and returns a Mapping.
//
// Collapse:
//
//	A Scalar removes its axis from the output (a[3] drops a dimension);
//	a one-element Range keeps it (a[3:4] keeps a length-1 axis). This single
//	rule decides the output dimensionality of every indexing call.
//
// Edge policy:
//
//   - Empty ranges (lower >= upper after normalization) are valid and
//     yield a zero-length axis.
//   - Lists keep the given order and duplicates (permutation/replication).
//   - Any resolved position outside [0, axisLen) is ErrOutOfBounds.
//
// Map-vector rules:
//
//   - len(map-vector) == source dimensionality.
//   - Output dimensionality = number of entries that do not collapse.
//   - Placeholder targets must be distinct and below the output
//     dimensionality; remaining output axes are filled by the other
//     non-collapsed selections in source order.
//   - Violations are ErrMalformedMapVector, reported before any element
//     is touched.
package index
