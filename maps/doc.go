// Package maps treats a rectangular block of text as a typed 2D grid and
// offers the coordinate arithmetic needed to walk it.
//
// What:
//
//   - Map2D[T] holds rows of T decoded character by character via a Converter[T].
//   - Position is a signed coordinate used for arithmetic; ValidPosition is a
//     coordinate already checked against a Bounds.
//   - Direction models the four cardinal headings with rotations and stepping.
//   - ContiguousRegion flood-fills 4-connected cells sharing one value.
//   - Regions partitions the whole grid into such regions.
//
// Why:
//
//   - Puzzle inputs are almost always character grids; decoding, bounds checks
//     and neighbour walks are the same every day.
//   - Keeping ValidPosition distinct from Position means a lookup never needs to
//     re-check bounds.
//
// Coordinates:
//
//	x grows to the right, y grows downward (row/column convention).
//	Up decreases y, Down increases y.
//
// Complexity:
//
//   - New:              O(W×H) time and memory.
//   - Find:             O(W×H).
//   - ContiguousRegion: O(R) where R is the region size, Memory: O(R).
//   - Regions:          O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or an empty first row.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrConversion: a character has no mapping for the element type.
//
// Out-of-bounds coordinates are never an error: InBounds reports them through
// its boolean result.
package maps
