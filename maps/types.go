package maps

import (
	"fmt"
	"slices"
)

// Bounds is the width/height pair of a grid. A position (x,y) is valid for
// Bounds b when 0 ≤ x < b.Width and 0 ≤ y < b.Height.
type Bounds struct {
	Width, Height int
}

// Area returns Width×Height, the number of valid positions.
func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Position is a signed coordinate that may lie outside any grid.
// Arithmetic (Step, Neighbours) happens on Position; validation turns it
// into a ValidPosition.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ValidPosition is a coordinate known to be inside the Bounds it was checked
// against. Obtain one from Position.InBounds, Map2D.Positions or
// NewValidPosition.
type ValidPosition struct {
	x, y int
}

// NewValidPosition converts two non-negative integers into a ValidPosition
// without a bounds check; the caller asserts they fit the grid in use.
// Panics if either coordinate is negative.
func NewValidPosition(x, y int) ValidPosition {
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("maps: negative coordinate (%d,%d) for ValidPosition", x, y))
	}
	return ValidPosition{x: x, y: y}
}

// X returns the column.
func (v ValidPosition) X() int { return v.x }

// Y returns the row.
func (v ValidPosition) Y() int { return v.y }

// Position widens v back into a signed Position.
func (v ValidPosition) Position() Position {
	return Position{X: v.x, Y: v.y}
}

// String renders the position as "(x,y)".
func (v ValidPosition) String() string {
	return fmt.Sprintf("(%d,%d)", v.x, v.y)
}

// PositionSet is an unordered set of valid positions.
type PositionSet map[ValidPosition]struct{}

// NewPositionSet builds a set holding ps.
func NewPositionSet(ps ...ValidPosition) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// Add inserts p and reports whether it was absent before.
func (s PositionSet) Add(p ValidPosition) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// Contains reports whether p is in the set.
func (s PositionSet) Contains(p ValidPosition) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions.
func (s PositionSet) Len() int {
	return len(s)
}

// Sorted returns the members in row-major order (by y, then x).
func (s PositionSet) Sorted() []ValidPosition {
	out := make([]ValidPosition, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b ValidPosition) int {
		if a.y != b.y {
			return a.y - b.y
		}
		return a.x - b.x
	})
	return out
}
