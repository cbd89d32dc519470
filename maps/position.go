package maps

// InBounds validates p against b. The boolean is false when either
// coordinate is negative or not strictly below the matching dimension.
// Complexity: O(1).
func (p Position) InBounds(b Bounds) (ValidPosition, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= b.Width || p.Y >= b.Height {
		return ValidPosition{}, false
	}
	return ValidPosition{x: p.X, y: p.Y}, true
}

// Neighbours returns the four axis-aligned positions at Manhattan distance 1,
// in the order +x, -x, +y, -y. Results may be out of bounds.
func (p Position) Neighbours() [4]Position {
	return [4]Position{
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
	}
}

// ValidNeighbours returns the neighbours of p that lie inside b (0 to 4 of them).
func (p Position) ValidNeighbours(b Bounds) PositionSet {
	out := make(PositionSet, 4)
	for _, n := range p.Neighbours() {
		if v, ok := n.InBounds(b); ok {
			out.Add(v)
		}
	}
	return out
}

// ValidNeighbours is Position.ValidNeighbours for an already validated position.
func (v ValidPosition) ValidNeighbours(b Bounds) PositionSet {
	return v.Position().ValidNeighbours(b)
}

// Step moves p one cell towards d. No bounds check is made.
func (p Position) Step(d Direction) Position {
	dx, dy := d.delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step moves v one cell towards d and validates the result against b.
func (v ValidPosition) Step(d Direction, b Bounds) (ValidPosition, bool) {
	return v.Position().Step(d).InBounds(b)
}
