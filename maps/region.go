package maps

// ContiguousRegion returns the 4-connected component containing start: every
// position reachable from start through orthogonal steps over cells equal to
// the value at start. start itself is always included.
//
// Breadth-first: a position is marked visited when popped, and a position
// already visited is skipped, so each cell is expanded at most once.
//
// Time:   O(R) where R is the size of the region.
// Memory: O(R) for the visited set and frontier.
func (m *Map2D[T]) ContiguousRegion(start ValidPosition) PositionSet {
	visited := make(PositionSet)
	target := m.Value(start)
	queue := []ValidPosition{start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if !visited.Add(p) {
			continue
		}
		for n := range p.ValidNeighbours(m.bounds) {
			if m.Value(n) == target {
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Regions partitions the grid into its maximal contiguous regions.
// Regions are returned in the order their first cell appears in Positions.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen set and output.
func (m *Map2D[T]) Regions() []PositionSet {
	seen := make(PositionSet, m.bounds.Area())
	var regions []PositionSet
	for p := range m.Positions() {
		if seen.Contains(p) {
			continue
		}
		region := m.ContiguousRegion(p)
		for q := range region {
			seen.Add(q)
		}
		regions = append(regions, region)
	}
	return regions
}
