package maps

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/katalvlaran/advent2024/input"
)

// Map2D is a rectangular grid of T built once from text and read-only after.
// rows[y][x] holds the value at column x, row y.
type Map2D[T comparable] struct {
	rows   [][]T
	bounds Bounds
}

// New decodes lines into a Map2D, one row per line and one cell per
// character, using conv for every character.
// Bounds are (length of the first row, number of rows).
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs, or an error wrapping
// ErrConversion naming the offending cell.
// Complexity: O(W×H) time and memory.
func New[T comparable](lines []string, conv Converter[T]) (*Map2D[T], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(lines[0]))
	rows := make([][]T, len(lines))
	for y, line := range lines {
		chars := []rune(line)
		if len(chars) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(chars), w)
		}
		row := make([]T, w)
		for x, c := range chars {
			v, err := conv.Convert(c)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			row[x] = v
		}
		rows[y] = row
	}

	return &Map2D[T]{rows: rows, bounds: Bounds{Width: w, Height: len(rows)}}, nil
}

// MustNew is New for callers that treat malformed input as fatal.
func MustNew[T comparable](lines []string, conv Converter[T]) *Map2D[T] {
	m, err := New(lines, conv)
	if err != nil {
		panic(err)
	}
	return m
}

// FromReader reads all lines from r and passes them to New.
func FromReader[T comparable](r io.Reader, conv Converter[T]) (*Map2D[T], error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	return New(lines, conv)
}

// Bounds returns the grid dimensions.
func (m *Map2D[T]) Bounds() Bounds {
	return m.bounds
}

// Positions yields every valid position exactly once: all y for x=0, then
// all y for x=1, and so on. Each call starts a fresh sequence.
func (m *Map2D[T]) Positions() iter.Seq[ValidPosition] {
	return func(yield func(ValidPosition) bool) {
		for x := 0; x < m.bounds.Width; x++ {
			for y := 0; y < m.bounds.Height; y++ {
				if !yield(ValidPosition{x: x, y: y}) {
					return
				}
			}
		}
	}
}

// Value returns the cell at p. p must come from this map's Bounds.
// Complexity: O(1).
func (m *Map2D[T]) Value(p ValidPosition) T {
	return m.rows[p.y][p.x]
}

// Find returns every position holding target.
// Complexity: O(W×H).
func (m *Map2D[T]) Find(target T) PositionSet {
	out := make(PositionSet)
	for p := range m.Positions() {
		if m.Value(p) == target {
			out.Add(p)
		}
	}
	return out
}

// String renders the grid one row per line, each cell formatted with %v.
func (m *Map2D[T]) String() string {
	var sb strings.Builder
	for y, row := range m.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			switch c := any(v).(type) {
			case rune:
				sb.WriteRune(c)
			default:
				fmt.Fprintf(&sb, "%v", c)
			}
		}
	}
	return sb.String()
}
