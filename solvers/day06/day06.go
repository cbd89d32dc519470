// Package day06 follows a patrolling guard around a lab floor.
package day06

import (
	"errors"

	"github.com/katalvlaran/advent2024/maps"
)

// ErrNoGuard is returned when the floor plan has no '^'.
var ErrNoGuard = errors.New("day06: no guard on the map")

const (
	guard    = '^'
	obstacle = '#'
)

// state is a guard pose; revisiting one means the patrol loops.
type state struct {
	pos maps.ValidPosition
	dir maps.Direction
}

// lab is the floor with an optional extra obstruction.
type lab struct {
	floor *maps.Map2D[rune]
	extra maps.ValidPosition
	added bool
}

func (l *lab) blocked(p maps.ValidPosition) bool {
	return (l.added && p == l.extra) || l.floor.Value(p) == obstacle
}

// patrol walks the guard from start until it leaves the map or repeats a
// pose. It returns the set of visited positions and whether the walk loops.
func (l *lab) patrol(start maps.ValidPosition) (maps.PositionSet, bool) {
	bounds := l.floor.Bounds()
	visited := maps.NewPositionSet(start)
	seen := map[state]struct{}{}
	pos, dir := start, maps.Up
	for {
		s := state{pos, dir}
		if _, ok := seen[s]; ok {
			return visited, true
		}
		seen[s] = struct{}{}

		next, ok := pos.Step(dir, bounds)
		if !ok {
			return visited, false
		}
		if l.blocked(next) {
			dir.TurnRight()
			continue
		}
		pos = next
		visited.Add(pos)
	}
}

func parse(lines []string) (*maps.Map2D[rune], maps.ValidPosition, error) {
	floor, err := maps.New(lines, maps.Runes)
	if err != nil {
		return nil, maps.ValidPosition{}, err
	}
	for p := range floor.Find(guard) {
		return floor, p, nil
	}
	return nil, maps.ValidPosition{}, ErrNoGuard
}

// Part1 counts the distinct positions the guard visits before leaving.
func Part1(lines []string) (int, error) {
	floor, start, err := parse(lines)
	if err != nil {
		return 0, err
	}
	visited, _ := (&lab{floor: floor}).patrol(start)
	return visited.Len(), nil
}

// Part2 counts the cells where one new obstruction traps the guard in a loop.
// Only cells on the original route can change the walk, and the guard's
// starting cell is excluded.
func Part2(lines []string) (int, error) {
	floor, start, err := parse(lines)
	if err != nil {
		return 0, err
	}
	route, _ := (&lab{floor: floor}).patrol(start)

	n := 0
	for p := range route {
		if p == start {
			continue
		}
		if _, loops := (&lab{floor: floor, extra: p, added: true}).patrol(start); loops {
			n++
		}
	}
	return n, nil
}
