// Package solvers indexes the daily puzzle solvers by day number.
package solvers

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/advent2024/solvers/day01"
	"github.com/katalvlaran/advent2024/solvers/day02"
	"github.com/katalvlaran/advent2024/solvers/day03"
	"github.com/katalvlaran/advent2024/solvers/day06"
	"github.com/katalvlaran/advent2024/solvers/day09"
	"github.com/katalvlaran/advent2024/solvers/day12"
)

// ErrUnknownDay is returned by Lookup for a day without a solver.
var ErrUnknownDay = errors.New("solvers: no solver for day")

// Part computes one answer from the input lines.
type Part func(lines []string) (int, error)

// Solver pairs the two parts of a day.
type Solver struct {
	Part1, Part2 Part
}

var byDay = map[int]Solver{
	1:  {day01.Part1, day01.Part2},
	2:  {day02.Part1, day02.Part2},
	3:  {day03.Part1, day03.Part2},
	6:  {day06.Part1, day06.Part2},
	9:  {day09.Part1, day09.Part2},
	12: {day12.Part1, day12.Part2},
}

// Lookup returns the solver registered for day.
func Lookup(day int) (Solver, error) {
	s, ok := byDay[day]
	if !ok {
		return Solver{}, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days lists the registered days in increasing order.
func Days() []int {
	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
