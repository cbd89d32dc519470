// Package day02 counts safe reactor reports.
package day02

import (
	"github.com/katalvlaran/advent2024/input"
)

// Part1 counts reports whose levels are strictly monotone with steps of 1 to 3.
func Part1(lines []string) (int, error) {
	reports, err := input.Rows(lines, input.Ints)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range reports {
		if safe(r) {
			n++
		}
	}
	return n, nil
}

// Part2 also accepts a report that becomes safe after dropping one level.
func Part2(lines []string) (int, error) {
	reports, err := input.Rows(lines, input.Ints)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range reports {
		if dampenedSafe(r) {
			n++
		}
	}
	return n, nil
}

func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !increasing {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

func dampenedSafe(levels []int) bool {
	if safe(levels) {
		return true
	}
	reduced := make([]int, 0, len(levels))
	for skip := range levels {
		reduced = reduced[:0]
		reduced = append(reduced, levels[:skip]...)
		reduced = append(reduced, levels[skip+1:]...)
		if safe(reduced) {
			return true
		}
	}
	return false
}
