// Package day01 compares two location-id lists.
package day01

import (
	"slices"

	"github.com/katalvlaran/advent2024/input"
)

// Part1 pairs the lists smallest to smallest and sums the distances.
func Part1(lines []string) (int, error) {
	left, right, err := input.TwoColumns(lines, input.Ints)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)

	total := 0
	for i := range left {
		total += abs(left[i] - right[i])
	}
	return total, nil
}

// Part2 returns the similarity score: every left id weighted by how often it
// appears on the right.
func Part2(lines []string) (int, error) {
	left, right, err := input.TwoColumns(lines, input.Ints)
	if err != nil {
		return 0, err
	}
	counts := make(map[int]int, len(right))
	for _, id := range right {
		counts[id]++
	}

	score := 0
	for _, id := range left {
		score += id * counts[id]
	}
	return score, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
