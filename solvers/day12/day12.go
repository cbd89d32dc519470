// Package day12 prices fencing for garden plots.
package day12

import (
	"github.com/katalvlaran/advent2024/maps"
)

// Plot is one contiguous region of a single plant type.
type Plot struct {
	Plant  rune
	Cells  maps.PositionSet
	bounds maps.Bounds
}

// Plots splits the garden into its regions.
func Plots(garden *maps.Map2D[rune]) []Plot {
	regions := garden.Regions()
	plots := make([]Plot, 0, len(regions))
	for _, r := range regions {
		var plant rune
		for p := range r {
			plant = garden.Value(p)
			break
		}
		plots = append(plots, Plot{Plant: plant, Cells: r, bounds: garden.Bounds()})
	}
	return plots
}

func (p Plot) contains(q maps.Position) bool {
	v, ok := q.InBounds(p.bounds)
	return ok && p.Cells.Contains(v)
}

// Area is the number of cells.
func (p Plot) Area() int {
	return p.Cells.Len()
}

// Perimeter counts cell edges that face another plot or the garden border.
func (p Plot) Perimeter() int {
	n := 0
	for c := range p.Cells {
		for d := range maps.Directions() {
			if !p.contains(c.Position().Step(d)) {
				n++
			}
		}
	}
	return n
}

// Sides counts straight fence sections. A polygon has as many sides as
// corners, so each cell contributes its convex and concave corners.
func (p Plot) Sides() int {
	n := 0
	for c := range p.Cells {
		pos := c.Position()
		for d := range maps.Directions() {
			r := d.TurnedRight()
			a, b := p.contains(pos.Step(d)), p.contains(pos.Step(r))
			switch {
			case !a && !b:
				n++
			case a && b && !p.contains(pos.Step(d).Step(r)):
				n++
			}
		}
	}
	return n
}

func price(lines []string, measure func(Plot) int) (int, error) {
	garden, err := maps.New(lines, maps.Runes)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range Plots(garden) {
		total += p.Area() * measure(p)
	}
	return total, nil
}

// Part1 prices every plot by area × perimeter.
func Part1(lines []string) (int, error) {
	return price(lines, Plot.Perimeter)
}

// Part2 prices every plot by area × number of sides.
func Part2(lines []string) (int, error) {
	return price(lines, Plot.Sides)
}
