// Package advent2024 collects solvers for a year of daily programming
// puzzles together with the small library they share.
//
// Layout:
//
//	maps/       — Map2D[T] grids, Position/ValidPosition/Bounds, Direction, flood fill
//	input/      — reading input files, splitting lines into typed columns and rows
//	solvers/    — one package per day, each with Part1 and Part2
//	cmd/advent/ — CLI: advent -day 12 [-input path]
//	internal/   — CLI configuration and logging
//
// Quick example:
//
//	m := maps.MustNew([]string{"AAB"}, maps.Runes)
//	m.Find('A')                                    // {(0,0) (1,0)}
//	m.ContiguousRegion(maps.NewValidPosition(2, 0)) // {(2,0)}
package advent2024
