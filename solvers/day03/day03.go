// Package day03 recovers multiplication instructions from corrupted memory.
package day03

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Rules are tried in order at every offset; anything that is not an
// instruction falls through to Noise one character at a time.
var memoryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Mul", Pattern: `mul\(\d{1,3},\d{1,3}\)`},
	{Name: "Do", Pattern: `do\(\)`},
	{Name: "Dont", Pattern: `don't\(\)`},
	{Name: "Noise", Pattern: `[\s\S]`},
})

// Memory is the instruction stream left once noise is elided.
type Memory struct {
	Instructions []*Instruction `parser:"@@*"`
}

// Instruction is exactly one of a mul, a do or a don't.
type Instruction struct {
	Mul  string `parser:"  @Mul"`
	Do   bool   `parser:"| @Do"`
	Dont bool   `parser:"| @Dont"`
}

var parser = participle.MustBuild[Memory](
	participle.Lexer(memoryLexer),
	participle.Elide("Noise"),
)

// Parse extracts the instructions from text.
func Parse(text string) (*Memory, error) {
	mem, err := parser.ParseString("memory", text)
	if err != nil {
		return nil, fmt.Errorf("day03: %w", err)
	}
	return mem, nil
}

// Product evaluates a mul instruction. It returns 0 for do and don't.
func (i *Instruction) Product() (int, error) {
	if i.Mul == "" {
		return 0, nil
	}
	var a, b int
	if _, err := fmt.Sscanf(i.Mul, "mul(%d,%d)", &a, &b); err != nil {
		return 0, fmt.Errorf("day03: operands of %q: %w", i.Mul, err)
	}
	return a * b, nil
}

// Sum adds every mul product. With conditionals set, products seen after a
// don't() and before the next do() are skipped.
func (m *Memory) Sum(conditionals bool) (int, error) {
	enabled := true
	total := 0
	for _, inst := range m.Instructions {
		switch {
		case inst.Do:
			enabled = true
		case inst.Dont:
			enabled = !conditionals
		case enabled:
			p, err := inst.Product()
			if err != nil {
				return 0, err
			}
			total += p
		}
	}
	return total, nil
}

// Part1 sums every uncorrupted mul instruction.
func Part1(lines []string) (int, error) {
	return solve(lines, false)
}

// Part2 sums only the mul instructions that are enabled.
func Part2(lines []string) (int, error) {
	return solve(lines, true)
}

// Lines are one continuous memory dump: a don't() carries over line breaks.
func solve(lines []string, conditionals bool) (int, error) {
	mem, err := Parse(strings.Join(lines, "\n"))
	if err != nil {
		return 0, err
	}
	return mem.Sum(conditionals)
}
