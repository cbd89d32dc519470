// Package input reads puzzle input files and splits them into typed columns
// and rows.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrColumnCount indicates a line did not hold the expected number of fields.
	ErrColumnCount = errors.New("input: unexpected number of fields")
	// ErrParse indicates a field could not be parsed.
	ErrParse = errors.New("input: failed to parse field")
)

// Lines reads r to the end and returns its lines without line terminators.
// A trailing newline does not produce an empty final line.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading lines: %w", err)
	}
	return lines, nil
}

// LinesFromFile opens path and returns its lines.
func LinesFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	lines, err := Lines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// Ints parses a decimal integer. It is the usual parse function for
// TwoColumns and Rows.
func Ints(s string) (int, error) {
	return strconv.Atoi(s)
}

// TwoColumns splits every line into exactly two whitespace-separated fields,
// parses both with parse and returns the left and right columns.
func TwoColumns[T any](lines []string, parse func(string) (T, error)) ([]T, []T, error) {
	left := make([]T, 0, len(lines))
	right := make([]T, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d has %d, want 2", ErrColumnCount, i+1, len(fields))
		}
		a, err := parseField(parse, fields[0], i)
		if err != nil {
			return nil, nil, err
		}
		b, err := parseField(parse, fields[1], i)
		if err != nil {
			return nil, nil, err
		}
		left = append(left, a)
		right = append(right, b)
	}
	return left, right, nil
}

// Rows parses every whitespace-separated field of every line.
// Rows may have different lengths; an empty line yields an empty row.
func Rows[T any](lines []string, parse func(string) (T, error)) ([][]T, error) {
	rows := make([][]T, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		row := make([]T, 0, len(fields))
		for _, word := range fields {
			v, err := parseField(parse, word, i)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseField[T any](parse func(string) (T, error), word string, line int) (T, error) {
	v, err := parse(word)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: line %d: %q: %v", ErrParse, line+1, word, err)
	}
	return v, nil
}
