// Package day09 compacts an amphipod's disk and computes its checksum.
//
// A disk map is a string of digits alternating between file lengths and
// free-space lengths; file ids count up from 0 in map order.
package day09

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyDiskMap is returned when the input holds no digits.
	ErrEmptyDiskMap = errors.New("day09: empty disk map")
	// ErrBadDigit is returned for a disk map character outside 0-9.
	ErrBadDigit = errors.New("day09: disk map character is not a digit")
)

// free marks an empty block in a block layout.
const free = -1

// Span is a run of blocks: a file when ID ≥ 0, free space when ID is free.
type Span struct {
	ID    int
	Start int
	Size  int
}

// Disk is a parsed disk map.
type Disk struct {
	Files  []Span // indexed by file id
	Frees  []Span // in disk order
	Length int    // total number of blocks
}

// ParseDiskMap decodes a dense disk map. Whitespace is ignored.
func ParseDiskMap(s string) (*Disk, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return nil, ErrEmptyDiskMap
	}
	d := &Disk{}
	for i, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q at %d", ErrBadDigit, c, i)
		}
		size := int(c - '0')
		if i%2 == 0 {
			d.Files = append(d.Files, Span{ID: len(d.Files), Start: d.Length, Size: size})
		} else {
			d.Frees = append(d.Frees, Span{ID: free, Start: d.Length, Size: size})
		}
		d.Length += size
	}
	return d, nil
}

// Blocks expands the disk into one entry per block: the file id, or -1.
func (d *Disk) Blocks() []int {
	blocks := make([]int, d.Length)
	for i := range blocks {
		blocks[i] = free
	}
	for _, f := range d.Files {
		for b := f.Start; b < f.Start+f.Size; b++ {
			blocks[b] = f.ID
		}
	}
	return blocks
}

// CompactBlocks moves single blocks from the end of the disk into the
// leftmost free block until no gap remains before the last file block.
func CompactBlocks(blocks []int) []int {
	out := append([]int(nil), blocks...)
	left, right := 0, len(out)-1
	for {
		for left < right && out[left] != free {
			left++
		}
		for left < right && out[right] == free {
			right--
		}
		if left >= right {
			return out
		}
		out[left], out[right] = out[right], free
	}
}

// CompactFiles moves each whole file once, in decreasing id order, into the
// leftmost free span to its left that can hold it. It returns the new file
// spans; d is left unchanged.
func (d *Disk) CompactFiles() []Span {
	files := append([]Span(nil), d.Files...)
	frees := append([]Span(nil), d.Frees...)
	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for i := range frees {
			gap := &frees[i]
			if gap.Start >= f.Start {
				break
			}
			if gap.Size >= f.Size {
				f.Start = gap.Start
				gap.Start += f.Size
				gap.Size -= f.Size
				break
			}
		}
	}
	return files
}

// Checksum sums block position × file id over a block layout.
func Checksum(blocks []int) int {
	sum := 0
	for pos, id := range blocks {
		if id != free {
			sum += pos * id
		}
	}
	return sum
}

// SpanChecksum is Checksum for a list of file spans.
func SpanChecksum(files []Span) int {
	sum := 0
	for _, f := range files {
		sum += PartialChecksum(f.ID, f.Start, f.Size)
	}
	return sum
}

// PartialChecksum is the checksum contribution of size blocks of file id
// starting at block start.
func PartialChecksum(id, start, size int) int {
	// start + (start+1) + … + (start+size-1)
	return id * (size*start + size*(size-1)/2)
}

func parse(lines []string) (*Disk, error) {
	return ParseDiskMap(strings.Join(lines, ""))
}

// Part1 compacts block by block and returns the checksum.
func Part1(lines []string) (int, error) {
	d, err := parse(lines)
	if err != nil {
		return 0, err
	}
	return Checksum(CompactBlocks(d.Blocks())), nil
}

// Part2 compacts whole files and returns the checksum.
func Part2(lines []string) (int, error) {
	d, err := parse(lines)
	if err != nil {
		return 0, err
	}
	return SpanChecksum(d.CompactFiles()), nil
}
