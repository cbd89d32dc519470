package day09

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "2333133121414131402"

func TestPartialChecksum(t *testing.T) {
	assert.Equal(t, 7*(10+11+12+13+14), PartialChecksum(7, 10, 5))
	assert.Equal(t, 0, PartialChecksum(3, 4, 0))
}

// TestCompactBlocks_TinyDisks checks layouts small enough to draw.
func TestCompactBlocks_TinyDisks(t *testing.T) {
	cases := []struct {
		name     string
		diskMap  string
		want     []int
		checksum int
	}{
		{"SingleFile", "2", []int{0, 0}, 0},                                      // 00 -> 00
		{"OneGap", "232", []int{0, 0, 1, 1, free, free, free}, 5},                // 00...11 -> 0011...
		{"Example12345", "12345", []int{0, 2, 2, 1, 1, 1, 2, 2, 2, free, free, free, free, free, free}, 60},
		{"TrailingFree", "3132", []int{0, 0, 0, 1, 1, 1, free, free, free}, 3 + 4 + 5}, // 000.111.. -> 000111...
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDiskMap(tc.diskMap)
			require.NoError(t, err)
			got := CompactBlocks(d.Blocks())
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("CompactBlocks(%s) mismatch (-want +got):\n%s", tc.diskMap, diff)
			}
			assert.Equal(t, tc.checksum, Checksum(got))
		})
	}
}

func TestCompactFiles(t *testing.T) {
	d, err := ParseDiskMap("12345")
	require.NoError(t, err)
	// 0..111....22222: neither gap left of a file is large enough
	want := []Span{{ID: 0, Start: 0, Size: 1}, {ID: 1, Start: 3, Size: 3}, {ID: 2, Start: 10, Size: 5}}
	if diff := cmp.Diff(want, d.CompactFiles()); diff != "" {
		t.Errorf("CompactFiles mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, d.Files[1].Start, "CompactFiles must not modify the disk")
}

func TestPart1(t *testing.T) {
	got, err := Part1([]string{example})
	require.NoError(t, err)
	assert.Equal(t, 1928, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2([]string{example})
	require.NoError(t, err)
	assert.Equal(t, 2858, got)
}

func TestParseDiskMap_Errors(t *testing.T) {
	_, err := ParseDiskMap("  \n")
	assert.ErrorIs(t, err, ErrEmptyDiskMap)
	_, err = ParseDiskMap("12a")
	assert.ErrorIs(t, err, ErrBadDigit)
	_, err = Part1(nil)
	assert.ErrorIs(t, err, ErrEmptyDiskMap)
}
