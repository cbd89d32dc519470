package day03_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2024/solvers/day03"
)

func sum(t *testing.T, text string) int {
	t.Helper()
	mem, err := day03.Parse(text)
	require.NoError(t, err)
	got, err := mem.Sum(false)
	require.NoError(t, err)
	return got
}

func TestSum(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"LeadingZeros", "mul(100,002)", 200},
		{"SpaceBreaksInstruction", "mul (100,002)lkdsjflshalasjf", 0},
		{"NestedPrefix", "mul(mul(10,7)40,200)mul(10,3)", 100},
		{"FourDigits", "mul(1234,5)", 0},
		{"Empty", "", 0},
		{"Example", "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))", 161},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sum(t, tc.text))
		})
	}
}

func TestPart1(t *testing.T) {
	got, err := day03.Part1([]string{"xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))"})
	require.NoError(t, err)
	assert.Equal(t, 161, got)
}

func TestPart2(t *testing.T) {
	got, err := day03.Part2([]string{"xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"})
	require.NoError(t, err)
	assert.Equal(t, 48, got)
}

// TestPart2_AcrossLines checks that a don't() on one line disables the next.
func TestPart2_AcrossLines(t *testing.T) {
	lines := []string{"mul(2,3)don't()", "mul(4,5)", "do()mul(1,1)"}
	got, err := day03.Part2(lines)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	all, err := day03.Part1(lines)
	require.NoError(t, err)
	assert.Equal(t, 27, all)
}

func TestParse_Instructions(t *testing.T) {
	mem, err := day03.Parse("do()xdon't()mul(3,4)")
	require.NoError(t, err)
	require.Len(t, mem.Instructions, 3)
	assert.True(t, mem.Instructions[0].Do)
	assert.True(t, mem.Instructions[1].Dont)
	p, err := mem.Instructions[2].Product()
	require.NoError(t, err)
	assert.Equal(t, 12, p)
}
