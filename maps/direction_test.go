package maps_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/advent2024/maps"
)

// TestDirection_Rotations checks the rotation identities for every heading.
func TestDirection_Rotations(t *testing.T) {
	for d := range maps.Directions() {
		t.Run(d.String(), func(t *testing.T) {
			assert.Equal(t, d, d.TurnedRight().TurnedLeft())
			assert.Equal(t, d, d.TurnedLeft().TurnedRight())
			assert.Equal(t, d, d.TurnedAround().TurnedAround())
			assert.Equal(t, d, d.TurnedRight().TurnedRight().TurnedRight().TurnedRight())
			assert.Equal(t, d.TurnedRight().TurnedRight(), d.TurnedAround())
			assert.NotEqual(t, d, d.TurnedRight())
		})
	}
}

func TestDirection_TurnedRight(t *testing.T) {
	cases := []struct {
		in, right, left, around maps.Direction
	}{
		{maps.Up, maps.Right, maps.Left, maps.Down},
		{maps.Right, maps.Down, maps.Up, maps.Left},
		{maps.Down, maps.Left, maps.Right, maps.Up},
		{maps.Left, maps.Up, maps.Down, maps.Right},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.right, tc.in.TurnedRight(), "%v right", tc.in)
		assert.Equal(t, tc.left, tc.in.TurnedLeft(), "%v left", tc.in)
		assert.Equal(t, tc.around, tc.in.TurnedAround(), "%v around", tc.in)
	}
}

// TestDirection_InPlace checks that the mutating variants match the pure ones.
func TestDirection_InPlace(t *testing.T) {
	d := maps.Up
	d.TurnRight()
	assert.Equal(t, maps.Right, d)
	d.TurnAround()
	assert.Equal(t, maps.Left, d)
	d.TurnLeft()
	assert.Equal(t, maps.Down, d)
}

func TestDirections_OrderAndRestart(t *testing.T) {
	want := []maps.Direction{maps.Up, maps.Right, maps.Down, maps.Left}
	assert.Equal(t, want, slices.Collect(maps.Directions()))
	assert.Equal(t, want, slices.Collect(maps.Directions()), "a second call yields the full sequence again")

	var first []maps.Direction
	for d := range maps.Directions() {
		first = append(first, d)
		break
	}
	assert.Equal(t, []maps.Direction{maps.Up}, first)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "up", maps.Up.String())
	assert.Equal(t, "left", maps.Left.String())
	assert.Equal(t, "unknown", maps.Direction(9).String())
}
