package maps

import "iter"

// Direction is one of the four cardinal headings.
type Direction uint8

// Directions in clockwise order; turning right moves one step along it.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions yields Up, Right, Down, Left. Every call returns a fresh sequence.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range [...]Direction{Up, Right, Down, Left} {
			if !yield(d) {
				return
			}
		}
	}
}

// TurnedRight returns the heading 90° clockwise from d.
func (d Direction) TurnedRight() Direction {
	return (d + 1) % 4
}

// TurnedLeft returns the heading 90° counter-clockwise from d.
func (d Direction) TurnedLeft() Direction {
	return (d + 3) % 4
}

// TurnedAround returns the opposite heading.
func (d Direction) TurnedAround() Direction {
	return (d + 2) % 4
}

// TurnRight rotates d in place.
func (d *Direction) TurnRight() { *d = d.TurnedRight() }

// TurnLeft rotates d in place.
func (d *Direction) TurnLeft() { *d = d.TurnedLeft() }

// TurnAround reverses d in place.
func (d *Direction) TurnAround() { *d = d.TurnedAround() }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// delta is the unit offset for d with y growing downward.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}
