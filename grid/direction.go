package grid

import (
	"fmt"
	"iter"
)

// Direction is one of the four compass directions.
//
// The values are ordered counter-clockwise so that turning is arithmetic
// modulo 4.
type Direction uint8

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions yields Up, Left, Down and Right, always in that order.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := Up; d <= Right; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// Vector returns the unit step for d. Up is +Y.
func (d Direction) Vector() Vector {
	switch d {
	case Up:
		return Vector{0, 1}
	case Left:
		return Vector{-1, 0}
	case Down:
		return Vector{0, -1}
	case Right:
		return Vector{1, 0}
	}
	panic(fmt.Sprintf("bogus direction %d", d))
}

func (d Direction) TurnLeft() Direction  { return (d + 1) % 4 }
func (d Direction) TurnRight() Direction { return (d + 3) % 4 }
func (d Direction) Reverse() Direction   { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection maps the arrows ^ v < > and the letters U D L R to a
// Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^', 'U':
		return Up, true
	case 'v', 'D':
		return Down, true
	case '<', 'L':
		return Left, true
	case '>', 'R':
		return Right, true
	}
	return 0, false
}
