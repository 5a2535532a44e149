package grid

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Coord is an absolute position on a grid. Y increases upward.
type Coord struct {
	X, Y int
}

// Vector is a displacement between two Coords. It has the same shape as
// Coord but is a distinct type so offsets and positions don't get mixed up.
type Vector struct {
	X, Y int
}

// C returns the Coord (x, y).
func C(x, y int) Coord { return Coord{x, y} }

// V returns the Vector (x, y).
func V(x, y int) Vector { return Vector{x, y} }

// Add returns c moved by v. There is no overflow checking; like all Go int
// arithmetic it wraps.
func (c Coord) Add(v Vector) Coord {
	return Coord{c.X + v.X, c.Y + v.Y}
}

// Sub returns the Vector that takes o to c.
func (c Coord) Sub(o Coord) Vector {
	return Vector{c.X - o.X, c.Y - o.Y}
}

// Compare orders by X first, then Y.
func (c Coord) Compare(o Coord) int {
	if c.X != o.X {
		return cmp.Compare(c.X, o.X)
	}
	return cmp.Compare(c.Y, o.Y)
}

func (c Coord) Less(o Coord) bool { return c.Compare(o) < 0 }

// MDist returns the manhattan distance between c and o.
func (c Coord) MDist(o Coord) int {
	return absDiff(c.X, o.X) + absDiff(c.Y, o.Y)
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Add returns the componentwise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Scale returns v repeated n times.
func (v Vector) Scale(n int) Vector {
	return Vector{v.X * n, v.Y * n}
}

func (v Vector) String() string { return fmt.Sprintf("<%d,%d>", v.X, v.Y) }

// EightWay holds the displacements to all eight surrounding cells, starting
// straight up and going clockwise.
var EightWay = [8]Vector{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func absDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}
