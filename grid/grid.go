// Package grid is a dense, fixed-size 2D container addressed by Coord.
//
// Cells are stored row-major with the first row of storage being the highest
// Y, so text parsed top to bottom reads naturally with Up as +Y.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrDimensions is returned by New when the data can't be cut into rows of
// the requested width.
var ErrDimensions = errors.New("grid: data length is not a multiple of width")

// Grid is a width×height block of T. It is not safe for concurrent
// mutation.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// New returns a grid over data with the given width. The height is
// len(data)/width. New takes ownership of data.
func New[T any](data []T, width int) (*Grid[T], error) {
	if width <= 0 || len(data)%width != 0 {
		return nil, fmt.Errorf("%w: len %d, width %d", ErrDimensions, len(data), width)
	}
	return &Grid[T]{
		cells:  data,
		width:  width,
		height: len(data) / width,
	}, nil
}

// MustNew is like New but panics on a dimension mismatch.
func MustNew[T any](data []T, width int) *Grid[T] {
	g, err := New(data, width)
	if err != nil {
		panic(err)
	}
	return g
}

// NewDefault returns a width×height grid of zero values. It panics unless
// width is positive and height is not negative.
func NewDefault[T any](width, height int) *Grid[T] {
	if width <= 0 || height < 0 {
		panic(fmt.Sprintf("grid: NewDefault with bad size %dx%d", width, height))
	}
	return &Grid[T]{
		cells:  make([]T, width*height),
		width:  width,
		height: height,
	}
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether c addresses a cell of g.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// offset maps c to its index in g.cells. The stride is the width, which
// keeps non-square grids addressable.
func (g *Grid[T]) offset(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return c.X + g.width*(g.height-1-c.Y), true
}

// coord is the inverse of offset.
func (g *Grid[T]) coord(i int) Coord {
	return Coord{i % g.width, g.height - 1 - i/g.width}
}

// Get returns the cell at c. It reports false, rather than panicking, when c
// is outside the grid.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	i, ok := g.offset(c)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// Set stores v at c. Writing outside the grid is a programming error and
// panics; callers are expected to have obtained c from Get, Find or All.
func (g *Grid[T]) Set(c Coord, v T) {
	i, ok := g.offset(c)
	if !ok {
		panic(fmt.Sprintf("grid: Set at %v outside %dx%d grid", c, g.width, g.height))
	}
	g.cells[i] = v
}

// Rows yields each row of storage, top (highest Y) first. The slices alias
// the grid.
func (g *Grid[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for i := 0; i < len(g.cells); i += g.width {
			if !yield(g.cells[i : i+g.width : i+g.width]) {
				return
			}
		}
	}
}

// Neighbour returns the cell one step from c in direction d, along with its
// coordinate.
func (g *Grid[T]) Neighbour(c Coord, d Direction) (Coord, T, bool) {
	n := c.Add(d.Vector())
	v, ok := g.Get(n)
	return n, v, ok
}

// CardinalNeighbours yields the in-bounds neighbours of c in Directions
// order.
func (g *Grid[T]) CardinalNeighbours(c Coord) iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for d := range Directions() {
			if n, v, ok := g.Neighbour(c, d); ok {
				if !yield(n, v) {
					return
				}
			}
		}
	}
}

// AllNeighbours yields the in-bounds cells among the eight surrounding c.
func (g *Grid[T]) AllNeighbours(c Coord) iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for _, v := range EightWay {
			n := c.Add(v)
			if cell, ok := g.Get(n); ok {
				if !yield(n, cell) {
					return
				}
			}
		}
	}
}

// Find returns the coordinate of the first cell, in storage order, for which
// pred is true.
func (g *Grid[T]) Find(pred func(T) bool) (Coord, bool) {
	i := slices.IndexFunc(g.cells, pred)
	if i < 0 {
		return Coord{}, false
	}
	return g.coord(i), true
}

// All yields every cell with its coordinate in storage order.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(g.coord(i), v) {
				return
			}
		}
	}
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Clone returns a shallow copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		cells:  slices.Clone(g.cells),
		width:  g.width,
		height: g.height,
	}
}

// String renders one line per row, each cell formatted with fmt.Sprint.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for row := range g.Rows() {
		for _, v := range row {
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fingerprint hashes the rendered grid. Equal grids have equal
// fingerprints, which is enough to spot a state that stopped changing.
func (g *Grid[T]) Fingerprint() uint64 {
	return xxhash.Sum64String(g.String())
}
