// Package day18 solves 2024 day 18, "RAM Run".
package day18

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/grid"
)

//go:embed day18.go
var src []byte

func init() {
	aoc.Register(2024, 18, src, partOne, partTwo)
}

type cell bool // corrupted

func (c cell) String() string {
	if c {
		return "#"
	}
	return "."
}

// memory is a square of side dim+1 with the exit at (dim, dim).
type memory struct {
	dim   int
	bytes []grid.Coord
}

func parse(p *aoc.Puzzle) memory {
	m := memory{dim: 70}
	if p.SampleMode {
		m.dim = 6
	}
	p.ForLines(func(line string) {
		if line == "" {
			return
		}
		x, y, ok := strings.Cut(line, ",")
		if !ok {
			panic(fmt.Sprintf("bad byte %q", line))
		}
		m.bytes = append(m.bytes, grid.C(aoc.Int(x), aoc.Int(y)))
	})
	return m
}

func (m memory) corrupt(n int) *grid.Grid[cell] {
	g := grid.NewDefault[cell](m.dim+1, m.dim+1)
	for _, b := range m.bytes[:n] {
		g.Set(b, true)
	}
	return g
}

// shortest returns the fewest steps from (0,0) to (dim,dim), or -1 if the
// exit can't be reached.
func shortest(g *grid.Grid[cell], dim int) int {
	start, exit := grid.C(0, 0), grid.C(dim, dim)
	if c, _ := g.Get(start); c {
		return -1
	}
	dist := map[grid.Coord]int{start: 0}
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == exit {
			return dist[c]
		}
		for n, blocked := range g.CardinalNeighbours(c) {
			if _, ok := dist[n]; ok || bool(blocked) {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

func fallen(p *aoc.Puzzle) int {
	if p.SampleMode {
		return 12
	}
	return 1024
}

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func partOne(p *aoc.Puzzle) any {
	m := parse(p)
	return shortest(m.corrupt(fallen(p)), m.dim)
}

// firstBlocking returns the index of the first byte after which the exit
// is unreachable, or -1.
func (m memory) firstBlocking(from int) int {
	g := m.corrupt(from)
	for i := from; i < len(m.bytes); i++ {
		g.Set(m.bytes[i], true)
		if shortest(g, m.dim) < 0 {
			return i
		}
	}
	return -1
}

// want=6,1
func partTwo(p *aoc.Puzzle) any {
	m := parse(p)
	i := m.firstBlocking(fallen(p))
	if i < 0 {
		panic("exit never blocked")
	}
	b := m.bytes[i]
	return fmt.Sprintf("%d,%d", b.X, b.Y)
}
