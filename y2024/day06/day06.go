// Package day06 solves 2024 day 6, "Guard Gallivant".
package day06

import (
	_ "embed"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/grid"
)

//go:embed day06.go
var src []byte

func init() {
	aoc.Register(2024, 6, src, partOne, partTwo)
}

const (
	obstacle grid.Char = '#'
	guard    grid.Char = '^'
)

type lab = grid.Grid[grid.Char]

type pose struct {
	at  grid.Coord
	dir grid.Direction
}

func parse(text string) (*lab, grid.Coord) {
	g := aoc.MustGet(grid.Chars(text))
	start, ok := g.Find(func(c grid.Char) bool { return c == guard })
	if !ok {
		panic("no guard")
	}
	return g, start
}

// patrol walks the guard from start until it leaves the lab or repeats a
// pose. It returns the cells visited and whether the walk loops.
func patrol(g *lab, start grid.Coord) (visited map[grid.Coord]bool, loops bool) {
	visited = map[grid.Coord]bool{}
	seen := map[pose]bool{}
	cur := pose{start, grid.Up}
	for {
		if seen[cur] {
			return visited, true
		}
		seen[cur] = true
		visited[cur.at] = true

		next, v, ok := g.Neighbour(cur.at, cur.dir)
		switch {
		case !ok:
			return visited, false
		case v == obstacle:
			cur.dir = cur.dir.TurnRight()
		default:
			cur.at = next
		}
	}
}

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func partOne(p *aoc.Puzzle) any {
	g, start := parse(p.Text())
	visited, _ := patrol(g, start)
	return len(visited)
}

// obstructions counts the cells where one new obstacle traps the guard in a
// loop. An obstruction only matters on the guard's original path, so only
// those cells are tried. g is left as it was found.
func obstructions(g *lab, start grid.Coord) (n, tried int) {
	path, _ := patrol(g, start)
	for c := range path {
		if c == start {
			continue
		}
		tried++
		was, _ := g.Get(c)
		g.Set(c, obstacle)
		if _, loops := patrol(g, start); loops {
			n++
		}
		g.Set(c, was)
	}
	return n, tried
}

// want=6
func partTwo(p *aoc.Puzzle) any {
	n, tried := obstructions(parse(p.Text()))
	p.Debugf("%d of %d candidate cells loop", n, tried)
	return n
}
