// Package day11 solves 2021 day 11, "Dumbo Octopus".
package day11

import (
	_ "embed"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/grid"
)

//go:embed day11.go
var src []byte

func init() {
	aoc.Register(2021, 11, src, partOne, partTwo)
}

func parse(text string) *grid.Grid[int] {
	return aoc.MustGet(grid.Parse(text, func(r rune) int { return aoc.DigVal(byte(r)) }))
}

// step advances the octopuses one step in place and returns how many
// flashed.
func step(g *grid.Grid[int]) int {
	var ready []grid.Coord
	charge := func(c grid.Coord) {
		v, _ := g.Get(c)
		v++
		g.Set(c, v)
		if v == 10 {
			ready = append(ready, c)
		}
	}
	for c := range g.All() {
		charge(c)
	}
	flashed := map[grid.Coord]bool{}
	for len(ready) > 0 {
		c := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		flashed[c] = true
		for n := range g.AllNeighbours(c) {
			charge(n)
		}
	}
	for c := range flashed {
		g.Set(c, 0)
	}
	return len(flashed)
}

/*
want=1656

5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
*/
func partOne(p *aoc.Puzzle) any {
	g := parse(p.Text())
	total := 0
	for range 100 {
		total += step(g)
	}
	return total
}

// want=195
func partTwo(p *aoc.Puzzle) any {
	g := parse(p.Text())
	all := g.Width() * g.Height()
	for n := 1; ; n++ {
		if step(g) == all {
			return n
		}
	}
}
