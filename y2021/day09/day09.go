// Package day09 solves 2021 day 9, "Smoke Basin".
package day09

import (
	_ "embed"
	"slices"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/grid"
)

//go:embed day09.go
var src []byte

func init() {
	aoc.Register(2021, 9, src, partOne, partTwo)
}

func parse(text string) *grid.Grid[int] {
	return aoc.MustGet(grid.Parse(text, func(r rune) int { return aoc.DigVal(byte(r)) }))
}

// lowPoints returns the cells lower than all of their neighbours.
func lowPoints(g *grid.Grid[int]) []grid.Coord {
	var low []grid.Coord
	for c, h := range g.All() {
		isLow := true
		for _, n := range g.CardinalNeighbours(c) {
			if n <= h {
				isLow = false
				break
			}
		}
		if isLow {
			low = append(low, c)
		}
	}
	return low
}

// basinSize floods out from a low point through every cell that isn't a 9.
func basinSize(g *grid.Grid[int], low grid.Coord) int {
	seen := map[grid.Coord]bool{low: true}
	q := []grid.Coord{low}
	for len(q) > 0 {
		c := q[0]
		q = q[1:]
		for n, h := range g.CardinalNeighbours(c) {
			if h == 9 || seen[n] {
				continue
			}
			seen[n] = true
			q = append(q, n)
		}
	}
	return len(seen)
}

/*
want=15

2199943210
3987894921
9856789892
8767896789
9899965678
*/
func partOne(p *aoc.Puzzle) any {
	g := parse(p.Text())
	risk := 0
	for _, c := range lowPoints(g) {
		h, _ := g.Get(c)
		risk += h + 1
	}
	return risk
}

// want=1134
func partTwo(p *aoc.Puzzle) any {
	g := parse(p.Text())
	var sizes []int
	for _, c := range lowPoints(g) {
		sizes = append(sizes, basinSize(g, c))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return aoc.Product(sizes[:min(3, len(sizes))]...)
}
