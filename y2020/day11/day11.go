// Package day11 solves 2020 day 11, "Seating System".
package day11

import (
	_ "embed"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/grid"
)

//go:embed day11.go
var src []byte

func init() {
	aoc.Register(2020, 11, src, partOne, partTwo)
}

const (
	floor    grid.Char = '.'
	empty    grid.Char = 'L'
	occupied grid.Char = '#'
)

type seats = grid.Grid[grid.Char]

// rule decides how many occupied seats a person can put up with, and which
// seats they look at.
type rule struct {
	tolerance int
	around    func(g *seats, c grid.Coord) int
}

func adjacent(g *seats, c grid.Coord) int {
	n := 0
	for _, v := range g.AllNeighbours(c) {
		if v == occupied {
			n++
		}
	}
	return n
}

// visible counts the occupied seats at the end of each of the eight lines
// of sight from c. Floor doesn't block the view; any seat does.
func visible(g *seats, c grid.Coord) int {
	n := 0
	for _, dir := range grid.EightWay {
		for p := c.Add(dir); ; p = p.Add(dir) {
			v, ok := g.Get(p)
			if !ok || v == empty {
				break
			}
			if v == occupied {
				n++
				break
			}
		}
	}
	return n
}

func step(g *seats, r rule) *seats {
	next := g.Clone()
	for c, v := range g.All() {
		if v == floor {
			continue
		}
		switch n := r.around(g, c); {
		case v == empty && n == 0:
			next.Set(c, occupied)
		case v == occupied && n >= r.tolerance:
			next.Set(c, empty)
		}
	}
	return next
}

// settle steps until the seating stops changing and returns the final
// layout with the number of rounds it took.
func settle(g *seats, r rule) (*seats, int) {
	prev := g.Fingerprint()
	for rounds := 1; ; rounds++ {
		g = step(g, r)
		fp := g.Fingerprint()
		if fp == prev {
			return g, rounds
		}
		prev = fp
	}
}

func solve(p *aoc.Puzzle, r rule) int {
	g := aoc.MustGet(grid.Chars(p.Text()))
	final, rounds := settle(g, r)
	p.Debugf("seating settled after %d rounds", rounds)
	return final.Count(func(v grid.Char) bool { return v == occupied })
}

/*
want=37

L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
*/
func partOne(p *aoc.Puzzle) any {
	return solve(p, rule{tolerance: 4, around: adjacent})
}

// want=26
func partTwo(p *aoc.Puzzle) any {
	return solve(p, rule{tolerance: 5, around: visible})
}
