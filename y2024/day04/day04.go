// Package day04 solves 2024 day 4, "Ceres Search".
package day04

import (
	_ "embed"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/grid"
)

//go:embed day04.go
var src []byte

func init() {
	aoc.Register(2024, 4, src, partOne, partTwo)
}

type letters = grid.Grid[grid.Char]

// spells reports whether word can be read from c stepping by dir.
func spells(g *letters, c grid.Coord, dir grid.Vector, word string) bool {
	for i, r := range []rune(word) {
		v, ok := g.Get(c.Add(dir.Scale(i)))
		if !ok || rune(v) != r {
			return false
		}
	}
	return true
}

func countXMAS(g *letters) int {
	n := 0
	for c, v := range g.All() {
		if v != 'X' {
			continue
		}
		for _, dir := range grid.EightWay {
			if spells(g, c, dir, "XMAS") {
				n++
			}
		}
	}
	return n
}

// countCrosses counts the A's sitting in the middle of two diagonal MAS's.
func countCrosses(g *letters) int {
	var (
		upRight   = grid.V(1, 1)
		downRight = grid.V(1, -1)
	)
	mas := func(c grid.Coord, dir grid.Vector) bool {
		start := c.Add(dir.Scale(-1))
		return spells(g, start, dir, "MAS") || spells(g, start, dir, "SAM")
	}
	n := 0
	for c, v := range g.All() {
		if v == 'A' && mas(c, upRight) && mas(c, downRight) {
			n++
		}
	}
	return n
}

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func partOne(p *aoc.Puzzle) any {
	return countXMAS(aoc.MustGet(grid.Chars(p.Text())))
}

// want=9
func partTwo(p *aoc.Puzzle) any {
	return countCrosses(aoc.MustGet(grid.Chars(p.Text())))
}
