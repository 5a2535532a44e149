// Package day09 solves 2019 day 9, "Sensor Boost".
package day09

import (
	_ "embed"
	"fmt"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/intcode"
)

//go:embed day09.go
var src []byte

func init() {
	aoc.Register(2019, 9, src, partOne, partTwo)
}

// boost runs the BOOST program in the given mode. A working VM makes it
// print a single value; anything more is the list of broken opcodes.
func boost(program []int, mode int) (int, error) {
	out, err := intcode.RunAll(program, mode)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("BOOST reported malfunctioning opcodes: %v", out)
	}
	return out[0], nil
}

/*
want=1125899906842624

104,1125899906842624,99
*/
func partOne(p *aoc.Puzzle) any {
	program := aoc.MustGet(intcode.Parse(p.Text()))
	return aoc.MustGet(boost(program, 1))
}

// want=1125899906842624
func partTwo(p *aoc.Puzzle) any {
	program := aoc.MustGet(intcode.Parse(p.Text()))
	return aoc.MustGet(boost(program, 2))
}
