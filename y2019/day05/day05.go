// Package day05 solves 2019 day 5, "Sunny with a Chance of Asteroids".
package day05

import (
	_ "embed"
	"fmt"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/intcode"
)

//go:embed day05.go
var src []byte

func init() {
	aoc.Register(2019, 5, src, partOne, partTwo)
}

const (
	airConditioner  = 1
	thermalRadiator = 5
)

// diagnose runs the test program for the given system ID. Every output but
// the last is a test result that must be zero; the last is the diagnostic
// code.
func diagnose(program []int, system int) (int, error) {
	out, err := intcode.RunAll(program, system)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, intcode.ErrNoOutput
	}
	for i, v := range out[:len(out)-1] {
		if v != 0 {
			return 0, fmt.Errorf("test %d failed with %d", i, v)
		}
	}
	return out[len(out)-1], nil
}

/*
want=1

3,0,4,0,99
*/
func partOne(p *aoc.Puzzle) any {
	program := aoc.MustGet(intcode.Parse(p.Text()))
	return aoc.MustGet(diagnose(program, airConditioner))
}

/*
want=0

3,9,8,9,10,9,4,9,99,-1,8
*/
func partTwo(p *aoc.Puzzle) any {
	program := aoc.MustGet(intcode.Parse(p.Text()))
	return aoc.MustGet(diagnose(program, thermalRadiator))
}
