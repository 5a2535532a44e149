// Package day02 solves 2019 day 2, "1202 Program Alarm".
package day02

import (
	_ "embed"
	"fmt"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/intcode"
)

//go:embed day02.go
var src []byte

func init() {
	aoc.Register(2019, 2, src, partOne, partTwo)
}

// run patches the noun and verb into program and returns what's left at
// address 0 once it halts.
func run(program []int, noun, verb int) (int, error) {
	m := intcode.New(program)
	m.SetMem(1, noun)
	m.SetMem(2, verb)
	s, err := m.Run()
	if err != nil {
		return 0, err
	}
	if s != intcode.Terminated {
		return 0, fmt.Errorf("program stopped in state %v", s)
	}
	return m.Mem(0), nil
}

// search finds the noun and verb, each in [0, 99], that make program
// produce want.
func search(program []int, want int) (noun, verb int, ok bool) {
	for noun := 0; noun <= 99; noun++ {
		for verb := 0; verb <= 99; verb++ {
			if got, err := run(program, noun, verb); err == nil && got == want {
				return noun, verb, true
			}
		}
	}
	return 0, 0, false
}

/*
want=3500

1,9,10,3,2,3,11,0,99,30,40,50
*/
func partOne(p *aoc.Puzzle) any {
	program := aoc.MustGet(intcode.Parse(p.Text()))
	noun, verb := 12, 2 // the "1202 program alarm" state
	if p.SampleMode {
		noun, verb = program[1], program[2]
	}
	return aoc.MustGet(run(program, noun, verb))
}

func partTwo(p *aoc.Puzzle) any {
	program := aoc.MustGet(intcode.Parse(p.Text()))
	noun, verb, ok := search(program, 19690720)
	if !ok {
		panic("no noun and verb produce 19690720")
	}
	return 100*noun + verb
}
