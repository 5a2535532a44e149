// Package day07 solves 2019 day 7, "Amplification Circuit".
package day07

import (
	"context"
	_ "embed"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/intcode"
)

//go:embed day07.go
var src []byte

func init() {
	aoc.Register(2019, 7, src, partOne, partTwo)
}

// maxSignal tries every ordering of phases and returns the strongest
// thruster signal.
func maxSignal(phases []int, signal func(order []int) (int, error)) (int, error) {
	best, first := 0, true
	for order := range aoc.Permutations(phases) {
		v, err := signal(order)
		if err != nil {
			return 0, err
		}
		if first || v > best {
			best, first = v, false
		}
	}
	return best, nil
}

/*
want=43210

3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0
*/
func partOne(p *aoc.Puzzle) any {
	program := aoc.MustGet(intcode.Parse(p.Text()))
	return aoc.MustGet(maxSignal([]int{0, 1, 2, 3, 4}, func(order []int) (int, error) {
		return intcode.Series(program, order, 0)
	}))
}

/*
want=139629729

3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5
*/
func partTwo(p *aoc.Puzzle) any {
	program := aoc.MustGet(intcode.Parse(p.Text()))
	return aoc.MustGet(feedbackMax(p.Context(), program))
}

func feedbackMax(ctx context.Context, program []int) (int, error) {
	return maxSignal([]int{5, 6, 7, 8, 9}, func(order []int) (int, error) {
		return intcode.Feedback(ctx, program, order, 0)
	})
}
