package intcode

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var ErrNoOutput = errors.New("intcode: amplifier produced no output")

// Series runs one copy of program per phase setting, in order. Each
// amplifier is given its phase and then the previous amplifier's output;
// the first one gets seed. It returns the last amplifier's output.
func Series(program, phases []int, seed int) (int, error) {
	signal := seed
	for i, phase := range phases {
		out, err := RunAll(program, phase, signal)
		if err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
		if len(out) == 0 {
			return 0, fmt.Errorf("amplifier %d: %w", i, ErrNoOutput)
		}
		signal = out[len(out)-1]
	}
	return signal, nil
}

// Feedback runs one copy of program per phase setting, each in its own
// goroutine, with every amplifier's output wired to the next amplifier's
// input and the last wired back to the first. The first amplifier also
// receives seed. When every amplifier has terminated, Feedback returns the
// last value the final amplifier sent.
//
// Outputs queue up on the sender until the receiver takes them, so an
// amplifier never blocks on a neighbour that isn't reading. Outputs bound
// for an amplifier that has terminated are dropped. An amplifier that
// waits for input after its predecessor is finished fails with
// ErrInputExhausted. Cancelling ctx stops any amplifier still waiting.
func Feedback(ctx context.Context, program, phases []int, seed int) (int, error) {
	n := len(phases)
	if n == 0 {
		return 0, ErrNoOutput
	}
	links := make([]chan int, n) // links[i] feeds amplifier i
	done := make([]chan struct{}, n)
	for i := range links {
		links[i] = make(chan int, 1)
		done[i] = make(chan struct{})
	}
	links[0] <- seed

	var (
		last    int
		emitted bool
	)
	g, ctx := errgroup.WithContext(ctx)
	for i, phase := range phases {
		m := New(program)
		m.Push(phase)
		next := (i + 1) % n
		in, out := links[i], links[next]
		final := i == n-1
		g.Go(func() error {
			defer close(out)
			var pending []int
			for {
				s, err := m.Run()
				if err != nil {
					return fmt.Errorf("amplifier %d: %w", i, err)
				}
				switch s {
				case Terminated:
					close(done[i])
					for _, v := range pending {
						select {
						case out <- v:
						case <-done[next]:
							return nil
						case <-ctx.Done():
							return ctx.Err()
						}
					}
					return nil
				case HasOutput:
					v, _ := m.PopOutput()
					if final {
						last, emitted = v, true
					}
					pending = append(pending, v)
				case AwaitingInput:
					// Nil channels disable the send cases while nothing is
					// pending.
					var (
						send     chan<- int
						head     int
						nextDone <-chan struct{}
					)
					if len(pending) > 0 {
						send, head, nextDone = out, pending[0], done[next]
					}
					select {
					case v, ok := <-in:
						if !ok {
							return fmt.Errorf("amplifier %d: %w", i, ErrInputExhausted)
						}
						m.Push(v)
					case send <- head:
						pending = pending[1:]
					case <-nextDone:
						pending = nil
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if !emitted {
		return 0, ErrNoOutput
	}
	return last, nil
}
