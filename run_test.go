package aoc

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeSrc stands in for the embedded source of the fake days below.
const fakeSrc = `package aoc

/*
want=6

1
2
3
*/
func fakeSum(p *Puzzle) any

// want=3
func fakeCount(p *Puzzle) any

// want=7
func fakeWrong(p *Puzzle) any
`

func fakeSum(p *Puzzle) any {
	n := 0
	p.ForLines(func(line string) { n += Int(line) })
	return n
}

func fakeCount(p *Puzzle) any {
	n := 0
	p.ForLines(func(string) { n++ })
	return n
}

func fakeWrong(p *Puzzle) any { return 8 }

func fakePanic(p *Puzzle) any { panic("boom") }

func fakeMode(p *Puzzle) any { return p.SampleMode }

func init() {
	Register(1, 1, []byte(fakeSrc), fakeSum, fakeCount)
	Register(1, 2, []byte(fakeSrc), fakeSum, fakeWrong)
	Register(1, 3, nil, fakePanic)
	Register(1, 4, nil, fakeSum, fakeCount, fakeMode)
}

type mapInputs map[[2]int]string

func (m mapInputs) Get(_ context.Context, year, day int) ([]byte, error) {
	s, ok := m[[2]int{year, day}]
	if !ok {
		return nil, errors.New("no input")
	}
	return []byte(s), nil
}

func TestRegistry(t *testing.T) {
	d, ok := Lookup(1, 1)
	require.True(t, ok)
	require.Len(t, d.Parts, 2)
	assert.Equal(t, "fakeSum", d.Parts[0].Name)
	assert.True(t, d.Parts[0].HasSample())
	assert.True(t, d.Parts[1].HasSample())

	_, ok = Lookup(1, 99)
	assert.False(t, ok)

	var keys [][2]int
	for _, d := range Puzzles() {
		keys = append(keys, [2]int{d.Year, d.Day})
	}
	assert.Equal(t, [][2]int{{1, 1}, {1, 2}, {1, 3}, {1, 4}}, keys)

	assert.Panics(t, func() { Register(1, 1, nil, fakeSum) })
	assert.Panics(t, func() { Register(1, 50, nil) })
}

func TestRunnerRun(t *testing.T) {
	var out bytes.Buffer
	core, logs := observer.New(zap.InfoLevel)
	r := &Runner{
		Inputs: mapInputs{{1, 1}: "10\n20\n"},
		Out:    &out,
		Log:    zap.New(core),
	}
	require.NoError(t, r.Run(context.Background(), 1, 1))
	assert.Equal(t, "part one: 30\npart two: 2\n", out.String())
	assert.Equal(t, 2, logs.FilterMessage("sample ok").Len())
	assert.Equal(t, 2, logs.FilterMessage("solved").Len())
}

func TestRunnerPartLabels(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		Inputs:      mapInputs{{1, 4}: "1\n"},
		Out:         &out,
		SkipSamples: true,
	}
	require.NoError(t, r.Run(context.Background(), 1, 4))
	assert.Equal(t, "part one: 1\npart two: 1\npart 3: false\n", out.String())
}

func TestRunnerSampleMismatch(t *testing.T) {
	r := &Runner{Inputs: mapInputs{}, Out: &bytes.Buffer{}}
	err := r.Run(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrSampleMismatch)
	assert.Contains(t, err.Error(), "got 8; want 7")

	require.ErrorIs(t, CheckSamples(1, 2), ErrSampleMismatch)
	require.NoError(t, CheckSamples(1, 1))
}

func TestRunnerPanic(t *testing.T) {
	r := &Runner{Inputs: mapInputs{{1, 3}: ""}, Out: &bytes.Buffer{}}
	err := r.Run(context.Background(), 1, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fakePanic panicked: boom")
}

func TestRunnerNoSuchDay(t *testing.T) {
	r := &Runner{Inputs: mapInputs{}}
	require.ErrorIs(t, r.Run(context.Background(), 1, 99), ErrNoSuchDay)
	require.ErrorIs(t, CheckSamples(1, 99), ErrNoSuchDay)
}

func TestRunnerSamplesOnly(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, SamplesOnly: true}
	require.NoError(t, r.Run(context.Background(), 1, 1))
	assert.Empty(t, out.String())
}

func TestRunnerInputError(t *testing.T) {
	r := &Runner{Inputs: mapInputs{}, SkipSamples: true}
	require.Error(t, r.Run(context.Background(), 1, 1))
}
