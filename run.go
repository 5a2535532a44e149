package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNoSuchDay      = errors.New("aoc: no such day")
	ErrSampleMismatch = errors.New("aoc: sample mismatch")
)

// InputSource provides real puzzle inputs.
type InputSource interface {
	Get(ctx context.Context, year, day int) ([]byte, error)
}

// Runner checks a day's samples and then solves its real input.
type Runner struct {
	Inputs InputSource
	Out    io.Writer   // answers; os.Stdout if nil
	Log    *zap.Logger // diagnostics; discarded if nil

	SkipSamples bool
	SamplesOnly bool
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// Run runs every part of the given day, printing "part one: <answer>" and
// so on to r.Out.
func (r *Runner) Run(ctx context.Context, year, day int) error {
	d, ok := Lookup(year, day)
	if !ok {
		return fmt.Errorf("%d/%d: %w", year, day, ErrNoSuchDay)
	}
	log := r.logger().With(zap.Int("year", year), zap.Int("day", day))

	if !r.SkipSamples {
		if err := checkSamples(ctx, d, log); err != nil {
			return err
		}
	}
	if r.SamplesOnly {
		return nil
	}

	input, err := r.Inputs.Get(ctx, year, day)
	if err != nil {
		return err
	}
	for i, part := range d.Parts {
		p := &Puzzle{Year: year, Day: day, input: input, ctx: ctx, log: log}
		t0 := time.Now()
		v, err := part.call(p)
		if err != nil {
			return fmt.Errorf("%d/%d: %w", year, day, err)
		}
		log.Info("solved", zap.String("part", part.Name), zap.Duration("took", time.Since(t0).Round(time.Microsecond)))
		fmt.Fprintf(r.out(), "part %s: %v\n", partLabel(i), v)
	}
	return nil
}

// CheckSamples runs only the embedded samples of a day.
func CheckSamples(year, day int) error {
	d, ok := Lookup(year, day)
	if !ok {
		return fmt.Errorf("%d/%d: %w", year, day, ErrNoSuchDay)
	}
	return checkSamples(context.Background(), d, zap.NewNop())
}

func checkSamples(ctx context.Context, d *Day, log *zap.Logger) error {
	for _, part := range d.Parts {
		if part.sample == nil {
			log.Warn("no sample", zap.String("part", part.Name))
			continue
		}
		p := &Puzzle{
			Year:       d.Year,
			Day:        d.Day,
			SampleMode: true,
			input:      []byte(part.sample.input),
			ctx:        ctx,
			log:        log,
		}
		v, err := part.call(p)
		if err != nil {
			return fmt.Errorf("%d/%d sample: %w", d.Year, d.Day, err)
		}
		if got := fmt.Sprint(v); got != part.sample.want {
			return fmt.Errorf("%d/%d %s: %w: got %v; want %v", d.Year, d.Day, part.Name, ErrSampleMismatch, got, part.sample.want)
		}
		log.Info("sample ok", zap.String("part", part.Name))
	}
	return nil
}

func (pt Part) call(p *Puzzle) (v any, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("%s panicked: %v", pt.Name, e)
		}
	}()
	return pt.fn(p), nil
}

func partLabel(i int) string {
	switch i {
	case 0:
		return "one"
	case 1:
		return "two"
	}
	return strconv.Itoa(i + 1)
}
