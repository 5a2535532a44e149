package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/puzzlebox/aoc"
	"github.com/spf13/cobra"
)

var (
	sampleOnly bool
	skipSample bool
)

var runCmd = &cobra.Command{
	Use:   "run [year] day",
	Short: "Check a day's samples, then solve its input",
	Long: `Runs every part of a day. The year defaults to the config's year, or
else the latest year with a registered day.

Example:
  aoc run 2024 6
  aoc run --sample-only 18`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPuzzle,
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	year, day, err := yearDay(args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &aoc.Runner{
		Inputs:      aoc.NewInputs(cfg, logger),
		Out:         cmd.OutOrStdout(),
		Log:         logger,
		SkipSamples: skipSample,
		SamplesOnly: sampleOnly,
	}
	return r.Run(ctx, year, day)
}

// yearDay parses "[year] day", filling in the default year.
func yearDay(args []string) (year, day int, err error) {
	nums := make([]int, len(args))
	for i, a := range args {
		if nums[i], err = strconv.Atoi(a); err != nil {
			return 0, 0, fmt.Errorf("bad number %q", a)
		}
	}
	if len(nums) == 2 {
		return nums[0], nums[1], nil
	}
	return defaultYear(), nums[0], nil
}

func defaultYear() int {
	if cfg.Year != 0 {
		return cfg.Year
	}
	year := 0
	for _, d := range aoc.Puzzles() {
		year = max(year, d.Year)
	}
	return year
}
