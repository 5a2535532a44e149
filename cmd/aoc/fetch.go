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
	"go.uber.org/zap"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch year day",
	Short: "Download a day's input into the cache",
	Args:  cobra.ExactArgs(2),
	RunE:  fetchInput,
}

func fetchInput(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad year %q", args[0])
	}
	day, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad day %q", args[1])
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := aoc.NewInputs(cfg, logger)
	b, err := in.Get(ctx, year, day)
	if err != nil {
		return err
	}
	logger.Info("cached", zap.String("path", in.Path(year, day)), zap.Int("bytes", len(b)))
	fmt.Fprintln(cmd.OutOrStdout(), in.Path(year, day))
	return nil
}
