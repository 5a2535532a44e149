// Command aoc checks and solves Advent of Code puzzles.
package main

import (
	"fmt"
	"os"

	"github.com/puzzlebox/aoc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    aoc.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Check and solve Advent of Code puzzles",
	Long: `aoc runs registered puzzle solutions.

Every part's embedded sample is checked before the real input is read.
Inputs are cached on disk and fetched with the session cookie on a miss.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = aoc.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.LogLevel, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "aoc.yaml", "config file")

	runCmd.Flags().BoolVar(&sampleOnly, "sample-only", false, "check the samples and stop")
	runCmd.Flags().BoolVar(&skipSample, "skip-sample", false, "go straight to the real input")
	runCmd.MarkFlagsMutuallyExclusive("sample-only", "skip-sample")

	rootCmd.AddCommand(runCmd, listCmd, fetchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
