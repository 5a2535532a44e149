package main

import (
	"fmt"

	"github.com/puzzlebox/aoc"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered days",
	Args:  cobra.NoArgs,
	RunE:  listPuzzles,
}

func listPuzzles(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	for _, d := range aoc.Puzzles() {
		samples := 0
		for _, p := range d.Parts {
			if p.HasSample() {
				samples++
			}
		}
		fmt.Fprintf(w, "%d/%02d\t%d parts\t%d samples\n", d.Year, d.Day, len(d.Parts), samples)
	}
	return nil
}
