package main

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Jet-29/starting-word-shenanigans/internal/game"
	"github.com/Jet-29/starting-word-shenanigans/internal/render"
)

var (
	benchLimit  int
	benchOpener string

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Simulate every dictionary word as the target and report statistics",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
)

func init() {
	benchCmd.Flags().IntVar(&benchLimit, "limit", 0, "only simulate the first N targets (0 = all)")
	benchCmd.Flags().StringVar(&benchOpener, "opener", "", "fixed first guess")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, _ []string) error {
	opts, err := state.gameOptions(benchOpener)
	if err != nil {
		return err
	}
	targets := state.dict.Words()
	if benchLimit > 0 && benchLimit < len(targets) {
		targets = targets[:benchLimit]
	}

	bar := progressbar.Default(int64(len(targets)), "simulating")
	rep, err := game.Bench(cmd.Context(), state.dict, state.ranker, targets, opts, state.cfg.Workers, func() {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}
	return render.Bench(cmd.OutOrStdout(), rep)
}
