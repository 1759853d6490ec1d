package main

import (
	"github.com/spf13/cobra"

	"github.com/Jet-29/starting-word-shenanigans/internal/game"
	"github.com/Jet-29/starting-word-shenanigans/internal/render"
)

var (
	simTarget string
	simOpener string

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Play one game against a known target",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
)

func init() {
	simulateCmd.Flags().StringVar(&simTarget, "target", "", "target word")
	simulateCmd.Flags().StringVar(&simOpener, "opener", "", "fixed first guess")
	_ = simulateCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	target, err := state.dict.Lookup(simTarget)
	if err != nil {
		return err
	}
	opts, err := state.gameOptions(simOpener)
	if err != nil {
		return err
	}
	res, err := game.Simulate(cmd.Context(), state.dict, state.ranker, target, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := render.Steps(out, res.Steps); err != nil {
		return err
	}
	return render.Outcome(out, res)
}
