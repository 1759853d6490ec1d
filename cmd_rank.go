package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jet-29/starting-word-shenanigans/internal/render"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

var (
	rankTop      int
	rankPoolFile string

	rankCmd = &cobra.Command{
		Use:   "rank",
		Short: "List the best guesses against the candidate pool",
		Args:  cobra.NoArgs,
		RunE:  runRank,
	}
)

func init() {
	rankCmd.Flags().IntVar(&rankTop, "top", 10, "number of guesses to show")
	rankCmd.Flags().StringVar(&rankPoolFile, "pool-file", "", "restrict candidates to the words in this file")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	pool := state.dict.Pool()
	if rankPoolFile != "" {
		lines, err := readLines(rankPoolFile)
		if err != nil {
			return err
		}
		list := make([]words.Word, 0, len(lines))
		for _, l := range lines {
			w, err := state.dict.Lookup(l)
			if err != nil {
				return fmt.Errorf("%s: %w", rankPoolFile, err)
			}
			list = append(list, w)
		}
		if pool, err = words.NewPool(state.dict, list); err != nil {
			return err
		}
	}

	guesses := state.dict.Words()
	if state.cfg.HardMode {
		guesses = pool.Words()
	}
	rs, err := state.ranker.Rank(cmd.Context(), pool, guesses)
	if err != nil {
		return err
	}
	if rankTop > 0 && rankTop < len(rs) {
		rs = rs[:rankTop]
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d candidates, %d guesses\n", pool.Len(), len(guesses))
	return render.Ranked(cmd.OutOrStdout(), rs, state.policy)
}
