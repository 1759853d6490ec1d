package main

import (
	"github.com/spf13/cobra"

	"github.com/Jet-29/starting-word-shenanigans/internal/rarity"
	"github.com/Jet-29/starting-word-shenanigans/internal/render"
)

var (
	wordsTop     int
	wordsEasiest bool

	wordsCmd = &cobra.Command{
		Use:   "words",
		Short: "List dictionary words by how obscure they are",
		Args:  cobra.NoArgs,
		RunE:  runWords,
	}
)

func init() {
	wordsCmd.Flags().IntVar(&wordsTop, "top", 20, "number of words to show")
	wordsCmd.Flags().BoolVar(&wordsEasiest, "easiest", false, "show the most common-looking words instead")
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, _ []string) error {
	stats := rarity.NewStats(state.dict)
	return render.Rarity(cmd.OutOrStdout(), rarity.Top(state.dict, stats, wordsTop, !wordsEasiest))
}
