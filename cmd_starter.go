package main

import (
	"fmt"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"github.com/Jet-29/starting-word-shenanigans/internal/daily"
	"github.com/Jet-29/starting-word-shenanigans/internal/rarity"
)

var (
	starterDate    string
	starterExclude string
	starterAlpha   float64
	starterSuggest []string
	starterUniform bool

	starterCmd = &cobra.Command{
		Use:   "starter",
		Short: "Pick the starting word for a day",
		Long: `starter picks a deterministic starting word for a calendar day.
Queued suggestions win if any is valid and unused; otherwise the word is
drawn at random, weighted towards obscure words, seeded by the date.`,
		Args: cobra.NoArgs,
		RunE: runStarter,
	}
)

func init() {
	f := starterCmd.Flags()
	f.StringVar(&starterDate, "date", "", "day as YYYY-MM-DD (default: today in the configured timezone)")
	f.StringVar(&starterExclude, "exclude", "", "file of already used words")
	f.Float64Var(&starterAlpha, "alpha", daily.DefaultAlpha, "weighting exponent")
	f.StringSliceVar(&starterSuggest, "suggest", nil, "queued suggestions, tried in order")
	f.BoolVar(&starterUniform, "uniform", false, "ignore rarity and pick uniformly")
	rootCmd.AddCommand(starterCmd)
}

func runStarter(cmd *cobra.Command, _ []string) error {
	day := starterDate
	if day == "" {
		day = daily.DateKey(time.Now(), state.loc)
	} else if _, err := time.Parse(time.DateOnly, day); err != nil {
		return fmt.Errorf("--date: %w", err)
	}
	out := cmd.OutOrStdout()

	if starterUniform {
		w := state.dict.At(daily.WordIndex(day, state.cfg.DailySalt, state.dict.Len()))
		fmt.Fprintf(out, "%s  %s\n", day, w)
		return nil
	}

	exclude := mapset.NewThreadUnsafeSet[string]()
	if starterExclude != "" {
		used, err := readLines(starterExclude)
		if err != nil {
			return err
		}
		for _, u := range used {
			exclude.Add(strings.ToLower(u))
		}
	}

	choice, err := daily.Next(state.dict, rarity.NewStats(state.dict), starterSuggest, daily.PickOptions{
		Date:    day,
		Salt:    state.cfg.DailySalt,
		Alpha:   starterAlpha,
		Exclude: exclude,
	})
	if err != nil {
		return err
	}
	source := "drawn"
	if choice.Queued {
		source = "suggested"
	}
	fmt.Fprintf(out, "%s  %s (%s)\n", day, choice.Word, source)
	return nil
}
