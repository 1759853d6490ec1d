package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jet-29/starting-word-shenanigans/internal/feedback"
	"github.com/Jet-29/starting-word-shenanigans/internal/game"
	"github.com/Jet-29/starting-word-shenanigans/internal/render"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// candidates are listed once the pool is at most this small
const showPool = 12

var (
	solveOpener string

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve a live game from the feedback you type in",
		Long: `solve suggests a guess each turn and reads the feedback the game showed.

Enter the pattern alone (G = right spot, Y = wrong spot, - = absent), e.g.
  --G-G
or the word you actually played followed by its pattern:
  slate --G-G
"quit" ends the session.`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}
)

func init() {
	solveCmd.Flags().StringVar(&solveOpener, "opener", "", "fixed first guess")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	opts, err := state.gameOptions(solveOpener)
	if err != nil {
		return err
	}
	s, err := game.New(state.dict, state.ranker, opts)
	if err != nil {
		return err
	}
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for !s.State().Terminal() {
		best, err := s.Suggest(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "[%d left, %d candidates] try %s (%s %.4f)\n> ",
			s.Remaining(), s.Pool().Len(), strings.ToUpper(string(best.Guess)), state.policy, best.Score)
		if !in.Scan() {
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "quit" || line == "q" {
			return nil
		}

		guess, p, err := parseTurn(line, best.Guess)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		step, err := s.Apply(guess, p)
		if errors.Is(err, game.ErrInconsistentFeedback) || errors.Is(err, words.ErrInvalidWord) ||
			errors.Is(err, feedback.ErrLengthMismatch) {
			fmt.Fprintln(out, err)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %d -> %d\n", render.Tiles(step.Guess, step.Pattern), step.PoolBefore, step.PoolAfter)
		if n := s.Pool().Len(); n > 1 && n <= showPool {
			list := make([]string, n)
			for i, w := range s.Pool().Words() {
				list[i] = string(w)
			}
			fmt.Fprintf(out, "  %s\n", strings.Join(list, " "))
		}
	}

	switch s.State() {
	case game.Solved:
		w, _ := s.Answer()
		fmt.Fprintf(out, "solved: %s\n", strings.ToUpper(string(w)))
	case game.Exhausted:
		fmt.Fprintf(out, "out of guesses, %d candidates left\n", s.Pool().Len())
	}
	return nil
}

// parseTurn reads "PATTERN" or "WORD PATTERN"; a bare pattern applies to
// the suggested guess.
func parseTurn(line string, suggested words.Word) (words.Word, feedback.Pattern, error) {
	n := state.dict.Length()
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		p, err := feedback.ParsePattern(fields[0], n)
		return suggested, p, err
	case 2:
		w, err := state.dict.Lookup(fields[0])
		if err != nil {
			return "", feedback.Pattern{}, err
		}
		p, err := feedback.ParsePattern(fields[1], n)
		return w, p, err
	}
	return "", feedback.Pattern{}, fmt.Errorf("expected a pattern or a word and a pattern, got %q", line)
}
