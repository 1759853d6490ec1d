// Package render formats solver output for a terminal.
package render

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
	"github.com/Jet-29/starting-word-shenanigans/internal/feedback"
	"github.com/Jet-29/starting-word-shenanigans/internal/game"
	"github.com/Jet-29/starting-word-shenanigans/internal/rarity"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

var (
	exact   = color.New(color.BgGreen, color.FgBlack, color.Bold)
	present = color.New(color.BgYellow, color.FgBlack, color.Bold)
	absent  = color.New(color.BgHiBlack, color.FgWhite)
)

// Tiles draws guess as colored letter tiles. Without color the tiles fall
// back to the textual pattern, e.g. "CRANE --G-G".
func Tiles(guess words.Word, p feedback.Pattern) string {
	if color.NoColor {
		return fmt.Sprintf("%s %s", strings.ToUpper(string(guess)), p)
	}
	var b strings.Builder
	for i := 0; i < guess.Len(); i++ {
		tile := " " + strings.ToUpper(string(guess.At(i))) + " "
		switch p.At(i) {
		case feedback.Exact:
			b.WriteString(exact.Sprint(tile))
		case feedback.Present:
			b.WriteString(present.Sprint(tile))
		default:
			b.WriteString(absent.Sprint(tile))
		}
	}
	return b.String()
}

// Ranked writes a ranking table.
func Ranked(w io.Writer, rs []analysis.Ranked, p analysis.Policy) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tGUESS\t%s\tBUCKETS\tLARGEST\tIN POOL\n", strings.ToUpper(p.String()))
	for i, r := range rs {
		in := ""
		if r.InPool {
			in = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%d\t%d\t%s\n", i+1, r.Guess, r.Score, r.Buckets, r.Largest, in)
	}
	return tw.Flush()
}

// Steps writes one line per solver step.
func Steps(w io.Writer, steps []game.Step) error {
	for _, s := range steps {
		_, err := fmt.Fprintf(w, "%d. %s  score %.4f  pool %d -> %d  %s\n",
			s.Turn, Tiles(s.Guess, s.Pattern), s.Score, s.PoolBefore, s.PoolAfter, s.State)
		if err != nil {
			return err
		}
	}
	return nil
}

// Outcome summarizes a finished simulation.
func Outcome(w io.Writer, res game.Result) error {
	verdict := color.RedString("lost")
	if res.Won {
		verdict = color.GreenString("won")
	}
	_, err := fmt.Fprintf(w, "%s: %s in %d guesses (%s)\n", res.Target, verdict, res.Guesses, res.State)
	return err
}

const barWidth = 40

// Bench writes a benchmark summary with a guess-count histogram.
func Bench(w io.Writer, rep game.BenchReport) error {
	fmt.Fprintf(w, "games    %d\n", rep.Games)
	fmt.Fprintf(w, "wins     %d (%.2f%%)\n", rep.Wins, 100*rep.WinRate())
	fmt.Fprintf(w, "mean     %.4f\n", rep.Mean())

	most := 0
	for _, n := range rep.Hist {
		most = max(most, n)
	}
	for _, k := range slices.Sorted(maps.Keys(rep.Hist)) {
		n := rep.Hist[k]
		bar := strings.Repeat("#", max(1, n*barWidth/most))
		fmt.Fprintf(w, "%2d  %-*s %d\n", k, barWidth, bar, n)
	}
	if rep.Wins > 0 {
		fmt.Fprintf(w, "worst    %s (%d guesses)\n", rep.Worst.Target, rep.Worst.Guesses)
	}
	if len(rep.Failures) > 0 {
		list := make([]string, len(rep.Failures))
		for i, f := range rep.Failures {
			list[i] = string(f)
		}
		fmt.Fprintf(w, "%s %s\n", color.RedString("failed  "), strings.Join(list, " "))
	}
	return nil
}

// Rarity writes a numbered difficulty listing.
func Rarity(w io.Writer, list []rarity.Scored) error {
	for i, s := range list {
		if _, err := fmt.Fprintf(w, "%3d. %8.3f  %s\n", i+1, s.Score, s.Word); err != nil {
			return err
		}
	}
	return nil
}
