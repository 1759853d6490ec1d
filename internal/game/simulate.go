package game

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// Result is the outcome of one simulated game.
type Result struct {
	Target words.Word
	Steps  []Step
	State  State
	// Guesses is the number of guesses needed, including the final
	// confirming guess when the pool narrowed to one word without it
	// having been guessed yet.
	Guesses int
	// Won is true when the game was solved within the budget.
	Won bool
}

// Simulate plays a full game against target.
func Simulate(ctx context.Context, dict *words.Dictionary, ranker *analysis.Ranker, target words.Word, opts Options) (Result, error) {
	s, err := New(dict, ranker, opts)
	if err != nil {
		return Result{}, err
	}
	steps, err := s.Run(ctx, target)
	if err != nil {
		return Result{}, err
	}
	res := Result{Target: target, Steps: steps, State: s.State(), Guesses: len(steps)}
	if res.State == Solved {
		if n := len(steps); n == 0 || !steps[n-1].Pattern.Solved() {
			res.Guesses++
		}
		res.Won = res.Guesses <= opts.MaxGuesses
	}
	log.Debug().
		Str("session", s.ID).
		Str("target", string(target)).
		Int("guesses", res.Guesses).
		Bool("won", res.Won).
		Msg("simulation finished")
	return res, nil
}

// BenchReport summarizes simulations over many targets.
type BenchReport struct {
	Games    int
	Wins     int
	Total    int         // guesses summed over won games
	Hist     map[int]int // guesses needed -> games; lost games are not counted
	Worst    Result      // won game with the most guesses (ties: first target lexically)
	Failures []words.Word
}

// Mean is the average number of guesses over won games.
func (r BenchReport) Mean() float64 {
	if r.Wins == 0 {
		return 0
	}
	return float64(r.Total) / float64(r.Wins)
}

// WinRate is the fraction of games won.
func (r BenchReport) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// Bench simulates a game for every target, up to workers games at a time
// (0 means GOMAXPROCS). progress, if not nil, is called once per finished
// game and must be safe for concurrent use.
func Bench(ctx context.Context, dict *words.Dictionary, ranker *analysis.Ranker, targets []words.Word, opts Options, workers int, progress func()) (BenchReport, error) {
	if len(targets) == 0 {
		return BenchReport{}, fmt.Errorf("%w: no targets to simulate", words.ErrEmptyPool)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, target := range targets {
		g.Go(func() error {
			res, err := Simulate(gctx, dict, ranker, target, opts)
			if err != nil {
				return fmt.Errorf("simulate %s: %w", target, err)
			}
			results[i] = res
			if progress != nil {
				progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BenchReport{}, err
	}

	rep := BenchReport{Games: len(results), Hist: make(map[int]int)}
	for _, res := range results {
		if !res.Won {
			rep.Failures = append(rep.Failures, res.Target)
			continue
		}
		rep.Wins++
		rep.Total += res.Guesses
		rep.Hist[res.Guesses]++
		if res.Guesses > rep.Worst.Guesses ||
			(res.Guesses == rep.Worst.Guesses && res.Target < rep.Worst.Target) {
			rep.Worst = res
		}
	}
	slices.Sort(rep.Failures)
	log.Info().
		Int("games", rep.Games).
		Int("wins", rep.Wins).
		Float64("mean", rep.Mean()).
		Msg("bench finished")
	return rep, nil
}
