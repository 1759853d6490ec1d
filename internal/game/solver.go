// internal/game/solver.go
//
// Solver drives one solving session.
// Responsibilities:
//   - Pick the top-ranked guess for the current pool (Suggest).
//   - Apply observed feedback: shrink the pool, spend a guess, move state.
//   - Play whole games against a known target (Step, Run).
//
// State transitions after each Apply:
//   - all-exact feedback            → Solved
//   - exactly one candidate left    → Solved
//   - guess budget spent            → Exhausted
//   - otherwise                     → Active
//
// Feedback comes either from a real target (simulation) or from the caller
// (interactive play). The pool is replaced on every round, never edited.

package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
	"github.com/Jet-29/starting-word-shenanigans/internal/feedback"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// Solver holds the state of a single session. It is not safe for concurrent
// use; run one Solver per goroutine.
type Solver struct {
	ID string

	dict      *words.Dictionary
	ranker    *analysis.Ranker
	opts      Options
	pool      *words.Pool
	remaining int
	state     State
	history   []Step
	log       zerolog.Logger
}

// Option customizes a new Solver.
type Option func(*Solver) error

// WithPool starts the session from pool instead of the whole dictionary.
func WithPool(pool *words.Pool) Option {
	return func(s *Solver) error {
		if pool == nil || pool.Len() == 0 {
			return fmt.Errorf("%w: starting pool is empty", words.ErrEmptyPool)
		}
		if pool.Dictionary() != s.dict {
			return fmt.Errorf("%w: starting pool belongs to another dictionary", analysis.ErrInvalidConfig)
		}
		s.pool = pool
		return nil
	}
}

// New starts a session over dict.
func New(dict *words.Dictionary, ranker *analysis.Ranker, opts Options, extra ...Option) (*Solver, error) {
	if dict == nil {
		return nil, fmt.Errorf("%w: no dictionary", words.ErrEmptyPool)
	}
	if ranker == nil {
		return nil, fmt.Errorf("%w: no ranker", analysis.ErrInvalidConfig)
	}
	if err := opts.validate(dict); err != nil {
		return nil, err
	}
	s := &Solver{
		ID:        uuid.NewString(),
		dict:      dict,
		ranker:    ranker,
		opts:      opts,
		pool:      dict.Pool(),
		remaining: opts.MaxGuesses,
	}
	for _, o := range extra {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.log = log.With().Str("session", s.ID).Logger()
	s.state = s.settle(false)
	return s, nil
}

// State is the current state.
func (s *Solver) State() State { return s.state }

// Pool is the current candidate pool.
func (s *Solver) Pool() *words.Pool { return s.pool }

// Remaining is the number of guesses left.
func (s *Solver) Remaining() int { return s.remaining }

// History returns the rounds played so far.
func (s *Solver) History() []Step {
	out := make([]Step, len(s.history))
	copy(out, s.history)
	return out
}

// Answer returns the target once the pool is down to one word.
func (s *Solver) Answer() (words.Word, bool) {
	if s.pool.Len() != 1 {
		return "", false
	}
	return s.pool.Words()[0], true
}

// guessCandidates is the list a suggestion is drawn from.
func (s *Solver) guessCandidates() []words.Word {
	if s.opts.Hard {
		return s.pool.Words()
	}
	return s.dict.Words()
}

// Suggest returns the best next guess without changing state.
//
// With one or two candidates left no guess can do better than naming a
// candidate, so the first candidate is returned without ranking.
func (s *Solver) Suggest(ctx context.Context) (analysis.Ranked, error) {
	if s.state.Terminal() {
		return analysis.Ranked{}, fmt.Errorf("%w: %s", ErrNotActive, s.state)
	}
	if s.pool.Len() == 0 {
		return analysis.Ranked{}, fmt.Errorf("%w: no candidates left", words.ErrEmptyPool)
	}
	if len(s.history) == 0 && s.opts.Opener != "" {
		return s.describe(s.opts.Opener)
	}
	if s.pool.Len() <= 2 {
		return s.describe(s.pool.Words()[0])
	}
	return s.ranker.Best(ctx, s.pool, s.guessCandidates())
}

// describe scores a guess chosen without a full ranking.
func (s *Solver) describe(guess words.Word) (analysis.Ranked, error) {
	part, err := analysis.Split(guess, s.pool)
	if err != nil {
		return analysis.Ranked{}, err
	}
	score, err := analysis.Score(part, s.pool.Len(), s.ranker.Options().Policy)
	if err != nil {
		return analysis.Ranked{}, err
	}
	return analysis.Ranked{
		Guess:   guess,
		Score:   score,
		Buckets: len(part),
		Largest: part.Largest(),
		InPool:  s.pool.Contains(guess),
	}, nil
}

// Apply records feedback p for guess and advances the session. Feedback no
// candidate could produce is rejected with ErrInconsistentFeedback and the
// session is left as it was.
func (s *Solver) Apply(guess words.Word, p feedback.Pattern) (Step, error) {
	return s.apply(guess, p, 0)
}

func (s *Solver) apply(guess words.Word, p feedback.Pattern, score float64) (Step, error) {
	if s.state.Terminal() {
		return Step{}, fmt.Errorf("%w: %s", ErrNotActive, s.state)
	}
	if !s.dict.Contains(guess) {
		return Step{}, fmt.Errorf("%w: %q is not in the dictionary", words.ErrInvalidWord, guess)
	}
	if p.Len() != s.dict.Length() {
		return Step{}, fmt.Errorf("%w: pattern has %d positions, words have %d",
			feedback.ErrLengthMismatch, p.Len(), s.dict.Length())
	}
	if s.opts.Hard && !s.pool.Contains(guess) {
		return Step{}, fmt.Errorf("%w: hard mode requires a remaining candidate, %q is not one",
			words.ErrInvalidWord, guess)
	}

	next := s.pool.Filter(func(c words.Word) bool { return feedback.Consistent(guess, p, c) })
	if next.Len() == 0 {
		return Step{}, fmt.Errorf("%w: %s %s", ErrInconsistentFeedback, guess, p)
	}

	step := Step{
		Turn:       len(s.history) + 1,
		Guess:      guess,
		Pattern:    p,
		Score:      score,
		PoolBefore: s.pool.Len(),
		PoolAfter:  next.Len(),
	}
	s.pool = next
	s.remaining--
	s.state = s.settle(p.Solved())
	step.State = s.state
	s.history = append(s.history, step)

	s.log.Debug().
		Int("turn", step.Turn).
		Str("guess", string(guess)).
		Str("pattern", p.String()).
		Int("pool", next.Len()).
		Str("state", s.state.String()).
		Msg("feedback applied")
	return step, nil
}

// settle works out the state from the pool and budget.
func (s *Solver) settle(allExact bool) State {
	switch {
	case allExact, s.pool.Len() == 1:
		return Solved
	case s.remaining <= 0:
		return Exhausted
	default:
		return Active
	}
}

// Step plays one round against a known target.
func (s *Solver) Step(ctx context.Context, target words.Word) (Step, error) {
	best, err := s.Suggest(ctx)
	if err != nil {
		return Step{}, err
	}
	p, err := feedback.Compute(best.Guess, target)
	if err != nil {
		return Step{}, err
	}
	return s.apply(best.Guess, p, best.Score)
}

// Run plays against target until the session ends.
func (s *Solver) Run(ctx context.Context, target words.Word) ([]Step, error) {
	if !s.dict.Contains(target) {
		return nil, fmt.Errorf("%w: target %q is not in the dictionary", words.ErrInvalidWord, target)
	}
	for !s.state.Terminal() {
		if _, err := s.Step(ctx, target); err != nil {
			return s.History(), err
		}
	}
	return s.History(), nil
}
