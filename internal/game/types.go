// internal/game/types.go
//
// Core types for the solver loop.
// Defines:
//   - State: where a solving session is (active/solved/exhausted).
//   - Step: one observable round (guess, feedback, pool sizes).
//   - Options: guess budget and guess-selection knobs.

package game

import (
	"errors"
	"fmt"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
	"github.com/Jet-29/starting-word-shenanigans/internal/feedback"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// DefaultMaxGuesses is the classic six-row board.
const DefaultMaxGuesses = 6

var (
	// ErrNotActive reports a move on a session that already ended.
	ErrNotActive = errors.New("session is not active")
	// ErrInconsistentFeedback reports feedback that no candidate could have produced.
	ErrInconsistentFeedback = fmt.Errorf("inconsistent feedback: %w", words.ErrEmptyPool)
)

// State of a solving session.
type State int

const (
	Active    State = iota // pool has more than one candidate and guesses remain
	Solved                 // target known: all-exact feedback or a single candidate left
	Exhausted              // guess budget spent without solving
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further moves are possible.
func (s State) Terminal() bool { return s != Active }

// Step records one round of play.
type Step struct {
	Turn       int // 1-based
	Guess      words.Word
	Pattern    feedback.Pattern
	Score      float64 // ranking score of the guess, 0 if not ranked
	PoolBefore int     // candidates when the guess was made
	PoolAfter  int     // candidates consistent with the feedback
	State      State   // state after the step
}

// Options configure a Solver.
type Options struct {
	// MaxGuesses is the guess budget; it must be positive.
	MaxGuesses int
	// Hard restricts guesses to words still in the pool.
	Hard bool
	// Opener, when set, is always the first guess.
	Opener words.Word
}

// DefaultOptions returns a six-guess, normal-mode configuration.
func DefaultOptions() Options {
	return Options{MaxGuesses: DefaultMaxGuesses}
}

func (o Options) validate(dict *words.Dictionary) error {
	if o.MaxGuesses <= 0 {
		return fmt.Errorf("%w: guess budget must be positive, got %d", analysis.ErrInvalidConfig, o.MaxGuesses)
	}
	if o.Opener != "" && !dict.Contains(o.Opener) {
		return fmt.Errorf("%w: opener %q is not in the dictionary", words.ErrInvalidWord, o.Opener)
	}
	return nil
}
