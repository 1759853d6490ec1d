package feedback

import (
	"errors"
	"fmt"

	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// ErrLengthMismatch reports a guess and target of different lengths.
var ErrLengthMismatch = errors.New("length mismatch")

// Compute scores guess against target with the two-pass Wordle rules.
//
// Pass 1:
//   - Mark exact matches and count the target letters left over.
//
// Pass 2:
//   - For every other guess letter: Present if a leftover copy remains
//     (consuming it), otherwise Absent.
//
// This keeps the Present/Exact marks for a letter at or below the letter's
// count in the target.
func Compute(guess, target words.Word) (Pattern, error) {
	if len(guess) != len(target) {
		return Pattern{}, fmt.Errorf("%w: guess %q has %d letters, target %q has %d",
			ErrLengthMismatch, guess, len(guess), target, len(target))
	}
	if len(guess) > words.MaxLength {
		return Pattern{}, fmt.Errorf("%w: %d letters exceeds %d", words.ErrInvalidWord, len(guess), words.MaxLength)
	}
	for _, w := range []words.Word{guess, target} {
		if !w.Valid() {
			return Pattern{}, fmt.Errorf("%w: %q is not lowercase a-z", words.ErrInvalidWord, w)
		}
	}
	return Of(guess, target), nil
}

// Of is Compute without the checks. Both words must be valid and of the
// same length, which holds for any two words of one dictionary.
func Of(guess, target words.Word) Pattern {
	n := len(guess)
	var (
		left  [26]uint8
		exact uint32 // bit i set when position i is exact
		code  uint32
	)
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			exact |= 1 << i
			code += 2 * pow3[i]
		} else {
			left[target[i]-'a']++
		}
	}
	for i := 0; i < n; i++ {
		if exact&(1<<i) != 0 {
			continue
		}
		if c := guess[i] - 'a'; left[c] > 0 {
			left[c]--
			code += pow3[i]
		}
	}
	return Pattern{code: code, n: uint8(n)}
}

// Consistent reports whether candidate, had it been the target, would have
// produced p for guess.
func Consistent(guess words.Word, p Pattern, candidate words.Word) bool {
	return len(candidate) == len(guess) && guess.Valid() && candidate.Valid() &&
		Of(guess, candidate) == p
}
