// internal/words/word.go
//
// Word is the value type every other package consumes: a fixed-length
// sequence of lowercase a–z letters.
//
// Notes:
//   - Parse normalizes case; A–Z and a–z are the same alphabet.
//   - Words are plain strings underneath, so they compare, hash and sort
//     like strings (lexical order == Go string order).

package words

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLength bounds the word length so feedback patterns fit in a uint32.
const MaxLength = 20

var (
	// ErrInvalidWord reports a word of the wrong length or with a letter outside a–z.
	ErrInvalidWord = errors.New("invalid word")
	// ErrEmptyPool reports an operation on an empty dictionary or candidate pool.
	ErrEmptyPool = errors.New("empty pool")
)

// Word is an immutable lowercase a–z word.
type Word string

// Parse validates s as a word of exactly length letters.
func Parse(s string, length int) (Word, error) {
	if length < 1 || length > MaxLength {
		return "", fmt.Errorf("%w: word length %d outside [1, %d]", ErrInvalidWord, length, MaxLength)
	}
	w := strings.TrimSpace(s)
	if len(w) != length {
		return "", fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidWord, s, len(w), length)
	}
	// checked before lowercasing: some non-ASCII runes fold to ASCII letters
	for i := 0; i < len(w); i++ {
		if c := w[i] | 0x20; c < 'a' || c > 'z' {
			return "", fmt.Errorf("%w: %q contains a letter outside a-z", ErrInvalidWord, s)
		}
	}
	return Word(strings.ToLower(w)), nil
}

// MustParse is Parse for tests and literals; it panics on error.
func MustParse(s string, length int) Word {
	w, err := Parse(s, length)
	if err != nil {
		panic(err)
	}
	return w
}

// Len returns the number of letters.
func (w Word) Len() int { return len(w) }

// At returns the letter at position i.
func (w Word) At(i int) byte { return w[i] }

func (w Word) String() string { return string(w) }

// Valid reports whether w has the shape Parse guarantees. Words built by
// conversion instead of Parse can be checked with it.
func (w Word) Valid() bool {
	return len(w) >= 1 && len(w) <= MaxLength && isAlpha(string(w))
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
