// internal/feedback/pattern.go
//
// Per-position feedback for a guess against a target.
//
// A Pattern packs its marks in base 3 (position i carries weight 3^i), so it
// is a small comparable value that works directly as a map key and as an
// index into a dense histogram.

package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is the evaluation of one guess letter.
type Mark uint8

const (
	Absent  Mark = iota // letter not in the target (or all copies already used)
	Present             // letter in the target at another position
	Exact               // letter in this exact position
)

// ErrInvalidPattern reports feedback text that cannot be parsed.
var ErrInvalidPattern = errors.New("invalid pattern")

func (m Mark) String() string {
	switch m {
	case Exact:
		return "exact"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// symbol is the one-letter form used by Pattern.String.
func (m Mark) symbol() byte {
	switch m {
	case Exact:
		return 'G'
	case Present:
		return 'Y'
	default:
		return '-'
	}
}

// Pattern is an immutable sequence of n marks.
type Pattern struct {
	code uint32
	n    uint8
}

// pow3[i] = 3^i for every position a word may have.
var pow3 = func() [21]uint32 {
	var p [21]uint32
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 3
	}
	return p
}()

// FromMarks builds a pattern from explicit marks.
func FromMarks(marks ...Mark) Pattern {
	p := Pattern{n: uint8(len(marks))}
	for i, m := range marks {
		p.code += uint32(m) * pow3[i]
	}
	return p
}

// AllExact is the pattern of a correct guess of length n.
func AllExact(n int) Pattern {
	return Pattern{code: pow3[n] - 1, n: uint8(n)}
}

// Space is the number of distinct patterns for length n (3^n).
func Space(n int) int { return int(pow3[n]) }

// Len is the number of positions.
func (p Pattern) Len() int { return int(p.n) }

// Code is the base-3 encoding, in [0, 3^Len).
func (p Pattern) Code() uint32 { return p.code }

// At returns the mark at position i.
func (p Pattern) At(i int) Mark { return Mark(p.code / pow3[i] % 3) }

// Solved reports whether every position is Exact.
func (p Pattern) Solved() bool { return p.n > 0 && p == AllExact(int(p.n)) }

// Marks expands the pattern.
func (p Pattern) Marks() []Mark {
	out := make([]Mark, p.n)
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// String renders G (exact), Y (present) and - (absent) per position.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(int(p.n))
	for i := 0; i < int(p.n); i++ {
		b.WriteByte(p.At(i).symbol())
	}
	return b.String()
}

// ParsePattern reads feedback typed by a person. Accepted per position:
//
//	Exact:   g G 2
//	Present: y Y 1
//	Absent:  - . _ b B x X 0
func ParsePattern(s string, n int) (Pattern, error) {
	s = strings.TrimSpace(s)
	if len(s) != n {
		return Pattern{}, fmt.Errorf("%w: %q has %d positions, want %d", ErrInvalidPattern, s, len(s), n)
	}
	marks := make([]Mark, n)
	for i := 0; i < n; i++ {
		switch s[i] {
		case 'g', 'G', '2':
			marks[i] = Exact
		case 'y', 'Y', '1':
			marks[i] = Present
		case '-', '.', '_', 'b', 'B', 'x', 'X', '0':
			marks[i] = Absent
		default:
			return Pattern{}, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidPattern, s[i], i+1)
		}
	}
	return FromMarks(marks...), nil
}
