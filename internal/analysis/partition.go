package analysis

import (
	"fmt"
	"slices"

	"github.com/Jet-29/starting-word-shenanigans/internal/feedback"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// ErrEmptyPool is words.ErrEmptyPool, re-exported for callers of this package.
var ErrEmptyPool = words.ErrEmptyPool

// Partition groups candidates by the pattern they would produce against one
// guess. Each bucket keeps pool order.
type Partition map[feedback.Pattern][]words.Word

// Split partitions pool by the feedback each candidate gives against guess.
// The guess does not have to be a candidate itself. A fresh map is built on
// every call.
func Split(guess words.Word, pool *words.Pool) (Partition, error) {
	if pool == nil || pool.Len() == 0 {
		return nil, fmt.Errorf("%w: nothing to partition", ErrEmptyPool)
	}
	if err := checkGuess(guess, pool.Dictionary().Length()); err != nil {
		return nil, err
	}
	part := make(Partition)
	for _, c := range pool.Words() {
		p := feedback.Of(guess, c)
		part[p] = append(part[p], c)
	}
	return part, nil
}

// checkGuess rejects guesses that feedback.Of cannot score: wrong length or
// built without words.Parse.
func checkGuess(g words.Word, length int) error {
	if g.Len() != length {
		return fmt.Errorf("%w: guess %q has %d letters, pool words have %d",
			feedback.ErrLengthMismatch, g, g.Len(), length)
	}
	if !g.Valid() {
		return fmt.Errorf("%w: guess %q is not lowercase a-z", words.ErrInvalidWord, g)
	}
	return nil
}

// Size is the total number of candidates across buckets.
func (p Partition) Size() int {
	n := 0
	for _, b := range p {
		n += len(b)
	}
	return n
}

// Patterns lists the bucket keys ordered by pattern code.
func (p Partition) Patterns() []feedback.Pattern {
	keys := make([]feedback.Pattern, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b feedback.Pattern) int {
		return int(a.Code()) - int(b.Code())
	})
	return keys
}

// Sizes lists bucket sizes in Patterns order.
func (p Partition) Sizes() []int {
	keys := p.Patterns()
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = len(p[k])
	}
	return out
}

// Largest is the size of the biggest bucket.
func (p Partition) Largest() int {
	return maxOf(p.Sizes())
}
