// internal/analysis/rank.go
//
// Guess ranking: partition + score for every guess candidate against one
// pool, best first.
//
// Work is split into disjoint chunks of the guess list and run on an
// errgroup. A worker reads only the shared (immutable) pool and writes only
// the result slots of its own chunk, so there is no locking; the merge step
// is a single deterministic sort.

package analysis

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Jet-29/starting-word-shenanigans/internal/feedback"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// denseLimit is the longest word length whose pattern space (3^L) is
// counted in a flat slice instead of a map.
const denseLimit = 10

const defaultChunkSize = 64

// Options tune Rank.
type Options struct {
	Policy Policy
	// Workers bounds parallelism; 0 means GOMAXPROCS.
	Workers int
	// ChunkSize is the number of guesses per task; 0 means a default.
	ChunkSize int
}

// Validate checks the options.
func (o Options) Validate() error {
	if !o.Policy.valid() {
		return fmt.Errorf("%w: unknown scoring policy %d", ErrInvalidConfig, int(o.Policy))
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, o.Workers)
	}
	if o.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk size must be >= 0, got %d", ErrInvalidConfig, o.ChunkSize)
	}
	return nil
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) chunkSize() int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}
	return defaultChunkSize
}

// Ranked is one guess with its score against a pool.
type Ranked struct {
	Guess   words.Word
	Score   float64
	Buckets int  // number of distinct patterns
	Largest int  // worst-case candidates left
	InPool  bool // guess is itself a candidate
}

// Rank scores every guess against pool and returns them best first. Ties
// are broken by the guess's lexical order, so identical inputs always give
// identical output.
func Rank(ctx context.Context, pool *words.Pool, guesses []words.Word, opts Options) ([]Ranked, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if pool == nil || pool.Len() == 0 {
		return nil, fmt.Errorf("%w: no candidates to rank against", ErrEmptyPool)
	}
	if len(guesses) == 0 {
		return nil, fmt.Errorf("%w: no guess candidates", ErrEmptyPool)
	}
	length := pool.Dictionary().Length()
	for _, g := range guesses {
		if err := checkGuess(g, length); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	out := make([]Ranked, len(guesses))
	cands := pool.Words()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for _, c := range chunks(len(guesses), opts.chunkSize()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h := newHistogram(length)
			for i := c[0]; i < c[1]; i++ {
				out[i] = h.rank(guesses[i], cands, pool, opts.Policy)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortRanked(out, opts.Policy)
	log.Debug().
		Int("pool", pool.Len()).
		Int("guesses", len(guesses)).
		Str("policy", opts.Policy.String()).
		Dur("took", time.Since(start)).
		Msg("ranked guesses")
	return out, nil
}

// sortRanked orders best first, then by guess.
func sortRanked(rs []Ranked, p Policy) {
	slices.SortFunc(rs, func(a, b Ranked) int {
		if a.Score != b.Score {
			if p.Better(a.Score, b.Score) {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Guess, b.Guess)
	})
}

// histogram counts bucket sizes for one guess at a time. It is reused across
// the guesses of a chunk and never shared between goroutines.
type histogram struct {
	dense  []int32
	sparse map[uint32]int
	used   []uint32 // codes touched in dense, for reset
	sizes  []int
}

func newHistogram(length int) *histogram {
	if length <= denseLimit {
		return &histogram{dense: make([]int32, feedback.Space(length))}
	}
	return &histogram{sparse: make(map[uint32]int)}
}

func (h *histogram) rank(guess words.Word, cands []words.Word, pool *words.Pool, p Policy) Ranked {
	h.sizes = h.sizes[:0]
	if h.dense != nil {
		h.used = h.used[:0]
		for _, c := range cands {
			code := feedback.Of(guess, c).Code()
			if h.dense[code] == 0 {
				h.used = append(h.used, code)
			}
			h.dense[code]++
		}
		for _, code := range h.used {
			h.sizes = append(h.sizes, int(h.dense[code]))
			h.dense[code] = 0
		}
	} else {
		clear(h.sparse)
		for _, c := range cands {
			h.sparse[feedback.Of(guess, c).Code()]++
		}
		for _, n := range h.sparse {
			h.sizes = append(h.sizes, n)
		}
	}
	return Ranked{
		Guess:   guess,
		Score:   scoreSizes(h.sizes, len(cands), p),
		Buckets: len(h.sizes),
		Largest: maxOf(h.sizes),
		InPool:  pool.Contains(guess),
	}
}
