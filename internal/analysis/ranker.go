package analysis

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// Cache stores finished rankings by key. Implementations must be safe for
// concurrent use; see internal/store.
type Cache interface {
	Get(key string) ([]Ranked, bool)
	Put(key string, rs []Ranked)
}

// Ranker is Rank with fixed options and an optional result cache. Rankings
// are keyed by policy, pool membership and guess list, so a hit is only
// possible for identical inputs.
type Ranker struct {
	opts   Options
	cache  Cache
	flight singleflight.Group
}

// NewRanker validates opts. cache may be nil.
func NewRanker(opts Options, cache Cache) (*Ranker, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Ranker{opts: opts, cache: cache}, nil
}

// Options returns the ranker's options.
func (r *Ranker) Options() Options { return r.opts }

// Rank is the package-level Rank, served from the cache when possible.
func (r *Ranker) Rank(ctx context.Context, pool *words.Pool, guesses []words.Word) ([]Ranked, error) {
	if r.cache == nil || pool == nil || pool.Len() == 0 || len(guesses) == 0 {
		return Rank(ctx, pool, guesses, r.opts)
	}
	key := cacheKey(r.opts.Policy, pool, guesses)
	if rs, ok := r.cache.Get(key); ok {
		log.Debug().Str("key", key).Int("pool", pool.Len()).Msg("ranking cache hit")
		return rs, nil
	}
	// Concurrent misses on one key wait for a single computation.
	v, err, shared := r.flight.Do(key, func() (any, error) {
		if rs, ok := r.cache.Get(key); ok {
			return rs, nil
		}
		rs, err := Rank(ctx, pool, guesses, r.opts)
		if err != nil {
			return nil, err
		}
		r.cache.Put(key, slices.Clone(rs))
		return rs, nil
	})
	if err != nil {
		return nil, err
	}
	rs := v.([]Ranked)
	if shared {
		rs = slices.Clone(rs)
	}
	return rs, nil
}

// Best returns the top-ranked guess.
func (r *Ranker) Best(ctx context.Context, pool *words.Pool, guesses []words.Word) (Ranked, error) {
	rs, err := r.Rank(ctx, pool, guesses)
	if err != nil {
		return Ranked{}, err
	}
	return rs[0], nil
}

func cacheKey(p Policy, pool *words.Pool, guesses []words.Word) string {
	return fmt.Sprintf("%s:%016x:%016x:%016x",
		p, pool.Dictionary().Fingerprint(), pool.Fingerprint(), words.FingerprintWords(guesses))
}
