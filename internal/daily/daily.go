// Package daily picks a deterministic starting word for a calendar day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
	"github.com/Jet-29/starting-word-shenanigans/internal/rarity"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// DefaultAlpha sharpens the rarity weighting so harder words come up more often.
const DefaultAlpha = 2.0

// ErrAlreadyUsed reports a suggestion that was already picked on an earlier day.
var ErrAlreadyUsed = errors.New("word already used")

// DateKey returns YYYY-MM-DD for t in loc (UTC when loc is nil).
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.DateOnly)
}

func mac(day, salt string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(day))
	return h.Sum(nil)
}

// Seed derives a PCG seed from HMAC(salt, day).
func Seed(day, salt string) (uint64, uint64) {
	sum := mac(day, salt)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// WordIndex returns a deterministic index in [0, n) for day using HMAC(salt, day) % n.
func WordIndex(day, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := mac(day, salt)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// PickOptions controls a weighted daily pick.
type PickOptions struct {
	Date  string // day key, see DateKey
	Salt  string
	Alpha float64 // 0 means DefaultAlpha
	// Exclude lists words that must not be picked. May be nil.
	Exclude mapset.Set[string]
}

func (o PickOptions) alpha() (float64, error) {
	switch {
	case o.Alpha == 0:
		return DefaultAlpha, nil
	case o.Alpha < 0 || math.IsNaN(o.Alpha) || math.IsInf(o.Alpha, 0):
		return 0, fmt.Errorf("%w: alpha must be positive, got %v", analysis.ErrInvalidConfig, o.Alpha)
	}
	return o.Alpha, nil
}

func (o PickOptions) excluded(w words.Word) bool {
	return o.Exclude != nil && o.Exclude.Contains(string(w))
}

// Pick draws one dictionary word, weighting each by (difficulty+1e-6)^alpha.
// The draw depends only on the dictionary, the date, the salt and the
// exclusions.
func Pick(dict *words.Dictionary, stats *rarity.Stats, opts PickOptions) (words.Word, error) {
	alpha, err := opts.alpha()
	if err != nil {
		return "", err
	}
	if stats.Length() != dict.Length() {
		return "", fmt.Errorf("%w: stats built for length %d, dictionary has %d",
			analysis.ErrInvalidConfig, stats.Length(), dict.Length())
	}

	var (
		keys    []words.Word
		weights []float64
		total   float64
	)
	for _, s := range stats.ScoreAll(dict, rarity.DefaultWeights()) {
		if opts.excluded(s.Word) {
			continue
		}
		wt := math.Pow(max(s.Score, 0)+1e-6, alpha)
		if math.IsInf(wt, 0) || math.IsNaN(wt) || wt <= 0 {
			continue
		}
		keys = append(keys, s.Word)
		weights = append(weights, wt)
		total += wt
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("%w: every word is excluded", words.ErrEmptyPool)
	}

	rng := rand.New(rand.NewPCG(Seed(opts.Date, opts.Salt)))
	r := rng.Float64() * total
	for i, wt := range weights {
		if r < wt {
			return keys[i], nil
		}
		r -= wt
	}
	return keys[len(keys)-1], nil
}

// Suggestion validates a user-proposed starter: it must be a dictionary
// word that has not been used yet.
func Suggestion(dict *words.Dictionary, raw string, used mapset.Set[string]) (words.Word, error) {
	w, err := dict.Lookup(raw)
	if err != nil {
		return "", err
	}
	if used != nil && used.Contains(string(w)) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyUsed, w)
	}
	return w, nil
}

// Choice is the starter chosen for a day.
type Choice struct {
	Word words.Word
	// Queued is true when the word came from the suggestion queue
	// rather than the weighted pick.
	Queued bool
}

// Next returns the first acceptable queued suggestion, or a weighted pick
// when none of them pass Suggestion. Rejected suggestions are dropped.
func Next(dict *words.Dictionary, stats *rarity.Stats, queue []string, opts PickOptions) (Choice, error) {
	for _, raw := range queue {
		w, err := Suggestion(dict, raw, opts.Exclude)
		if err != nil {
			log.Debug().Err(err).Str("word", raw).Msg("skipping queued suggestion")
			continue
		}
		return Choice{Word: w, Queued: true}, nil
	}
	w, err := Pick(dict, stats, opts)
	if err != nil {
		return Choice{}, err
	}
	return Choice{Word: w}, nil
}
