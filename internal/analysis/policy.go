package analysis

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrInvalidConfig reports an unusable option (unknown policy, non-positive
// budget, and so on).
var ErrInvalidConfig = errors.New("invalid configuration")

// Policy selects how a partition is turned into a score.
type Policy int

const (
	// Entropy is the expected information gain in bits. Higher is better.
	// This is the default.
	Entropy Policy = iota
	// ExpectedSize is the expected number of candidates left, assuming the
	// target is uniform over the pool. Lower is better.
	ExpectedSize
	// Minimax is the size of the largest bucket. Lower is better.
	Minimax
)

// ParsePolicy maps a policy name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "entropy":
		return Entropy, nil
	case "expected", "expected-size", "expected_size":
		return ExpectedSize, nil
	case "minimax", "worst-case", "worst_case":
		return Minimax, nil
	}
	return 0, fmt.Errorf("%w: unknown scoring policy %q", ErrInvalidConfig, s)
}

func (p Policy) String() string {
	switch p {
	case Entropy:
		return "entropy"
	case ExpectedSize:
		return "expected"
	case Minimax:
		return "minimax"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func (p Policy) valid() bool { return p >= Entropy && p <= Minimax }

// HigherIsBetter reports the direction of the policy's scores.
func (p Policy) HigherIsBetter() bool { return p == Entropy }

// Better reports whether score a beats score b under p.
func (p Policy) Better(a, b float64) bool {
	if p.HigherIsBetter() {
		return a > b
	}
	return a < b
}

// Worst is the score of a guess that leaves all n candidates in one bucket.
func (p Policy) Worst(n int) float64 {
	if p == Entropy {
		return 0
	}
	return float64(n)
}

// Score evaluates a partition of a pool of poolSize candidates. A partition
// with a single bucket is legal and scores Worst(poolSize).
func Score(part Partition, poolSize int, p Policy) (float64, error) {
	if poolSize <= 0 {
		return 0, fmt.Errorf("%w: pool size %d", ErrEmptyPool, poolSize)
	}
	if !p.valid() {
		return 0, fmt.Errorf("%w: unknown scoring policy %d", ErrInvalidConfig, int(p))
	}
	if got := part.Size(); got != poolSize {
		return 0, fmt.Errorf("partition holds %d candidates, pool has %d", got, poolSize)
	}
	return scoreSizes(part.Sizes(), poolSize, p), nil
}

// scoreSizes scores bucket sizes. Zero sizes are ignored. Sizes are reduced
// in ascending order so equal multisets give bit-identical results no matter
// how they were collected. sizes is reordered in place.
func scoreSizes(sizes []int, n int, p Policy) float64 {
	switch p {
	case ExpectedSize:
		var sq int64
		for _, s := range sizes {
			sq += int64(s) * int64(s)
		}
		return float64(sq) / float64(n)
	case Minimax:
		return float64(maxOf(sizes))
	default:
		slices.Sort(sizes)
		var (
			acc     float64
			buckets int
		)
		for _, s := range sizes {
			if s > 0 {
				acc += float64(s) * math.Log2(float64(s))
				buckets++
			}
		}
		if buckets <= 1 {
			return 0
		}
		h := math.Log2(float64(n)) - acc/float64(n)
		if h < 0 {
			// rounding when everything lands in one bucket
			h = 0
		}
		return h
	}
}
