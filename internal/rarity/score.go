package rarity

import (
	"cmp"
	"math"
	"slices"

	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

const eps = 1e-6

// Weights scale each feature that feeds a difficulty score.
type Weights struct {
	RareLetter float64 // per letter, times ln(1/freq)
	RareBoost  float64 // added per j q x z k v w y before RareLetter scaling
	RareBigram float64 // per adjacent pair, times ln(1/freq)

	NoVowelsY      float64 // no a e i o u y at all
	NoVowels       float64 // y is the only vowel
	LowVowelRatio  float64 // under a fifth of the letters are vowels
	AdjDouble      float64 // per adjacent repeated letter
	MaxConsCluster float64 // per letter in the longest consonant run
	DupExtra       float64 // per repeated occurrence of a letter
	LowUnique      float64 // per missing distinct letter
	ABABA          float64 // five-letter alternating shape
	RepeatedBigram float64
	QWithoutU      float64
}

// DefaultWeights returns the tuned defaults.
func DefaultWeights() Weights {
	return Weights{
		RareLetter:     0.35,
		RareBoost:      0.25,
		RareBigram:     0.20,
		NoVowelsY:      9,
		NoVowels:       5,
		LowVowelRatio:  2,
		AdjDouble:      1,
		MaxConsCluster: 1,
		DupExtra:       1.6,
		LowUnique:      0.7,
		ABABA:          3,
		RepeatedBigram: 1.2,
		QWithoutU:      2,
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isRare(c byte) bool {
	switch c {
	case 'j', 'q', 'x', 'z', 'k', 'v', 'w', 'y':
		return true
	}
	return false
}

// Score rates w; higher means harder to guess. w must have the stats' length.
func (s *Stats) Score(w words.Word, wt Weights) float64 {
	n := w.Len()

	var (
		counts      [26]int
		vowels      int
		hasY, hasQ  bool
		hasU        bool
		cluster     int
		bestCluster int
		adjDoubles  int
		rareLetters float64
		rareBigrams float64
	)
	seen := make(map[bigram]struct{}, n)
	repeated := 0

	for i := 0; i < n; i++ {
		c := w.At(i)
		counts[c-'a']++
		switch {
		case isVowel(c):
			vowels++
			cluster = 0
		case c == 'y':
			hasY = true
			cluster = 0
		default:
			cluster++
			bestCluster = max(bestCluster, cluster)
		}
		hasQ = hasQ || c == 'q'
		hasU = hasU || c == 'u'

		rareLetters += math.Log(1 / s.LetterFreq(c))
		if isRare(c) {
			rareLetters += wt.RareBoost
		}
		if i+1 < n {
			next := w.At(i + 1)
			if c == next {
				adjDoubles++
			}
			rareBigrams += math.Log(1 / s.BigramFreq(c, next))
			bg := bigram{c, next}
			if _, dup := seen[bg]; dup {
				repeated++
			}
			seen[bg] = struct{}{}
		}
	}

	unique, dups := 0, 0
	for _, k := range counts {
		if k > 0 {
			unique++
			dups += k - 1
		}
	}

	var score float64
	switch {
	case vowels == 0 && !hasY:
		score += wt.NoVowelsY
	case vowels == 0:
		score += wt.NoVowels
	}
	if float64(vowels)/float64(n) < 0.2 {
		score += wt.LowVowelRatio
	}
	score += wt.RareLetter * rareLetters
	score += wt.RareBigram * rareBigrams
	score += wt.AdjDouble * float64(adjDoubles)
	score += wt.MaxConsCluster * float64(bestCluster)
	score += wt.DupExtra * float64(dups)
	score += wt.LowUnique * float64(max(n-unique, 0))
	if n == 5 && w[0] == w[2] && w[2] == w[4] && w[0] != w[1] && w[1] == w[3] {
		score += wt.ABABA
	}
	score += wt.RepeatedBigram * float64(repeated)
	if hasQ && !hasU {
		score += wt.QWithoutU
	}
	return score
}

// Scored pairs a word with its difficulty.
type Scored struct {
	Word  words.Word
	Score float64
}

// ScoreAll scores every dictionary word, in dictionary order.
func (s *Stats) ScoreAll(dict *words.Dictionary, wt Weights) []Scored {
	out := make([]Scored, dict.Len())
	for i := range out {
		w := dict.At(i)
		out[i] = Scored{Word: w, Score: s.Score(w, wt)}
	}
	return out
}

// Top returns the n hardest (or easiest) words with default weights.
// Equal scores are ordered by word.
func Top(dict *words.Dictionary, stats *Stats, n int, hardest bool) []Scored {
	all := stats.ScoreAll(dict, DefaultWeights())
	slices.SortFunc(all, func(a, b Scored) int {
		c := cmp.Compare(a.Score, b.Score)
		if hardest {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	if n < 0 {
		n = 0
	}
	return all[:min(n, len(all))]
}
