// Package rarity scores how obscure a word looks relative to a dictionary.
package rarity

import (
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

type bigram [2]byte

// Stats holds letter and adjacent-letter frequencies over a dictionary.
type Stats struct {
	length  int
	letters [26]int
	bigrams map[bigram]int

	totalLetters float64
	totalBigrams float64
}

// NewStats counts letters and adjacent pairs across every dictionary word.
func NewStats(dict *words.Dictionary) *Stats {
	n := dict.Length()
	s := &Stats{
		length:       n,
		bigrams:      make(map[bigram]int),
		totalLetters: float64(dict.Len() * n),
		totalBigrams: float64(dict.Len() * (n - 1)),
	}
	for i := 0; i < dict.Len(); i++ {
		w := dict.At(i)
		for j := 0; j < n; j++ {
			s.letters[w.At(j)-'a']++
			if j+1 < n {
				s.bigrams[bigram{w.At(j), w.At(j + 1)}]++
			}
		}
	}
	return s
}

// Length is the word length the stats were built for.
func (s *Stats) Length() int { return s.length }

// LetterFreq is the share of all letter slots holding c.
func (s *Stats) LetterFreq(c byte) float64 {
	return freq(s.letters[c-'a'], s.totalLetters)
}

// BigramFreq is the share of all adjacent pairs equal to a followed by b.
func (s *Stats) BigramFreq(a, b byte) float64 {
	return freq(s.bigrams[bigram{a, b}], s.totalBigrams)
}

// unseen letters count as one occurrence so the log term stays finite
func freq(count int, total float64) float64 {
	if total <= 0 {
		return eps
	}
	return max(float64(max(count, 1))/total, eps)
}
