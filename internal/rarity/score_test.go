package rarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

func dict(t *testing.T, n int, list ...string) *words.Dictionary {
	t.Helper()
	d, err := words.NewDictionary(n, list)
	require.NoError(t, err)
	return d
}

func TestStatsFrequencies(t *testing.T) {
	s := NewStats(dict(t, 5, "aaaaa", "abbbb"))
	assert.Equal(t, 5, s.Length())
	assert.InDelta(t, 0.6, s.LetterFreq('a'), 1e-12)
	assert.InDelta(t, 0.4, s.LetterFreq('b'), 1e-12)
	// unseen letters count once
	assert.InDelta(t, 0.1, s.LetterFreq('z'), 1e-12)

	assert.InDelta(t, 4.0/8, s.BigramFreq('a', 'a'), 1e-12)
	assert.InDelta(t, 1.0/8, s.BigramFreq('a', 'b'), 1e-12)
	assert.InDelta(t, 1.0/8, s.BigramFreq('q', 'q'), 1e-12)
}

func only(f func(*Weights)) Weights {
	var w Weights
	f(&w)
	return w
}

func TestScoreFeatures(t *testing.T) {
	s := NewStats(dict(t, 5, "crane", "slate", "crwth", "gypsy", "qajaq", "babab"))

	tests := []struct {
		name string
		word string
		wt   Weights
		want float64
	}{
		{"no vowels at all", "crwth", only(func(w *Weights) { w.NoVowelsY = 9; w.NoVowels = 5 }), 9},
		{"only y", "gypsy", only(func(w *Weights) { w.NoVowelsY = 9; w.NoVowels = 5 }), 5},
		{"has vowels", "crane", only(func(w *Weights) { w.NoVowelsY = 9; w.NoVowels = 5 }), 0},
		{"low vowel ratio", "gypsy", only(func(w *Weights) { w.LowVowelRatio = 2 }), 2},
		{"enough vowels", "crane", only(func(w *Weights) { w.LowVowelRatio = 2 }), 0},
		{"consonant cluster", "crwth", only(func(w *Weights) { w.MaxConsCluster = 1 }), 5},
		{"y breaks cluster", "gypsy", only(func(w *Weights) { w.MaxConsCluster = 1 }), 2},
		{"duplicates", "babab", only(func(w *Weights) { w.DupExtra = 1 }), 3},
		{"low unique", "babab", only(func(w *Weights) { w.LowUnique = 1 }), 3},
		{"alternating", "babab", only(func(w *Weights) { w.ABABA = 3 }), 3},
		{"not alternating", "qajaq", only(func(w *Weights) { w.ABABA = 3 }), 0},
		{"repeated pairs", "babab", only(func(w *Weights) { w.RepeatedBigram = 1 }), 2},
		{"q without u", "qajaq", only(func(w *Weights) { w.QWithoutU = 2 }), 2},
		{"adjacent double", "slate", only(func(w *Weights) { w.AdjDouble = 1 }), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Score(words.Word(tt.word), tt.wt), 1e-9)
		})
	}
}

func TestScoreRareLetters(t *testing.T) {
	s := NewStats(dict(t, 5, "crane", "slate"))
	w := only(func(w *Weights) { w.RareLetter = 1 })

	var want float64
	for _, c := range []byte("crane") {
		want += math.Log(1 / s.LetterFreq(c))
	}
	assert.InDelta(t, want, s.Score("crane", w), 1e-9)

	w.RareBoost = 0.25
	// j and y are boosted
	base := s.Score("jazzy", only(func(w *Weights) { w.RareLetter = 1 }))
	assert.InDelta(t, base+4*0.25, s.Score("jazzy", w), 1e-9)
}

func TestScoreDefaultsRankObscureHigher(t *testing.T) {
	d, err := words.LoadDefault(5)
	require.NoError(t, err)
	s := NewStats(d)
	wt := DefaultWeights()
	assert.Greater(t, s.Score("pizza", wt), s.Score("slate", wt))
	assert.Greater(t, s.Score("zesty", wt), s.Score("arise", wt))
}

func TestTop(t *testing.T) {
	d, err := words.LoadDefault(5)
	require.NoError(t, err)
	s := NewStats(d)

	hard := Top(d, s, 10, true)
	require.Len(t, hard, 10)
	for i := 1; i < len(hard); i++ {
		assert.GreaterOrEqual(t, hard[i-1].Score, hard[i].Score)
	}
	easy := Top(d, s, 10, false)
	require.Len(t, easy, 10)
	for i := 1; i < len(easy); i++ {
		assert.LessOrEqual(t, easy[i-1].Score, easy[i].Score)
	}
	assert.Greater(t, hard[0].Score, easy[0].Score)

	assert.Len(t, Top(d, s, d.Len()+50, true), d.Len())
	assert.Empty(t, Top(d, s, 0, true))
	assert.Empty(t, Top(d, s, -1, true))
}

func TestTopTieBreaksByWord(t *testing.T) {
	// mirror images share every letter and pair frequency
	d := dict(t, 2, "ba", "ab")
	s := NewStats(d)
	got := Top(d, s, 2, true)
	require.Len(t, got, 2)
	assert.InDelta(t, got[0].Score, got[1].Score, 1e-12)
	assert.Equal(t, words.Word("ab"), got[0].Word)
	assert.Equal(t, words.Word("ba"), got[1].Word)
}
