package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

func w(s string) words.Word { return words.MustParse(s, len(s)) }

func TestComputeKnownPairs(t *testing.T) {
	tests := []struct {
		guess, target, want string
	}{
		{"slate", "crane", "--G-G"},
		{"crane", "crane", "GGGGG"},
		{"erase", "speed", "Y--YY"},
		{"speed", "erase", "Y-YY-"},
		{"geese", "eerie", "-GY-G"},
		{"llama", "hello", "YY---"},
		{"hello", "llama", "--YY-"},
		{"abbey", "babes", "YYGG-"},
		{"eerie", "geese", "YG--G"},
		{"zzzzz", "crane", "-----"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.target, func(t *testing.T) {
			p, err := Compute(w(tt.guess), w(tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestComputeDuplicateLetters(t *testing.T) {
	// SPEED holds two Es; ERASE guesses three positions that could claim one.
	p, err := Compute(w("erase"), w("speed"))
	require.NoError(t, err)

	var es int
	guess := w("erase")
	for i := 0; i < p.Len(); i++ {
		if guess[i] == 'e' && p.At(i) != Absent {
			es++
		}
	}
	assert.Equal(t, 2, es)
}

func TestComputeNeverOvercountsLetters(t *testing.T) {
	d, err := words.LoadDefault(5)
	require.NoError(t, err)
	list := d.Words()[:300]

	for _, g := range list {
		for _, tg := range list {
			p := Of(g, tg)
			var marked, inTarget [26]int
			for i := 0; i < g.Len(); i++ {
				inTarget[tg[i]-'a']++
				if p.At(i) != Absent {
					marked[g[i]-'a']++
				}
				assert.Equal(t, g[i] == tg[i], p.At(i) == Exact, "%s vs %s position %d", g, tg, i)
			}
			for c := range marked {
				require.LessOrEqual(t, marked[c], inTarget[c], "%s vs %s letter %c", g, tg, 'a'+c)
			}
		}
	}
}

func TestComputeSelfMatch(t *testing.T) {
	d, err := words.LoadDefault(5)
	require.NoError(t, err)
	for _, x := range d.Words() {
		p, err := Compute(x, x)
		require.NoError(t, err)
		require.True(t, p.Solved(), x)
	}
}

func TestComputeLengthMismatch(t *testing.T) {
	_, err := Compute(w("crane"), w("cranes"))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestComputeRejectsMalformedWords(t *testing.T) {
	tests := []struct {
		name          string
		guess, target words.Word
	}{
		{"uppercase guess", "CRANE", "slate"},
		{"uppercase target", "crane", "SLATE"},
		{"mixed case", "Crane", "slate"},
		{"digit", "cr4ne", "slate"},
		{"non ascii", "caf\xc3\xa9", "slate"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = Compute(tt.guess, tt.target) })
			require.Error(t, err)
		})
	}

	_, err := Compute("CRANE", "SLATE")
	require.ErrorIs(t, err, words.ErrInvalidWord)
	assert.False(t, Consistent("CRANE", AllExact(5), "crane"))
}

func TestConsistent(t *testing.T) {
	p, err := ParsePattern("--G-G", 5)
	require.NoError(t, err)
	guess := w("slate")

	var kept []string
	for _, c := range []string{"crane", "slate", "trace", "grape"} {
		if Consistent(guess, p, w(c)) {
			kept = append(kept, c)
		}
	}
	assert.Equal(t, []string{"crane", "grape"}, kept)
	assert.False(t, Consistent(guess, p, w("cranes")))
}
