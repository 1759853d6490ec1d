package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		length  int
		want    Word
		wantErr bool
	}{
		{name: "lowercase", in: "crane", length: 5, want: "crane"},
		{name: "uppercase is normalized", in: "CRANE", length: 5, want: "crane"},
		{name: "surrounding space trimmed", in: "  slate\t", length: 5, want: "slate"},
		{name: "too short", in: "cran", length: 5, wantErr: true},
		{name: "too long", in: "cranes", length: 5, wantErr: true},
		{name: "digit", in: "cr4ne", length: 5, wantErr: true},
		{name: "punctuation", in: "cra-e", length: 5, wantErr: true},
		{name: "non ascii", in: "cafés", length: 5, wantErr: true},
		{name: "kelvin sign folds to k", in: "\u212Aiosk", length: 5, wantErr: true},
		{name: "kelvin sign with matching byte length", in: "\u212Aos", length: 5, wantErr: true},
		{name: "dotted capital i", in: "\u0130ce", length: 4, wantErr: true},
		{name: "other length", in: "quiz", length: 4, want: "quiz"},
		{name: "zero length", in: "", length: 0, wantErr: true},
		{name: "length over max", in: strings.Repeat("a", 21), length: 21, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, tt.length)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordAccessors(t *testing.T) {
	w := MustParse("Speed", 5)
	assert.Equal(t, 5, w.Len())
	assert.Equal(t, byte('s'), w.At(0))
	assert.Equal(t, byte('d'), w.At(4))
	assert.Equal(t, "speed", w.String())
	assert.True(t, MustParse("crane", 5) < MustParse("slate", 5), "words order lexically")
}

func TestWordValid(t *testing.T) {
	assert.True(t, Word("crane").Valid())
	assert.True(t, Word("a").Valid())
	assert.False(t, Word("").Valid())
	assert.False(t, Word("Crane").Valid())
	assert.False(t, Word("cr4ne").Valid())
	assert.False(t, Word(strings.Repeat("a", MaxLength+1)).Valid())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope", 5) })
}
