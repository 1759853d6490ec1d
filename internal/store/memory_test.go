package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(0)
	_, ok := s.Get("missing")
	assert.False(t, ok)

	in := []analysis.Ranked{{Guess: "crane", Score: 1.5}, {Guess: "slate", Score: 1.0}}
	s.Put("k", in)
	in[0].Guess = "mutated"

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "crane", string(got[0].Guess), "store keeps its own copy")

	got[1].Score = 99
	again, _ := s.Get("k")
	assert.Equal(t, 1.0, again[1].Score, "callers get copies")

	assert.Equal(t, 1, s.Len())
	s.Flush()
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	s.Put("k", []analysis.Ranked{{Guess: "crane"}})
	_, ok := s.Get("k")
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := s.Get("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
