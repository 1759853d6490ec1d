// internal/store/memory.go
//
// In-memory store for finished guess rankings.
//
// Characteristics:
//   - Backed by go-cache: concurrency-safe, with per-entry expiry.
//   - Values are copied on the way in and out, so callers can sort or
//     truncate what they get back without touching the cached ranking.
//   - State is lost when the process exits.

package store

import (
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
)

// Store is an analysis.Cache with some bookkeeping.
type Store interface {
	analysis.Cache

	// Len is the number of live entries.
	Len() int
	// Flush drops every entry.
	Flush()
}

type memory struct {
	c *cache.Cache
}

// NewMemoryStore builds a store whose entries live for ttl. A ttl <= 0
// keeps entries until Flush.
func NewMemoryStore(ttl time.Duration) Store {
	exp, cleanup := ttl, ttl
	if ttl <= 0 {
		exp, cleanup = cache.NoExpiration, 0
	}
	return &memory{c: cache.New(exp, cleanup)}
}

// Get returns a copy of the ranking stored under key.
func (m *memory) Get(key string) ([]analysis.Ranked, bool) {
	x, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(x.([]analysis.Ranked)), true
}

// Put stores a copy of rs under key.
func (m *memory) Put(key string, rs []analysis.Ranked) {
	m.c.Set(key, slices.Clone(rs), cache.DefaultExpiration)
}

func (m *memory) Len() int { return m.c.ItemCount() }

func (m *memory) Flush() { m.c.Flush() }
