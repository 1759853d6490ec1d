// internal/words/pool.go
//
// Pool is the candidate pool: the subset of a Dictionary still consistent
// with the feedback seen so far.
//
// Membership is a bitset over dictionary indices. Pools are never edited;
// Filter always returns a new Pool, so a Pool can be shared between
// goroutines without locking.

package words

import (
	"encoding/binary"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
)

// Pool is an immutable subset of a Dictionary.
type Pool struct {
	dict    *Dictionary
	members *bitset.BitSet
	words   []Word // members in dictionary order
}

// NewPool builds a pool from an explicit word list (a starting-pool override).
// Every word must belong to dict.
func NewPool(dict *Dictionary, list []Word) (*Pool, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: starting pool has no words", ErrEmptyPool)
	}
	set := bitset.New(uint(dict.Len()))
	for _, w := range list {
		i, ok := dict.Index(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in the dictionary", ErrInvalidWord, w)
		}
		set.Set(uint(i))
	}
	return newPool(dict, set), nil
}

func newPool(dict *Dictionary, set *bitset.BitSet) *Pool {
	p := &Pool{dict: dict, members: set, words: make([]Word, 0, set.Count())}
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		p.words = append(p.words, dict.words[i])
	}
	return p
}

func allSet(n int) *bitset.BitSet {
	set := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		set.Set(uint(i))
	}
	return set
}

// Dictionary returns the dictionary the pool is drawn from.
func (p *Pool) Dictionary() *Dictionary { return p.dict }

// Len is the number of candidates.
func (p *Pool) Len() int { return len(p.words) }

// Words returns the candidates in dictionary order. The slice is shared and
// must not be modified.
func (p *Pool) Words() []Word { return p.words }

// Contains reports whether w is a candidate.
func (p *Pool) Contains(w Word) bool {
	i, ok := p.dict.Index(w)
	return ok && p.members.Test(uint(i))
}

// Filter returns a new pool with the candidates for which keep is true.
func (p *Pool) Filter(keep func(Word) bool) *Pool {
	set := bitset.New(uint(p.dict.Len()))
	for i, ok := p.members.NextSet(0); ok; i, ok = p.members.NextSet(i + 1) {
		if keep(p.dict.words[i]) {
			set.Set(i)
		}
	}
	return newPool(p.dict, set)
}

// Fingerprint is a 64-bit hash of the membership set, stable for equal pools
// of the same dictionary.
func (p *Pool) Fingerprint() uint64 {
	return fingerprintSet(p.members)
}

func fingerprintSet(set *bitset.BitSet) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, word := range set.Bytes() {
		binary.LittleEndian.PutUint64(buf[:], word)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// FingerprintWords hashes an ordered word list. Used to key rankings by the
// guess candidates they were computed over.
func FingerprintWords(list []Word) uint64 {
	d := xxhash.New()
	for _, w := range list {
		_, _ = d.WriteString(string(w))
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
