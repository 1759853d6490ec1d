package words

import (
	"fmt"
	"slices"
)

// Dictionary is the immutable set of legal words for a run. All entries share
// one length, appear once, and keep the order they were supplied in.
type Dictionary struct {
	length int
	words  []Word
	index  map[Word]int
	fp     uint64
}

// NewDictionary validates entries and builds a dictionary of length-letter
// words. Duplicates are dropped (first occurrence wins); any invalid entry
// fails the whole construction.
func NewDictionary(length int, entries []string) (*Dictionary, error) {
	if length < 1 || length > MaxLength {
		return nil, fmt.Errorf("%w: word length %d outside [1, %d]", ErrInvalidWord, length, MaxLength)
	}
	d := &Dictionary{
		length: length,
		words:  make([]Word, 0, len(entries)),
		index:  make(map[Word]int, len(entries)),
	}
	for _, e := range entries {
		w, err := Parse(e, length)
		if err != nil {
			return nil, err
		}
		if _, dup := d.index[w]; dup {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, fmt.Errorf("%w: dictionary has no words", ErrEmptyPool)
	}
	d.fp = FingerprintWords(d.words)
	return d, nil
}

// Length is the fixed word length L.
func (d *Dictionary) Length() int { return d.length }

// Fingerprint identifies the dictionary's contents and order.
func (d *Dictionary) Fingerprint() uint64 { return d.fp }

// Len is the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a copy of the words in dictionary order.
func (d *Dictionary) Words() []Word { return slices.Clone(d.words) }

// At returns the i-th word in dictionary order.
func (d *Dictionary) At(i int) Word { return d.words[i] }

// Index returns the position of w, if present.
func (d *Dictionary) Index(w Word) (int, bool) {
	i, ok := d.index[w]
	return i, ok
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.index[w]
	return ok
}

// Lookup parses s and requires the result to be a dictionary word.
func (d *Dictionary) Lookup(s string) (Word, error) {
	w, err := Parse(s, d.length)
	if err != nil {
		return "", err
	}
	if !d.Contains(w) {
		return "", fmt.Errorf("%w: %q is not in the dictionary", ErrInvalidWord, w)
	}
	return w, nil
}

// Pool returns the candidate pool holding every dictionary word.
func (d *Dictionary) Pool() *Pool {
	return newPool(d, allSet(len(d.words)))
}
