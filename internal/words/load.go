// internal/words/load.go
//
// Dictionary loading.
//
// Sources:
//   - LoadFile reads a word list from disk (DICT_PATH).
//   - LoadDefault reads the embedded assets/valid-words.txt so the binary
//     runs with no files configured.
//
// Line handling:
//   - Trimmed and lowercased; blank lines and "#" comments are ignored.
//   - Lines that are not exactly L letters a–z are skipped and counted,
//     the same way word lists with mixed lengths are filtered at startup.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Jet-29/starting-word-shenanigans/assets"
)

// Load reads one word per line from r and builds a dictionary of length-L words.
func Load(r io.Reader, length int) (*Dictionary, error) {
	if length < 1 || length > MaxLength {
		return nil, fmt.Errorf("%w: word length %d outside [1, %d]", ErrInvalidWord, length, MaxLength)
	}
	var (
		out     []string
		skipped int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := Parse(line, length)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, string(w))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("length", length).Msg("dropped words of the wrong shape")
	}
	return NewDictionary(length, out)
}

// LoadFile loads a dictionary from the file at path.
func LoadFile(path string, length int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f, length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// LoadDefault loads the embedded default word list.
func LoadDefault(length int) (*Dictionary, error) {
	f, err := assets.FS.Open(assets.DefaultDictionary)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, length)
}

// LoadPath loads from path, or the embedded list when path is empty.
func LoadPath(path string, length int) (*Dictionary, error) {
	if path == "" {
		return LoadDefault(length)
	}
	return LoadFile(path, length)
}
