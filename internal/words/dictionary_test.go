package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDict(t *testing.T) *Dictionary {
	t.Helper()
	d, err := NewDictionary(5, []string{"crane", "slate", "trace", "grape"})
	require.NoError(t, err)
	return d
}

func TestNewDictionary(t *testing.T) {
	d := testDict(t)
	assert.Equal(t, 5, d.Length())
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []Word{"crane", "slate", "trace", "grape"}, d.Words())

	i, ok := d.Index("trace")
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, Word("trace"), d.At(2))
	assert.False(t, d.Contains("speed"))
}

func TestNewDictionaryDropsDuplicates(t *testing.T) {
	d, err := NewDictionary(5, []string{"crane", "CRANE", "slate", "crane"})
	require.NoError(t, err)
	assert.Equal(t, []Word{"crane", "slate"}, d.Words())
}

func TestNewDictionaryErrors(t *testing.T) {
	_, err := NewDictionary(5, nil)
	require.ErrorIs(t, err, ErrEmptyPool)

	_, err = NewDictionary(5, []string{"crane", "cranes"})
	require.ErrorIs(t, err, ErrInvalidWord)

	_, err = NewDictionary(0, []string{"crane"})
	require.ErrorIs(t, err, ErrInvalidWord)
}

func TestDictionaryWordsIsACopy(t *testing.T) {
	d := testDict(t)
	ws := d.Words()
	ws[0] = "zzzzz"
	assert.Equal(t, Word("crane"), d.At(0))
}

func TestLookup(t *testing.T) {
	d := testDict(t)
	w, err := d.Lookup(" Grape ")
	require.NoError(t, err)
	assert.Equal(t, Word("grape"), w)

	_, err = d.Lookup("speed")
	require.ErrorIs(t, err, ErrInvalidWord)
	_, err = d.Lookup("spee")
	require.ErrorIs(t, err, ErrInvalidWord)
}

func TestLoad(t *testing.T) {
	src := strings.Join([]string{
		"# comment",
		"CRANE",
		"",
		"  slate  ",
		"cranes",
		"tr4ce",
		"\u212Aiosk",
		"grape",
		"crane",
	}, "\n")
	d, err := Load(strings.NewReader(src), 5)
	require.NoError(t, err)
	assert.Equal(t, []Word{"crane", "slate", "grape"}, d.Words())
}

func TestLoadNothingUsable(t *testing.T) {
	_, err := Load(strings.NewReader("abc\n# only comments\n"), 5)
	require.ErrorIs(t, err, ErrEmptyPool)
}

func TestLoadDefault(t *testing.T) {
	d, err := LoadDefault(5)
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 1000)
	for _, w := range []Word{"crane", "slate", "trace", "grape", "speed", "erase"} {
		assert.True(t, d.Contains(w), "embedded list should contain %s", w)
	}
}

func TestLoadFile(t *testing.T) {
	path := t.TempDir() + "/words.txt"
	require.NoError(t, writeFile(path, "crane\nslate\n"))
	d, err := LoadPath(path, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	_, err = LoadFile(path+".missing", 5)
	require.Error(t, err)
}
