package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
)

var envKeys = []string{
	"DICT_PATH", "WORD_LENGTH", "SCORING_POLICY", "MAX_GUESSES", "WORKERS",
	"HARD_MODE", "CACHE_TTL", "LOG_LEVEL", "LOG_FILE", "DAILY_SALT", "TIMEZONE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, 6, cfg.MaxGuesses)
	assert.Equal(t, "entropy", cfg.Policy)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)

	p, err := cfg.ScoringPolicy()
	require.NoError(t, err)
	assert.Equal(t, analysis.Entropy, p)
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, `
dict_path: /tmp/words.txt
word_length: 6
policy: minimax
max_guesses: 8
workers: 3
hard_mode: true
cache_ttl: 30s
log_level: debug
daily_salt: pepper
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.txt", cfg.DictPath)
	assert.Equal(t, 6, cfg.WordLength)
	assert.Equal(t, "minimax", cfg.Policy)
	assert.Equal(t, 8, cfg.MaxGuesses)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.HardMode)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pepper", cfg.DailySalt)
	assert.Equal(t, "UTC", cfg.Timezone)

	t.Setenv("WORD_LENGTH", "5")
	t.Setenv("SCORING_POLICY", "expected")
	t.Setenv("HARD_MODE", "false")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("LOG_LEVEL", "WARN")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, "expected", cfg.Policy)
	assert.False(t, cfg.HardMode)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 8, cfg.MaxGuesses)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		yaml string
	}{
		{"non-numeric length", map[string]string{"WORD_LENGTH": "five"}, ""},
		{"length too long", map[string]string{"WORD_LENGTH": "21"}, ""},
		{"zero budget", map[string]string{"MAX_GUESSES": "0"}, ""},
		{"negative workers", map[string]string{"WORKERS": "-1"}, ""},
		{"unknown policy", map[string]string{"SCORING_POLICY": "vibes"}, ""},
		{"unknown level", map[string]string{"LOG_LEVEL": "loud"}, ""},
		{"bad bool", map[string]string{"HARD_MODE": "maybe"}, ""},
		{"bad duration", map[string]string{"CACHE_TTL": "soon"}, ""},
		{"unknown timezone", map[string]string{"TIMEZONE": "Not/AZone"}, ""},
		{"malformed yaml", nil, "word_length: [1, 2"},
		{"wrong yaml type", nil, "max_guesses: lots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.yaml != "" {
				path = writeYAML(t, tt.yaml)
			}
			_, err := Load(path)
			require.ErrorIs(t, err, analysis.ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	cfg.DailySalt = ""
	require.ErrorIs(t, cfg.Validate(), analysis.ErrInvalidConfig)
}

func TestCustomValidatorsRegistered(t *testing.T) {
	cfg := Default()
	cfg.Policy = "loudest"
	require.ErrorIs(t, cfg.Validate(), analysis.ErrInvalidConfig)

	cfg = Default()
	cfg.Timezone = "Mars/Olympus"
	require.ErrorIs(t, cfg.Validate(), analysis.ErrInvalidConfig)
}
