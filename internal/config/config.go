// Package config loads runtime settings from defaults, an optional YAML
// file, .env and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
)

// Config holds every tunable setting.
type Config struct {
	DictPath   string        `yaml:"dict_path"`
	WordLength int           `yaml:"word_length" validate:"min=1,max=20"`
	Policy     string        `yaml:"policy" validate:"policy"`
	MaxGuesses int           `yaml:"max_guesses" validate:"min=1"`
	Workers    int           `yaml:"workers" validate:"gte=0"`
	HardMode   bool          `yaml:"hard_mode"`
	CacheTTL   time.Duration `yaml:"cache_ttl"`
	LogLevel   string        `yaml:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFile    string        `yaml:"log_file"`
	DailySalt  string        `yaml:"daily_salt" validate:"required"`
	Timezone   string        `yaml:"timezone" validate:"required,timezone"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WordLength: 5,
		Policy:     analysis.Entropy.String(),
		MaxGuesses: 6,
		CacheTTL:   10 * time.Minute,
		LogLevel:   "info",
		DailySalt:  "local_dev_salt",
		Timezone:   "UTC",
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
		_, err := analysis.ParsePolicy(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
}

// Load builds a Config. path names an optional YAML file; an empty path
// skips it. A .env file in the working directory is read if present.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", analysis.ErrInvalidConfig, path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.DictPath = getEnv("DICT_PATH", c.DictPath)
	c.Policy = getEnv("SCORING_POLICY", c.Policy)
	c.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", c.LogLevel))
	c.LogFile = getEnv("LOG_FILE", c.LogFile)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)
	c.Timezone = getEnv("TIMEZONE", c.Timezone)

	var err error
	if c.WordLength, err = envInt("WORD_LENGTH", c.WordLength); err != nil {
		return err
	}
	if c.MaxGuesses, err = envInt("MAX_GUESSES", c.MaxGuesses); err != nil {
		return err
	}
	if c.Workers, err = envInt("WORKERS", c.Workers); err != nil {
		return err
	}
	if v := getEnv("HARD_MODE", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: HARD_MODE=%q", analysis.ErrInvalidConfig, v)
		}
		c.HardMode = b
	}
	if v := getEnv("CACHE_TTL", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: CACHE_TTL=%q", analysis.ErrInvalidConfig, v)
		}
		c.CacheTTL = d
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", analysis.ErrInvalidConfig, err)
	}
	return nil
}

// ScoringPolicy parses Policy.
func (c Config) ScoringPolicy() (analysis.Policy, error) {
	return analysis.ParsePolicy(c.Policy)
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", analysis.ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", analysis.ErrInvalidConfig, k, v)
	}
	return n, nil
}
