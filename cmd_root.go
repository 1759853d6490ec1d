package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
	"github.com/Jet-29/starting-word-shenanigans/internal/config"
	"github.com/Jet-29/starting-word-shenanigans/internal/game"
	"github.com/Jet-29/starting-word-shenanigans/internal/logging"
	"github.com/Jet-29/starting-word-shenanigans/internal/store"
	"github.com/Jet-29/starting-word-shenanigans/internal/words"
)

// app is the state shared by every subcommand once the root pre-run has
// loaded configuration and the dictionary.
type app struct {
	cfg    config.Config
	policy analysis.Policy
	loc    *time.Location
	dict   *words.Dictionary
	ranker *analysis.Ranker
	logs   io.Closer
}

var (
	state app

	flagConfig     string
	flagDict       string
	flagLength     int
	flagPolicy     string
	flagMaxGuesses int
	flagWorkers    int
	flagHard       bool
	flagLogLevel   string

	rootCmd = &cobra.Command{
		Use:   "shenanigans",
		Short: "Rank Wordle guesses and simulate solvers",
		Long: `shenanigans scores guesses by how well they split the remaining
candidates, plays full games against a dictionary and picks daily starters.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file")
	pf.StringVar(&flagDict, "dict", "", "word list, one word per line (default: embedded list)")
	pf.IntVar(&flagLength, "length", 5, "word length")
	pf.StringVar(&flagPolicy, "policy", "entropy", "scoring policy: entropy, expected or minimax")
	pf.IntVar(&flagMaxGuesses, "max-guesses", game.DefaultMaxGuesses, "guess budget")
	pf.IntVar(&flagWorkers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	pf.BoolVar(&flagHard, "hard", false, "only guess words that are still possible")
	pf.StringVar(&flagLogLevel, "log-level", "info", "log level")
}

// applyFlags overrides cfg with the flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("dict") {
		cfg.DictPath = flagDict
	}
	if f.Changed("length") {
		cfg.WordLength = flagLength
	}
	if f.Changed("policy") {
		cfg.Policy = flagPolicy
	}
	if f.Changed("max-guesses") {
		cfg.MaxGuesses = flagMaxGuesses
	}
	if f.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if f.Changed("hard") {
		cfg.HardMode = flagHard
	}
	if f.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(flagLogLevel)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logs, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	policy, err := cfg.ScoringPolicy()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	dict, err := words.LoadPath(cfg.DictPath, cfg.WordLength)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	ranker, err := analysis.NewRanker(
		analysis.Options{Policy: policy, Workers: cfg.Workers},
		store.NewMemoryStore(cfg.CacheTTL),
	)
	if err != nil {
		return err
	}

	state = app{cfg: cfg, policy: policy, loc: loc, dict: dict, ranker: ranker, logs: logs}
	log.Debug().
		Int("words", dict.Len()).
		Int("length", cfg.WordLength).
		Str("policy", policy.String()).
		Bool("hard", cfg.HardMode).
		Msg("ready")
	return nil
}

func teardown(*cobra.Command, []string) error {
	if state.logs == nil {
		return nil
	}
	return state.logs.Close()
}

// gameOptions builds solver options from config and an optional opener.
func (a *app) gameOptions(opener string) (game.Options, error) {
	opts := game.Options{MaxGuesses: a.cfg.MaxGuesses, Hard: a.cfg.HardMode}
	if opener == "" {
		return opts, nil
	}
	w, err := a.dict.Lookup(opener)
	if err != nil {
		return game.Options{}, fmt.Errorf("opener: %w", err)
	}
	opts.Opener = w
	return opts, nil
}
