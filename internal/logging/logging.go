// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Jet-29/starting-word-shenanigans/internal/analysis"
)

// Options selects level and sinks.
type Options struct {
	Level string
	// File, when set, adds a rotating JSON log file.
	File string
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the global logger. The returned Closer flushes the log
// file, if any.
func Setup(opts Options) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", analysis.ErrInvalidConfig, opts.Level)
	}
	if opts.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if isTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		w = zerolog.MultiLevelWriter(w, rotator)
		closer = rotator
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return closer, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
