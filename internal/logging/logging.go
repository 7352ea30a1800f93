// Package logging configures the global zerolog logger.
//
// The game owns the terminal, so log lines go to a rotating file by default.
// Setting the file to "-" sends them to stderr through a console writer.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Stderr selects stderr instead of a log file.
const Stderr = "-"

// Options controls where and how much is logged.
type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Setup installs the global logger and returns a closer for the file sink.
func Setup(opts Options) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	w, closer, err := writer(opts)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return closer, nil
}

func writer(opts Options) (io.Writer, io.Closer, error) {
	if opts.File == "" || opts.File == Stderr {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, io.NopCloser(nil), nil
	}
	if dir := filepath.Dir(opts.File); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    max(1, opts.MaxSizeMB),
		MaxBackups: max(0, opts.MaxBackups),
	}
	return lj, lj, nil
}
