// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where logs go.
type Options struct {
	// File, if set, receives JSON logs through a size-rotated writer.
	File string
	// Discard drops logs when File is empty (used when stdout is a terminal UI).
	Discard bool
	Level   slog.Level
}

// Rotation limits for log files.
const (
	maxSizeMB  = 10
	maxBackups = 3
)

// Setup installs a JSON slog logger as the default and returns it together
// with a closer for the underlying writer.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
		}
		w, closer = lj, lj
	case opts.Discard:
		w = io.Discard
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	slog.SetDefault(logger)
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
