// Package logging builds the zerolog logger shared by the camera console components.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Log files are named like the site consoles name theirs
const logFileTimeFormat = "02Jan06_150405"

type Options struct {
	Console   io.Writer // human-readable output, usually os.Stderr
	LogFolder string    // empty for console only
	Debug     bool
	Verbosity int
	Now       func() time.Time
}

// Logger is the configured logger plus the log file behind it, if any
type Logger struct {
	zerolog.Logger
	FilePath string
	file     *os.File
}

// New creates the logger. Debug, or verbosity 4 and above, enables debug level.
func New(options Options) (*Logger, error) {
	console := options.Console
	if console == nil {
		console = os.Stderr
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"}}
	result := &Logger{}
	if options.LogFolder != "" {
		if err := os.MkdirAll(options.LogFolder, 0o755); err != nil {
			return nil, fmt.Errorf("logging: creating %s: %w", options.LogFolder, err)
		}
		path := filepath.Join(options.LogFolder, "console_"+now().Format(logFileTimeFormat)+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: opening %s: %w", path, err)
		}
		result.file = file
		result.FilePath = path
		writers = append(writers, file)
	}

	result.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(Level(options.Debug, options.Verbosity)).
		With().Timestamp().Logger()
	return result, nil
}

// ConsoleOnly is the fallback when the log folder cannot be used
func ConsoleOnly(console io.Writer, debug bool, verbosity int) *Logger {
	logger, _ := New(Options{Console: console, Debug: debug, Verbosity: verbosity})
	return logger
}

func Level(debug bool, verbosity int) zerolog.Level {
	switch {
	case debug || verbosity >= 4:
		return zerolog.DebugLevel
	case verbosity <= 0:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

// Close flushes and closes the log file
func (logger *Logger) Close() error {
	if logger == nil || logger.file == nil {
		return nil
	}
	err := logger.file.Close()
	logger.file = nil
	return err
}
