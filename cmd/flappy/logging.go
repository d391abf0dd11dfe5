package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// parseLogLevel parses a log level string (case-insensitive).
// Returns log.InfoLevel if the level string is invalid.
func parseLogLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// logPath determines the log file for play sessions.
// Priority: customPath > XDG state directory.
func logPath(customPath string) (string, error) {
	if customPath != "" {
		if strings.HasPrefix(customPath, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				customPath = filepath.Join(home, customPath[2:])
			}
		}
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err != nil {
			return "", fmt.Errorf("cannot create log directory: %w", err)
		}
		return customPath, nil
	}

	path, err := xdg.StateFile("flappy/flappy.log")
	if err != nil {
		return "", fmt.Errorf("could not get log path: %w", err)
	}
	return path, nil
}

// newLogger builds the logger shared by a command.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           parseLogLevel(flagLogLevel),
	})
}

// newFileLogger opens the play log. The TUI owns the terminal, so play never
// logs to stderr. When the file cannot be opened, output is discarded.
func newFileLogger(prefix string) (*log.Logger, func()) {
	path, err := logPath(flagLogFile)
	if err == nil {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr == nil {
			return newLogger(f, prefix), func() { f.Close() }
		}
		err = openErr
	}
	fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	return newLogger(io.Discard, prefix), func() {}
}
