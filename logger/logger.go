package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New opens path for writing and returns a text logger on top of it. The
// terminal belongs to the TUI, so nothing is logged to stderr. An empty path
// discards all records.
func New(path string, debug bool) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler), file, nil
}
