// Package logging provides structured logging setup for listing-composer.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup initializes the default slog logger.
// Dev mode uses human-readable text at debug level; otherwise JSON.
func Setup(devMode bool) {
	SetupWriter(devMode, os.Stderr)
}

// SetupWriter is Setup with an explicit destination. The wizard uses it to
// send logs to a file so they do not bleed into the terminal UI.
func SetupWriter(devMode bool, w io.Writer) {
	var handler slog.Handler
	if devMode {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	slog.SetDefault(slog.New(handler))
}

// SetupFile directs logs to the named file, creating it if needed. It
// returns the file so the caller can close it on exit.
func SetupFile(devMode bool, path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	SetupWriter(devMode, f)
	return f, nil
}
