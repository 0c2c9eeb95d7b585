// Package logging builds the slog loggers used by the fsmx command.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to w at the given level.
// Records go to stderr in the CLI so the shell's stdout stays clean.
// The "error" key is shortened to "err".
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that drops everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
