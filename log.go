// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

package dirtree

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger that writes to w.
// Debug records are only written when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
