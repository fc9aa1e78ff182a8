package vtcore

import (
	"log/slog"
	"os"
)

// Logger is the package-wide structured logger. None of the repo's
// dependency surface carries a third-party logging library, so this wraps
// the standard library's slog rather than reaching for one; every other
// ambient concern (CLI, config, PTY, terminal modes) still follows the
// corpus's dependency choices.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLogger replaces the package logger, e.g. to route to a file or adjust
// verbosity.
func SetLogger(l *slog.Logger) { Logger = l }
