package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/termdialog/internal/logging"
	"github.com/aretw0/termdialog/internal/runtime"
	"github.com/aretw0/termdialog/internal/script"
	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal and no width was given.
const fallbackWidth = 80

// createLogger configures the application logger.
// The play screen owns the terminal, so logs only go to a file when one is given.
// The returned close function releases the log file, if any.
func createLogger(debug bool, logFile string) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if logFile == "" {
		if debug {
			return logging.New(os.Stderr, slog.LevelDebug), noop, nil
		}
		return logging.NewNop(), noop, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(f, logging.Level(debug)), f.Close, nil
}

// createEngine loads a script and builds an engine positioned at node,
// or at the script's start node when node is empty.
func createEngine(path, node string, logger *slog.Logger) (*runtime.Engine, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading script: %w", err)
	}
	logger.Debug("script loaded", "path", path, "title", s.Title, "nodes", len(s.Nodes))
	return runtime.NewEngine(s, runtime.WithLogger(logger), runtime.WithEntryNode(node)), nil
}

// terminalWidth returns the width of stdout, or fallbackWidth when it is not a terminal.
func terminalWidth(override int) int {
	if override > 0 {
		return override
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
