// Package vtillog is the package-level structured logger shared by
// the codec and builder. It defaults to a single stderr text
// handler, fanned out with github.com/samber/slog-multi so a second
// sink (a file, a test buffer) can be added without touching call
// sites.
package vtillog

import (
	"log/slog"
	"os"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

var (
	mu      sync.RWMutex
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// Logger returns the currently configured logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the package-level logger wholesale.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// AddSink fans the existing logger's records out to an additional
// handler, on top of whatever handlers are already wired in.
func AddSink(extra slog.Handler) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slogmulti.Fanout(logger.Handler(), extra))
}

// SetLevel resets the logger to a single handler at the given level,
// writing to w.
func SetLevel(level slog.Level, w *os.File) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
