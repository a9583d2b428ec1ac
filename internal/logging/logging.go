// Package logging builds the structured loggers used by the CLI and adapts
// them to the simulation's event sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultPrefix is shown in front of every log line.
const DefaultPrefix = "space"

// New creates a logger writing to w at the named level
// (debug, info, warn, error). An empty level means info.
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// OpenFile opens path for appending, creating parent directories.
// The terminal UI owns the screen, so its logs go to a file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("logging: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-supplied log path
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return f, nil
}

// Sink forwards simulation events to a structured logger.
type Sink struct {
	logger *log.Logger
}

// NewSink wraps logger as an event sink.
func NewSink(logger *log.Logger) *Sink {
	return &Sink{logger: logger}
}

// Log writes one event. Boundary rejections are routine and go to debug;
// the end of a run is a warning; everything else is info.
func (s *Sink) Log(msg string) {
	switch {
	case strings.HasPrefix(msg, "Boundary exceeded"):
		s.logger.Debug(msg)
	case msg == "Game Over!":
		s.logger.Warn(msg)
	default:
		s.logger.Info(msg)
	}
}

// Ring keeps the most recent events in memory for display.
// It is safe for concurrent use.
type Ring struct {
	mu    sync.Mutex
	lines []string
	size  int
}

// NewRing creates a ring holding at most size events.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{size: size, lines: make([]string, 0, size)}
}

// Log records an event, dropping the oldest one when full.
func (r *Ring) Log(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.lines) == r.size {
		copy(r.lines, r.lines[1:])
		r.lines = r.lines[:r.size-1]
	}
	r.lines = append(r.lines, msg)
}

// Lines returns the recorded events, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Reset forgets all recorded events.
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = r.lines[:0]
}
