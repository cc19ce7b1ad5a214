// Package cli implements the grapple command-line interface.
//
// This package provides commands for running graph analyses (sort, cycles,
// path, build), rendering graphs with Graphviz, serving the HTTP API, and
// managing the analysis result cache. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The shared
// logger lives on the CLI struct and is handed to the pipeline runner so
// cache hits and analysis timings show up in debug output.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Sorted 42 nodes (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
