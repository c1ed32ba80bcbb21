// Package cli implements the agptool command-line interface.
//
// This package wires the coordinate-transformation engines in pkg/agp
// into cobra subcommands. Every transformation command reads an AGP
// file (or stdin) plus an operation-specific input file, runs a pure
// in-memory transform, and writes AGP or BED text to a file or stdout.
//
// # Commands
//
//   - split: break objects into sub-objects at breakpoint positions
//   - join: concatenate objects into superscaffolds with synthetic gaps
//   - flip: reverse-complement objects or ranges of them
//   - transform: lift BED intervals from component to object coordinates
//   - compose: flatten two assembly layers into one AGP
//   - remove, rename: drop or rename whole objects
//   - assemble: build object sequences from contigs and the AGP
//   - sanitize: rewrite contigs/AGP to NCBI submission rules
//   - stats, inspect, viz: summaries and diagrams of a layout
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion
// with the elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the tracker was made.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to the
// default logger so commands always have a valid one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
