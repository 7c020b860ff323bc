// Package cli implements the isobench command-line interface.
//
// This package provides commands for benchmarking isomorphism checks over
// graph6 datasets, generating and converting datasets, checking and encoding
// single graphs, rendering graphs, and serving the HTTP API. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - bench: Measure pairwise checks over a dataset and export CSV
//   - check, encode: Decide isomorphism of two graphs, encode a tree
//   - generate, convert, duplicate: Build datasets
//   - render: Draw a graph as DOT, SVG, PDF or PNG
//   - serve: Run the HTTP API with Prometheus metrics
//   - runs: Browse benchmark runs stored in MongoDB
//   - cache, config: Manage the measurement cache and the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-file to keep a rotated copy of the log. Loggers are passed through
// context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natefinch/lumberjack"
)

// Log file rotation limits.
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// newLogger returns a logger writing to w at level, with short
// "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// attachLogFile makes l write to both console and a rotating file at path.
// The returned closer releases the file.
func attachLogFile(l *log.Logger, console io.Writer, path string) io.Closer {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
	}
	l.SetOutput(io.MultiWriter(console, lj))
	return lj
}

// progress logs how long an operation took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Benchmark complete (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. Commands read it back with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
