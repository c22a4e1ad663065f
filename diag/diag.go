// Package diag defines the diagnostics sink through which graph algorithms
// report invalid input (errors) and recoverable conditions (warnings).
//
// Algorithms never abort the process on a diagnostic. Errors describe a call
// that returned an empty result; warnings describe a call that recovered,
// such as an A* search falling back to Dijkstra.
//
// The default sink writes through log/slog. Tests usually install a
// Recorder and assert on what was captured.
package diag

import (
	"context"
	"log/slog"
	"sync"
)

// Sink receives diagnostics from the graph engines.
// Implementations must be safe for concurrent use.
type Sink interface {
	RecordError(msg string)
	RecordWarning(msg string)
}

// Nop discards every diagnostic.
type Nop struct{}

func (Nop) RecordError(string)   {}
func (Nop) RecordWarning(string) {}

// Recorder keeps diagnostics in memory, in arrival order.
type Recorder struct {
	mu       sync.Mutex
	errors   []string
	warnings []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// RecordError implements Sink.
func (r *Recorder) RecordError(msg string) {
	r.mu.Lock()
	r.errors = append(r.errors, msg)
	r.mu.Unlock()
}

// RecordWarning implements Sink.
func (r *Recorder) RecordWarning(msg string) {
	r.mu.Lock()
	r.warnings = append(r.warnings, msg)
	r.mu.Unlock()
}

// Errors returns a copy of the recorded errors.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

// Warnings returns a copy of the recorded warnings.
func (r *Recorder) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warnings...)
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.errors, r.warnings = nil, nil
	r.mu.Unlock()
}

// SlogSink forwards diagnostics to a structured logger.
type SlogSink struct {
	logger *slog.Logger
	attrs  []any
}

// NewSlogSink wraps logger. A nil logger resolves to slog.Default at
// record time, so later changes to the default logger are honoured.
func NewSlogSink(logger *slog.Logger, attrs ...any) *SlogSink {
	return &SlogSink{logger: logger, attrs: attrs}
}

func (s *SlogSink) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// RecordError implements Sink.
func (s *SlogSink) RecordError(msg string) {
	s.log().Log(context.Background(), slog.LevelError, msg, s.attrs...)
}

// RecordWarning implements Sink.
func (s *SlogSink) RecordWarning(msg string) {
	s.log().Log(context.Background(), slog.LevelWarn, msg, s.attrs...)
}

// Default returns the sink algorithms use when none is configured.
func Default() Sink { return NewSlogSink(nil, "component", "relgraph") }

// Multi fans every diagnostic out to each sink in order.
type Multi []Sink

func (m Multi) RecordError(msg string) {
	for _, s := range m {
		if s != nil {
			s.RecordError(msg)
		}
	}
}

func (m Multi) RecordWarning(msg string) {
	for _, s := range m {
		if s != nil {
			s.RecordWarning(msg)
		}
	}
}
