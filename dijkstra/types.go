// Package dijkstra defines configuration options and sentinel errors
// for point-to-point Dijkstra search over a core.Reader.
package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/relgraph/diag"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyEndpoint indicates an empty start or end ID.
	ErrEmptyEndpoint = errors.New("dijkstra: start or end ID is empty")

	// ErrEntityNotFound indicates that start or end is not an entity.
	ErrEntityNotFound = errors.New("dijkstra: entity not found in graph")

	// ErrIterationBudget indicates the search stopped after MaxIterations
	// frontier pops; the partial result is still returned.
	ErrIterationBudget = errors.New("dijkstra: iteration budget exhausted")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Option configures a Dijkstra call.
type Option func(*Options)

// Options holds Dijkstra configuration.
type Options struct {
	// Ctx cancels the frontier loop.
	Ctx context.Context

	// Sink receives invalid-input errors and the unreachable-target warning.
	Sink diag.Sink

	// MaxIterations bounds frontier pops; 0 means unlimited.
	MaxIterations int

	err error
}

// DefaultOptions returns background context, the slog sink, no budget.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Sink: diag.Default(),
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink routes diagnostics to s.
func WithSink(s diag.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithMaxIterations caps frontier pops. n < 0 → ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}
