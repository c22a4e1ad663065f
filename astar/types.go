package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/relgraph/diag"
	"github.com/katalvlaran/relgraph/internal/search"
)

// Sentinel errors returned by AStar.
var (
	ErrNilGraph        = errors.New("astar: graph is nil")
	ErrEmptyEndpoint   = errors.New("astar: start or end ID is empty")
	ErrEntityNotFound  = errors.New("astar: entity not found in graph")
	ErrIterationBudget = errors.New("astar: iteration budget exhausted")
	ErrOptionViolation = errors.New("astar: invalid option supplied")
	ErrProjection      = errors.New("astar: projection failed")
)

// Priority selects the frontier key.
type Priority int

const (
	// PriorityCostMinusHeuristic keys by accumulated cost minus heuristic.
	PriorityCostMinusHeuristic Priority = iota
	// PriorityCostPlusHeuristic keys by accumulated cost plus heuristic.
	PriorityCostPlusHeuristic
)

// String returns the key formula.
func (p Priority) String() string {
	switch p {
	case PriorityCostMinusHeuristic:
		return "g-h"
	case PriorityCostPlusHeuristic:
		return "g+h"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

func (p Priority) key() search.PriorityFunc {
	if p == PriorityCostPlusHeuristic {
		return func(l *search.Label) float64 { return l.Cost + l.Heuristic }
	}
	return func(l *search.Label) float64 { return l.Cost - l.Heuristic }
}

// Option configures an AStar call.
type Option func(*Options)

// Options holds AStar configuration.
type Options struct {
	Ctx           context.Context
	Sink          diag.Sink
	MaxIterations int
	Projector     Projector
	Priority      Priority

	err error
}

// DefaultOptions returns background context, the slog sink, no budget,
// PayloadProjector and the g − h priority.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Sink:      diag.Default(),
		Projector: PayloadProjector{},
		Priority:  PriorityCostMinusHeuristic,
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

// WithProjector replaces the spatial projection.
func WithProjector(p Projector) Option {
	return func(o *Options) {
		if p != nil {
			o.Projector = p
		}
	}
}

// WithPriority selects the frontier key.
func WithPriority(p Priority) Option {
	return func(o *Options) {
		if p != PriorityCostMinusHeuristic && p != PriorityCostPlusHeuristic {
			o.err = fmt.Errorf("%w: unknown priority %d", ErrOptionViolation, int(p))
			return
		}
		o.Priority = p
	}
}
