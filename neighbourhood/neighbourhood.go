package neighbourhood

import (
	"context"
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relgraph/bfs"
	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/diag"
	"github.com/katalvlaran/relgraph/internal/telemetry"
)

// Sentinel errors.
var (
	ErrNilGraph        = errors.New("neighbourhood: graph is nil")
	ErrEntityNotFound  = errors.New("neighbourhood: entity not found")
	ErrNegativeDepth   = errors.New("neighbourhood: depth must be non-negative")
	ErrOptionViolation = errors.New("neighbourhood: invalid option supplied")
)

// Option configures an extraction.
type Option func(*Options)

// Options holds extraction configuration.
type Options struct {
	Ctx  context.Context
	Sink diag.Sink

	// Workers bounds concurrent extractions in Neighbourhoods; 1 is serial.
	Workers int

	err error
}

// DefaultOptions returns background context, the slog sink, one worker.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Sink: diag.Default(), Workers: 1}
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

// WithWorkers sets the number of concurrent extractions; n < 1 is invalid.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

func build(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Neighbourhood returns the sub-graph of entity and the entities exactly
// maxDepth hops away under dir, with the relations joining entity to them.
//
// Errors (also recorded on the sink): ErrNilGraph, ErrNegativeDepth,
// ErrEntityNotFound; core.ErrMalformedRelation for a broken graph.
func Neighbourhood(r core.Reader, entity string, maxDepth int, dir core.Direction, opts ...Option) (*core.Graph, error) {
	o := build(opts)
	if o.err != nil {
		return nil, o.err
	}
	sink := telemetry.CountingSink(o.Sink)
	ctx, op := telemetry.Begin(o.Ctx, "neighbourhood",
		attribute.String("entity", entity), attribute.Int("depth", maxDepth))

	fail := func(err error) (*core.Graph, error) {
		sink.RecordError(err.Error())
		op.End(telemetry.OutcomeInvalid, err)
		return nil, err
	}
	switch {
	case core.IsNil(r):
		return fail(ErrNilGraph)
	case maxDepth < 0:
		return fail(fmt.Errorf("%w: %d", ErrNegativeDepth, maxDepth))
	}
	if _, ok := r.Entity(entity); !ok {
		return fail(fmt.Errorf("%w: %q", ErrEntityNotFound, entity))
	}
	adj, err := core.Adjacency(r, dir)
	if err != nil {
		return fail(err)
	}

	sg, err := extract(ctx, r, adj, entity, maxDepth, sink)
	if err != nil {
		op.End(telemetry.OutcomeError, err)
		return nil, err
	}
	op.SetAttributes(attribute.Int("entities", sg.EntityCount()))
	op.End(telemetry.OutcomeOK, nil)

	return sg, nil
}

// Neighbourhoods returns the depth-1 neighbourhood of every entity of r,
// ordered by entity ID.
func Neighbourhoods(r core.Reader, dir core.Direction, opts ...Option) ([]*core.Graph, error) {
	o := build(opts)
	if o.err != nil {
		return nil, o.err
	}
	sink := telemetry.CountingSink(o.Sink)
	ctx, op := telemetry.Begin(o.Ctx, "neighbourhoods", attribute.Int("workers", o.Workers))

	if core.IsNil(r) {
		sink.RecordError(ErrNilGraph.Error())
		op.End(telemetry.OutcomeInvalid, ErrNilGraph)
		return nil, ErrNilGraph
	}
	adj, err := core.Adjacency(r, dir)
	if err != nil {
		sink.RecordError(err.Error())
		op.End(telemetry.OutcomeInvalid, err)
		return nil, err
	}

	ids := r.EntityIDs()
	incident := indexIncident(r.Relations())
	out := make([]*core.Graph, len(ids))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i, id := range ids {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			sg, err := extract(egCtx, incidentView{Reader: r, rels: incident[id]}, adj, id, 1, sink)
			if err != nil {
				return err
			}
			out[i] = sg
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		op.End(telemetry.OutcomeError, err)
		return nil, err
	}
	op.SetAttributes(attribute.Int("entities", len(ids)))
	op.End(telemetry.OutcomeOK, nil)

	return out, nil
}

// extract materializes the neighbourhood of entity from a ready adjacency.
func extract(ctx context.Context, r core.Reader, adj core.AdjacencyMap, entity string, maxDepth int, sink diag.Sink) (*core.Graph, error) {
	keep := mapset.NewThreadUnsafeSet(entity)
	if maxDepth > 0 {
		depth, err := bfs.Depth(adj, entity,
			bfs.WithContext(ctx), bfs.WithSink(sink), bfs.WithMaxDepth(maxDepth))
		if err != nil {
			return nil, err
		}
		for id, d := range depth {
			if d == maxDepth {
				keep.Add(id)
			}
		}
	}

	joinsEntity := func(rel *core.Relation) bool {
		return (rel.From == entity && keep.ContainsOne(rel.To)) ||
			(rel.To == entity && keep.ContainsOne(rel.From))
	}
	return core.Induced(r, keep, joinsEntity), nil
}

// incidentView narrows a Reader's relations to those touching one entity.
type incidentView struct {
	core.Reader
	rels []*core.Relation
}

func (v incidentView) Relations() []*core.Relation { return v.rels }

// indexIncident groups relations by endpoint, preserving relation order.
func indexIncident(rels []*core.Relation) map[string][]*core.Relation {
	idx := make(map[string][]*core.Relation)
	for _, rel := range rels {
		idx[rel.From] = append(idx[rel.From], rel)
		if rel.To != rel.From {
			idx[rel.To] = append(idx[rel.To], rel)
		}
	}
	return idx
}
