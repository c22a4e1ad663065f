package components

import (
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/diag"
	"github.com/katalvlaran/relgraph/internal/telemetry"
)

// ErrNilGraph is returned for a nil graph.
var ErrNilGraph = errors.New("components: graph is nil")

// Option configures a partition call.
type Option func(*Options)

// Options holds partition configuration.
type Options struct {
	Ctx  context.Context
	Sink diag.Sink
}

// DefaultOptions returns background context and the slog sink.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Sink: diag.Default()}
}

// WithContext sets the cancellation context, checked once per seed.
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

// partitioner is the per-call state of one decomposition.
type partitioner struct {
	adj   core.AdjacencyMap
	ids   []string
	index map[string]int
	owner []int // seed index that claimed the entity, -1 if unassigned
	uf    *unionFind
	stack []int
}

// Partition returns the member IDs of each weakly-connected component of r.
// Members are sorted and components are ordered by their first member.
//
// A nil graph is recorded on the sink and returns ErrNilGraph; a malformed
// relation returns core.ErrMalformedRelation.
func Partition(r core.Reader, dir core.Direction, opts ...Option) ([][]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sink := telemetry.CountingSink(o.Sink)

	_, op := telemetry.Begin(o.Ctx, "components.partition", attribute.String("direction", dir.String()))
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

	p := newPartitioner(adj, r.EntityIDs())
	for seed := range p.ids {
		if p.owner[seed] >= 0 {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			op.End(telemetry.OutcomeError, err)
			return nil, err
		}
		p.walk(seed)
	}

	groups := p.groups()
	op.SetAttributes(attribute.Int("entities", len(p.ids)), attribute.Int("components", len(groups)))
	op.End(telemetry.OutcomeOK, nil)
	telemetry.RecordComponents(len(groups))

	return groups, nil
}

// SubGraphs returns each weakly-connected component of r as a new Graph.
// The union of their entity sets is r's entity set, the sets are pairwise
// disjoint, and every relation of r lands in exactly one of them.
func SubGraphs(r core.Reader, dir core.Direction, opts ...Option) ([]*core.Graph, error) {
	groups, err := Partition(r, dir, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]*core.Graph, len(groups))
	for i, members := range groups {
		out[i] = core.Induced(r, mapset.NewThreadUnsafeSet(members...), nil)
	}
	return out, nil
}

// Largest returns the component with the most entities; ties go to the
// component with the smaller first member. An empty graph yields nil.
func Largest(r core.Reader, dir core.Direction, opts ...Option) (*core.Graph, error) {
	groups, err := Partition(r, dir, opts...)
	if err != nil || len(groups) == 0 {
		return nil, err
	}
	best := 0
	for i, g := range groups {
		if len(g) > len(groups[best]) {
			best = i
		}
	}
	return core.Induced(r, mapset.NewThreadUnsafeSet(groups[best]...), nil), nil
}

func newPartitioner(adj core.AdjacencyMap, ids []string) *partitioner {
	p := &partitioner{
		adj:   adj,
		ids:   ids,
		index: make(map[string]int, len(ids)),
		owner: make([]int, len(ids)),
		uf:    newUnionFind(len(ids)),
	}
	for i, id := range ids {
		p.index[id] = i
		p.owner[i] = -1
	}
	return p
}

// walk claims everything reachable from seed with an explicit stack.
// Entities owned by an earlier seed are merged, not re-walked.
func (p *partitioner) walk(seed int) {
	p.owner[seed] = seed
	p.stack = append(p.stack[:0], seed)
	for len(p.stack) > 0 {
		cur := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		for _, nbID := range p.adj.Neighbours(p.ids[cur]) {
			nb, ok := p.index[nbID]
			if !ok {
				continue
			}
			switch {
			case p.owner[nb] < 0:
				p.owner[nb] = seed
				p.uf.union(seed, nb)
				p.stack = append(p.stack, nb)
			case p.owner[nb] != seed:
				p.uf.union(seed, nb)
			}
		}
	}
}

// groups collects members by representative, ordered by first member.
func (p *partitioner) groups() [][]string {
	slot := make(map[int]int)
	var out [][]string
	for i, id := range p.ids {
		root := p.uf.find(i)
		k, ok := slot[root]
		if !ok {
			k = len(out)
			slot[root] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], id)
	}
	return out
}
