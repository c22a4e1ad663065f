// Package bfs labels entities with their breadth-first hop distance from a
// start entity, walking a precomputed core.AdjacencyMap.
//
// Neighbours are expanded in ascending ID order, so Order and Parent are
// reproducible; Depth is unique regardless of order.
package bfs

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/internal/telemetry"
)

// queueItem pairs an entity ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable per-call BFS state.
type walker struct {
	adj     core.AdjacencyMap
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Depth returns the hop distance of every entity reachable from start.
//
// depth[start] == 0; each entity is labelled on first discovery and never
// relabelled; unreached entities are absent.
//
// If start is not a key of adj, the error is recorded on the sink and an
// empty map is returned together with ErrStartNotFound.
func Depth(adj core.AdjacencyMap, start string, opts ...Option) (map[string]int, error) {
	res, err := Walk(adj, start, opts...)
	if res == nil {
		return map[string]int{}, err
	}
	return res.Depth, err
}

// DepthFrom derives adjacency from r in direction dir and runs Depth.
// A nil graph, an unknown direction or a malformed relation is recorded on
// the sink and returned with an empty map.
func DepthFrom(r core.Reader, start string, dir core.Direction, opts ...Option) (map[string]int, error) {
	adj, err := core.Adjacency(r, dir)
	if err != nil {
		o := DefaultOptions()
		for _, opt := range opts {
			opt(&o)
		}
		if o.err != nil {
			return map[string]int{}, o.err
		}
		telemetry.CountingSink(o.Sink).RecordError(err.Error())
		return map[string]int{}, err
	}
	return Depth(adj, start, opts...)
}

// Walk runs the breadth-first traversal and returns the full Result.
// Returns ErrOptionViolation for bad options, ErrStartNotFound for an
// unknown start, the context error on cancellation, or a hook error.
func Walk(adj core.AdjacencyMap, start string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	sink := telemetry.CountingSink(o.Sink)

	_, op := telemetry.Begin(o.Ctx, "bfs.depth", attribute.String("start", start))
	if !adj.Has(start) {
		err := fmt.Errorf("%w: %q", ErrStartNotFound, start)
		sink.RecordError(err.Error())
		op.End(telemetry.OutcomeInvalid, err)
		return nil, err
	}

	n := len(adj)
	w := &walker{
		adj:     adj,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")
	err := w.loop()
	op.SetAttributes(attribute.Int("reached", len(w.res.Depth)))
	if err != nil {
		op.End(telemetry.OutcomeError, err)
		return w.res, err
	}
	op.End(telemetry.OutcomeOK, nil)

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbours(item)
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the entity in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbours enqueues each unseen neighbour within MaxDepth.
func (w *walker) enqueueNeighbours(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.adj.Neighbours(item.id) {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
