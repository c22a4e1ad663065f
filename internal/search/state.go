// Package search holds the per-invocation arena shared by the Dijkstra and
// A* engines: entity labels, the frontier, an outgoing-relation index, and
// back-pointer path reconstruction.
//
// A State is built for exactly one search and discarded afterwards. Nothing
// in this package is shared between calls.
package search

import (
	"container/heap"
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/relgraph/core"
)

// ErrBudgetExhausted is returned by Run when MaxIterations frontier pops
// were spent before the search finished.
var ErrBudgetExhausted = errors.New("search: iteration budget exhausted")

// Label is the search record kept for one entity.
type Label struct {
	// Cost is the minimum accumulated weight from the start; valid if HasCost.
	Cost    float64
	HasCost bool

	// EdgeCost is the weight of the relation last used to reach the entity.
	EdgeCost float64

	// Prev is the back-pointer; empty for the start and unreached entities.
	Prev string

	// Settled marks the cost as final.
	Settled bool

	// Heuristic is the straight-line distance to the target (A* only).
	Heuristic float64
}

// PriorityFunc maps a label to its frontier key. Lower pops first.
type PriorityFunc func(l *Label) float64

// ByCost orders the frontier by accumulated cost alone.
func ByCost(l *Label) float64 { return l.Cost }

// MetricFunc measures a relation when choosing among parallel relations
// and when accumulating path length.
type MetricFunc func(rel *core.Relation) float64

// Config parameterizes a State.
type Config struct {
	// Priority keys the frontier. Nil means ByCost.
	Priority PriorityFunc

	// Metric ranks parallel relations during reconstruction. Nil means Weight.
	Metric MetricFunc

	// MaxIterations bounds frontier pops; 0 means unlimited.
	MaxIterations int
}

// State is the arena of a single search.
type State struct {
	cfg Config

	labels   map[string]*Label
	outgoing map[string][]*core.Relation // by source, in relation order

	pq  frontier
	seq uint64

	settledOrder []string
	iterations   int
}

// New indexes r for one search. Relations must already be validated.
func New(r core.Reader, cfg Config) *State {
	if cfg.Priority == nil {
		cfg.Priority = ByCost
	}
	if cfg.Metric == nil {
		cfg.Metric = func(rel *core.Relation) float64 { return rel.Weight }
	}
	ids := r.EntityIDs()
	s := &State{
		cfg:      cfg,
		labels:   make(map[string]*Label, len(ids)),
		outgoing: make(map[string][]*core.Relation, len(ids)),
		pq:       make(frontier, 0, len(ids)),
	}
	for _, id := range ids {
		s.labels[id] = &Label{}
	}
	for _, rel := range r.Relations() {
		s.outgoing[rel.From] = append(s.outgoing[rel.From], rel)
	}

	return s
}

// Label returns the record of id, or nil when id is not an entity.
func (s *State) Label(id string) *Label { return s.labels[id] }

// SetHeuristic stores h for id ahead of the search.
func (s *State) SetHeuristic(id string, h float64) {
	if l := s.labels[id]; l != nil {
		l.Heuristic = h
	}
}

// Settled returns the settled entities as a set.
func (s *State) Settled() mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(s.settledOrder...)
}

// SettledOrder returns settled entities in the order they were settled.
func (s *State) SettledOrder() []string { return s.settledOrder }

// Iterations returns the number of frontier pops performed.
func (s *State) Iterations() int { return s.iterations }

// Run executes the label-setting loop from start until end is settled or
// the frontier is exhausted. It reports whether end was settled.
//
// Implementation:
//   - Stage 1: Label start with cost 0 and admit it.
//   - Stage 2: Pop the lowest (priority, seq) item; skip it if stale.
//   - Stage 3: Settle it and relax outgoing relations in relation order,
//     updating a neighbour only on a strictly lower candidate cost.
//
// Errors: the context error on cancellation, ErrBudgetExhausted when the
// iteration budget runs out. Labels stay readable in both cases.
func (s *State) Run(ctx context.Context, start, end string) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	src := s.labels[start]
	src.Cost, src.HasCost = 0, true
	s.admit(start, src)

	for s.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if s.cfg.MaxIterations > 0 && s.iterations >= s.cfg.MaxIterations {
			return false, ErrBudgetExhausted
		}
		item := heap.Pop(&s.pq).(*frontierItem)
		s.iterations++

		cur := s.labels[item.id]
		if cur.Settled {
			continue
		}
		cur.Settled = true
		s.settledOrder = append(s.settledOrder, item.id)
		if item.id == end {
			return true, nil
		}
		s.relax(item.id, cur)
	}

	return false, nil
}

// relax offers every relation leaving id to its target.
func (s *State) relax(id string, cur *Label) {
	for _, rel := range s.outgoing[id] {
		nb := s.labels[rel.To]
		if nb == nil || nb.Settled {
			continue
		}
		candidate := cur.Cost + rel.Weight
		if nb.HasCost && candidate >= nb.Cost {
			continue
		}
		nb.Cost, nb.HasCost = candidate, true
		nb.EdgeCost = rel.Weight
		nb.Prev = id
		s.admit(rel.To, nb)
	}
}

func (s *State) admit(id string, l *Label) {
	s.seq++
	heap.Push(&s.pq, &frontierItem{id: id, priority: s.cfg.Priority(l), seq: s.seq})
}
