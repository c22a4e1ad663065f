package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

const relationIDPrefix = "r"

// AddEntity inserts an entity with the given payload.
// Re-adding an existing ID replaces nothing and returns nil (idempotent).
// Returns ErrEmptyEntityID for an empty id.
// Complexity: O(1).
func (g *Graph) AddEntity(id string, payload any) error {
	if id == "" {
		return ErrEmptyEntityID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.entities[id]; exists {
		return nil
	}
	g.entities[id] = &Entity{ID: id, Payload: payload}

	return nil
}

// AddRelation appends a directed relation from→to and returns its ID.
//
// Both endpoints must already be entities of g. Parallel relations are
// always accepted; self-relations only with WithLoops.
//
// Returns ErrEmptyEntityID, ErrEntityNotFound, ErrNegativeWeight,
// ErrLoopNotAllowed or ErrDuplicateRelation.
// Complexity: O(1) amortized.
func (g *Graph) AddRelation(from, to string, weight float64, opts ...RelationOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyEntityID
	}
	if weight < 0 || math.IsNaN(weight) {
		return "", fmt.Errorf("%w: %v", ErrNegativeWeight, weight)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	rel := &Relation{From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(rel)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.entities[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrEntityNotFound, from)
	}
	if _, ok := g.entities[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrEntityNotFound, to)
	}

	if rel.ID == "" {
		rel.ID = g.nextID()
	} else if _, taken := g.relationByID[rel.ID]; taken {
		return "", fmt.Errorf("%w: %q", ErrDuplicateRelation, rel.ID)
	}
	g.appendRelation(rel)

	return rel.ID, nil
}

// nextID generates a fresh relation ID not yet in use. Caller holds mu.
func (g *Graph) nextID() string {
	for {
		id := relationIDPrefix + strconv.FormatUint(atomic.AddUint64(&g.nextRelationID, 1), 10)
		if _, taken := g.relationByID[id]; !taken {
			return id
		}
	}
}

// appendRelation stores rel without validation. Caller holds mu.
func (g *Graph) appendRelation(rel *Relation) {
	g.relations = append(g.relations, rel)
	g.relationByID[rel.ID] = rel
}

// EntityIDs returns all entity IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) EntityIDs() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.entities))
	for id := range g.entities {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Entity returns the entity with the given ID.
func (g *Graph) Entity(id string) (*Entity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.entities[id]

	return e, ok
}

// HasEntity reports whether id names an entity of g.
func (g *Graph) HasEntity(id string) bool {
	_, ok := g.Entity(id)
	return ok
}

// Relations returns the relations in insertion order.
// The slice is a fresh copy; the pointed-to relations must not be modified.
func (g *Graph) Relations() []*Relation {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]*Relation(nil), g.relations...)
}

// Relation returns the relation with the given ID.
func (g *Graph) Relation(id string) (*Relation, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.relationByID[id]

	return r, ok
}

// EntityCount returns |E|.
func (g *Graph) EntityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.entities)
}

// RelationCount returns |R|.
func (g *Graph) RelationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.relations)
}

// Looped reports whether self-relations are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Validate checks that every relation of r joins two entities of r and
// carries a non-negative weight. The first violation is returned wrapped in
// ErrMalformedRelation.
// Complexity: O(V + R).
func Validate(r Reader) error {
	if IsNil(r) {
		return ErrNilGraph
	}
	known := mapset.NewThreadUnsafeSet(r.EntityIDs()...)
	for _, rel := range r.Relations() {
		if err := checkRelation(known, rel); err != nil {
			return err
		}
	}

	return nil
}

func checkRelation(known mapset.Set[string], rel *Relation) error {
	if rel == nil {
		return fmt.Errorf("%w: nil relation", ErrMalformedRelation)
	}
	if !known.ContainsOne(rel.From) {
		return fmt.Errorf("%w: relation %q source %q is not an entity", ErrMalformedRelation, rel.ID, rel.From)
	}
	if !known.ContainsOne(rel.To) {
		return fmt.Errorf("%w: relation %q target %q is not an entity", ErrMalformedRelation, rel.ID, rel.To)
	}
	if rel.Weight < 0 || math.IsNaN(rel.Weight) {
		return fmt.Errorf("%w: relation %q: %w", ErrMalformedRelation, rel.ID, ErrNegativeWeight)
	}

	return nil
}
