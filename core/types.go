// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Entity, Relation and Graph types, construction options, sentinel errors.
// Concurrency:
//   - Graph catalogs are guarded by a single RWMutex.
//   - Entity and Relation values are treated as immutable once added.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/relgraph/geom"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil Reader or *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyEntityID indicates an empty entity identifier.
	ErrEmptyEntityID = errors.New("core: entity ID is empty")

	// ErrEntityNotFound indicates an operation referenced a missing entity.
	ErrEntityNotFound = errors.New("core: entity not found")

	// ErrNegativeWeight indicates a relation weight below zero or NaN.
	ErrNegativeWeight = errors.New("core: relation weight must be non-negative")

	// ErrLoopNotAllowed indicates a self-relation when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateRelation indicates a caller-supplied relation ID is taken.
	ErrDuplicateRelation = errors.New("core: duplicate relation ID")

	// ErrMalformedRelation indicates a relation whose endpoint is not an
	// entity of the same graph.
	ErrMalformedRelation = errors.New("core: malformed relation")

	// ErrUnknownDirection indicates a Direction outside Forwards/Backwards/Both.
	ErrUnknownDirection = errors.New("core: unknown direction")
)

// Entity is a graph vertex: an identifier plus the owner's domain object.
type Entity struct {
	// ID uniquely identifies the entity within its graph.
	ID string

	// Payload is opaque to core. It is shared, not copied, by sub-graphs.
	Payload any
}

// Relation is a directed, weighted edge that may carry geometry.
type Relation struct {
	// ID uniquely identifies the relation within its graph.
	ID string

	// From is the source entity ID.
	From string

	// To is the target entity ID.
	To string

	// Weight is the traversal cost. Never negative.
	Weight float64

	// Curve is optional geometry; nil means none.
	Curve geom.Curve
}

// Reader is the read-only view algorithms consume.
//
// EntityIDs must be sorted ascending and Relations must return the same
// order on every call; deterministic tie-breaks depend on both.
type Reader interface {
	EntityIDs() []string
	Entity(id string) (*Entity, bool)
	Relations() []*Relation
}

// Graph is the in-memory Reader implementation.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	entities     map[string]*Entity
	relations    []*Relation
	relationByID map[string]*Relation

	// nextRelationID backs generated IDs; accessed atomically.
	nextRelationID uint64
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithLoops permits relations whose source and target coincide.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// RelationOption configures a single relation passed to AddRelation.
type RelationOption func(*Relation)

// WithCurve attaches geometry to the relation.
func WithCurve(c geom.Curve) RelationOption {
	return func(r *Relation) { r.Curve = c }
}

// WithRelationID assigns an explicit ID instead of a generated one.
func WithRelationID(id string) RelationOption {
	return func(r *Relation) { r.ID = id }
}

// NewGraph returns an empty Graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		entities:     make(map[string]*Entity),
		relationByID: make(map[string]*Relation),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsNil reports whether r is nil, including a typed nil *Graph.
func IsNil(r Reader) bool {
	if r == nil {
		return true
	}
	if g, ok := r.(*Graph); ok {
		return g == nil
	}
	return false
}
