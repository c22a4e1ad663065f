// Package core defines the entity/relation graph that every relgraph
// algorithm reads, together with the derived structures they share.
//
// A Graph G = (E, R) holds:
//
//   - Entities: opaque string identifiers plus an owner payload. The payload
//     is never inspected by core; the A* engine probes it for geom.Positioned.
//   - Relations: directed edges From→To with a non-negative float Weight and
//     an optional geom.Curve. Parallel relations are allowed (multigraph).
//     The relation list keeps insertion order, which every algorithm uses as
//     its final deterministic tie-break.
//   - Generated relation IDs ("r1", "r2", …) from an atomic counter, or
//     caller-supplied IDs via WithRelationID.
//
// Algorithms accept the Reader interface rather than *Graph, so callers can
// plug in their own storage. A Reader is trusted only as far as Validate
// allows: a relation whose endpoint is not an entity aborts the call with
// ErrMalformedRelation.
//
// Derived structures:
//
//	Adjacency(r, dir)      → AdjacencyMap (entity → neighbour set)
//	Destinations / Incoming / Sources / IsolatedEntities
//	Induced(r, keep, filter) → fresh *Graph restricted to keep
//
// Direction selects how relations become adjacency:
//
//	Forwards   targets of relations leaving the entity
//	Backwards  sources of relations entering the entity
//	Both       union of the two
//
// Concurrency:
//
//	Graph guards its catalogs with a sync.RWMutex. Algorithms only read, and
//	every sub-graph they return is a new Graph, so concurrent queries on one
//	instance are safe. Concurrent mutation while algorithms run is not
//	supported.
//
// Determinism:
//
//	EntityIDs is sorted ascending, Relations follows insertion order, and
//	every id slice returned by this package is sorted and de-duplicated.
package core
