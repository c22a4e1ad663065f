// File: adjacency.go
// Role: Direction and the per-direction adjacency derivation shared by every
//       traversal (depth, partitioning, neighbourhoods).
// Determinism:
//   - The map itself is unordered; Neighbours returns sorted IDs.

package core

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Direction selects which relations count as adjacency.
type Direction int

const (
	// Forwards follows relations from source to target.
	Forwards Direction = iota
	// Backwards follows relations from target to source.
	Backwards
	// Both ignores orientation.
	Both
)

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Forwards:
		return "forwards"
	case Backwards:
		return "backwards"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the defined directions.
func (d Direction) Valid() bool { return d >= Forwards && d <= Both }

// ParseDirection is the inverse of String; matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forwards", "forward":
		return Forwards, nil
	case "backwards", "backward":
		return Backwards, nil
	case "both":
		return Both, nil
	}
	return Forwards, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// AdjacencyMap maps every entity ID to the set of its neighbour IDs.
type AdjacencyMap map[string]mapset.Set[string]

// Neighbours returns the sorted neighbours of id, or nil when id is unknown.
func (m AdjacencyMap) Neighbours(id string) []string {
	set, ok := m[id]
	if !ok || set == nil {
		return nil
	}
	return mapset.Sorted(set)
}

// Has reports whether id is a key of m.
func (m AdjacencyMap) Has(id string) bool {
	_, ok := m[id]
	return ok
}

// Adjacency derives the neighbour sets of r for the given direction.
//
// Implementation:
//   - Stage 1: Seed an empty set for every entity so that no entity is absent.
//   - Stage 2: Scan relations once, adding the target (Forwards), the source
//     (Backwards) or both (Both). Parallel relations collapse into one entry.
//
// Errors:
//   - ErrNilGraph: r is nil; an empty, non-nil map is returned with it.
//   - ErrUnknownDirection: dir is not a defined Direction.
//   - ErrMalformedRelation: a relation endpoint is not an entity.
//
// Complexity: O(V + R). The sets are thread-unsafe; the map is call-scoped.
func Adjacency(r Reader, dir Direction) (AdjacencyMap, error) {
	if IsNil(r) {
		return AdjacencyMap{}, ErrNilGraph
	}
	if !dir.Valid() {
		return AdjacencyMap{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}

	ids := r.EntityIDs()
	adj := make(AdjacencyMap, len(ids))
	for _, id := range ids {
		adj[id] = mapset.NewThreadUnsafeSet[string]()
	}

	for _, rel := range r.Relations() {
		if rel == nil {
			return AdjacencyMap{}, fmt.Errorf("%w: nil relation", ErrMalformedRelation)
		}
		from, okFrom := adj[rel.From]
		to, okTo := adj[rel.To]
		if !okFrom || !okTo {
			return AdjacencyMap{}, fmt.Errorf("%w: relation %q (%q→%q) references a missing entity",
				ErrMalformedRelation, rel.ID, rel.From, rel.To)
		}
		if dir != Backwards {
			from.Add(rel.To)
		}
		if dir != Forwards {
			to.Add(rel.From)
		}
	}

	return adj, nil
}
