// File: view.go
// Role: Materialized sub-graphs (induced views, clones).
// Determinism:
//   - Preserves entity IDs, relation IDs and relation order of the source.
// Concurrency:
//   - Reads the source through Reader only; the result is a fresh Graph whose
//     catalogs share nothing with the source. Payloads are shared.

package core

import (
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// RelationFilter decides whether a relation enters a view. Nil keeps all.
type RelationFilter func(rel *Relation) bool

// Induced returns a new Graph holding the entities of r named in keep and
// the relations whose both endpoints are kept and which pass filter.
// IDs in keep that are not entities of r are ignored.
//
// Implementation:
//   - Stage 1: Copy kept entities (struct copy, payload shared).
//   - Stage 2: Copy qualifying relations in source order, keeping their IDs.
//   - Stage 3: Advance the ID counter past the copied relations so later
//     AddRelation calls on the view do not collide.
//
// Complexity: O(V + R).
func Induced(r Reader, keep mapset.Set[string], filter RelationFilter) *Graph {
	out := NewGraph(WithLoops())
	if IsNil(r) || keep == nil {
		return out
	}
	if g, ok := r.(*Graph); ok {
		out.allowLoops = g.allowLoops
	}

	keep.Each(func(id string) bool {
		if e, ok := r.Entity(id); ok {
			out.entities[id] = &Entity{ID: e.ID, Payload: e.Payload}
		}
		return false
	})

	var maxGenerated uint64
	for _, rel := range r.Relations() {
		if _, ok := out.entities[rel.From]; !ok {
			continue
		}
		if _, ok := out.entities[rel.To]; !ok {
			continue
		}
		if filter != nil && !filter(rel) {
			continue
		}
		cp := *rel
		out.appendRelation(&cp)
		if n, ok := generatedSeq(cp.ID); ok && n > maxGenerated {
			maxGenerated = n
		}
	}
	atomic.StoreUint64(&out.nextRelationID, maxGenerated)

	return out
}

// Clone returns a deep copy of g's catalogs; payloads are shared.
func (g *Graph) Clone() *Graph {
	keep := mapset.NewThreadUnsafeSet(g.EntityIDs()...)
	return Induced(g, keep, nil)
}

// generatedSeq parses the numeric suffix of an "r<n>" relation ID.
func generatedSeq(id string) (uint64, bool) {
	if len(id) < 2 || id[:len(relationIDPrefix)] != relationIDPrefix {
		return 0, false
	}
	var n uint64
	for _, c := range id[len(relationIDPrefix):] {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
	}
	return n, true
}
