package core

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Destinations returns the targets of relations leaving id.
// Returns ErrNilGraph, ErrEmptyEntityID, ErrEntityNotFound or
// ErrMalformedRelation on invalid input.
// Complexity: O(V + R + k log k).
func Destinations(r Reader, id string) ([]string, error) {
	if err := requireEntity(r, id); err != nil {
		return nil, err
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	err := scanRelations(r, func(rel *Relation) {
		if rel.From == id {
			seen.Add(rel.To)
		}
	})
	if err != nil {
		return nil, err
	}

	return mapset.Sorted(seen), nil
}

// Incoming returns the sources of relations entering id.
// Returns ErrNilGraph, ErrEmptyEntityID, ErrEntityNotFound or
// ErrMalformedRelation on invalid input.
// Complexity: O(V + R + k log k).
func Incoming(r Reader, id string) ([]string, error) {
	if err := requireEntity(r, id); err != nil {
		return nil, err
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	err := scanRelations(r, func(rel *Relation) {
		if rel.To == id {
			seen.Add(rel.From)
		}
	})
	if err != nil {
		return nil, err
	}

	return mapset.Sorted(seen), nil
}

// Sources returns the entities that are never the target of a relation.
// Complexity: O(V + R).
func Sources(r Reader) ([]string, error) {
	if IsNil(r) {
		return nil, ErrNilGraph
	}
	targets := mapset.NewThreadUnsafeSet[string]()
	if err := scanRelations(r, func(rel *Relation) { targets.Add(rel.To) }); err != nil {
		return nil, err
	}

	return without(r.EntityIDs(), targets), nil
}

// IsolatedEntities returns the entities touched by no relation at all.
// Complexity: O(V + R).
func IsolatedEntities(r Reader) ([]string, error) {
	if IsNil(r) {
		return nil, ErrNilGraph
	}
	touched := mapset.NewThreadUnsafeSet[string]()
	err := scanRelations(r, func(rel *Relation) {
		touched.Add(rel.From)
		touched.Add(rel.To)
	})
	if err != nil {
		return nil, err
	}

	return without(r.EntityIDs(), touched), nil
}

func requireEntity(r Reader, id string) error {
	if IsNil(r) {
		return ErrNilGraph
	}
	if id == "" {
		return ErrEmptyEntityID
	}
	if _, ok := r.Entity(id); !ok {
		return fmt.Errorf("%w: %q", ErrEntityNotFound, id)
	}
	return nil
}

// scanRelations checks every relation of r before handing it to visit and
// stops at the first malformed one.
func scanRelations(r Reader, visit func(rel *Relation)) error {
	known := mapset.NewThreadUnsafeSet(r.EntityIDs()...)
	for _, rel := range r.Relations() {
		if err := checkRelation(known, rel); err != nil {
			return err
		}
		visit(rel)
	}
	return nil
}

// without keeps the IDs of sorted that are not in drop, preserving order.
func without(sorted []string, drop mapset.Set[string]) []string {
	out := make([]string, 0, len(sorted))
	for _, id := range sorted {
		if !drop.ContainsOne(id) {
			out = append(out, id)
		}
	}
	return out
}
