package astar

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/geom"
)

// Projection is a spatial view of a graph.
type Projection struct {
	// Graph holds the positioned entities and measurable relations.
	Graph core.Reader

	// Positions maps every entity of Graph to its location.
	Positions map[string]geom.Point

	// Lengths maps every relation ID of Graph to its geometric length.
	Lengths map[string]float64
}

// Spatial reports whether the projection has entities and relations.
func (p *Projection) Spatial() bool {
	return p != nil && !core.IsNil(p.Graph) && len(p.Positions) > 0 && len(p.Lengths) > 0
}

// Projector derives a Projection from a graph.
type Projector interface {
	Project(r core.Reader) (*Projection, error)
}

// ProjectorFunc adapts a function to Projector.
type ProjectorFunc func(r core.Reader) (*Projection, error)

// Project implements Projector.
func (f ProjectorFunc) Project(r core.Reader) (*Projection, error) { return f(r) }

// PayloadProjector positions entities whose payload implements
// geom.Positioned. A relation is kept when both endpoints are positioned;
// its length is Curve.Length() when it has a curve, otherwise the distance
// between its endpoints.
type PayloadProjector struct{}

// Project implements Projector.
func (PayloadProjector) Project(r core.Reader) (*Projection, error) {
	positions := make(map[string]geom.Point)
	for _, id := range r.EntityIDs() {
		e, ok := r.Entity(id)
		if !ok {
			continue
		}
		pos, ok := e.Payload.(geom.Positioned)
		if !ok {
			continue
		}
		if p, ok := pos.Position(); ok {
			positions[id] = p
		}
	}

	keep := mapset.NewThreadUnsafeSetWithSize[string](len(positions))
	for id := range positions {
		keep.Add(id)
	}
	projected := core.Induced(r, keep, nil)

	lengths := make(map[string]float64)
	for _, rel := range projected.Relations() {
		if rel.Curve != nil {
			lengths[rel.ID] = rel.Curve.Length()
			continue
		}
		lengths[rel.ID] = geom.Distance(positions[rel.From], positions[rel.To])
	}

	return &Projection{Graph: projected, Positions: positions, Lengths: lengths}, nil
}
