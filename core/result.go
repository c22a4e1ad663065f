package core

import mapset "github.com/deckarep/golang-set/v2"

// PathResult is the outcome of a shortest-path search.
//
// Reached is false when the requested end was never settled. Dijkstra then
// returns an empty Path; A* instead routes to the settled entity closest to
// the end and reports it in Destination.
type PathResult struct {
	// Path lists entity IDs from start to Destination.
	Path []string

	// RelationsUsed lists the relation chosen between each consecutive pair
	// of Path, so len(RelationsUsed) == len(Path)-1 for non-empty paths.
	RelationsUsed []string

	// Length is hop count for Dijkstra and geometric length for A*.
	Length float64

	// Cost sums the weights of RelationsUsed.
	Cost float64

	// Visited holds every entity settled during the search.
	Visited mapset.Set[string]

	// Reached reports whether the requested end was settled.
	Reached bool

	// Destination is the entity the path actually ends at.
	Destination string

	// Fallback is set when A* degraded to Dijkstra for lack of spatial data.
	Fallback bool
}

// Hops returns the number of relations on the path.
func (p *PathResult) Hops() int {
	if p == nil || len(p.Path) == 0 {
		return 0
	}
	return len(p.Path) - 1
}

// VisitedIDs returns the settled entities sorted ascending.
func (p *PathResult) VisitedIDs() []string {
	if p == nil || p.Visited == nil {
		return nil
	}
	return mapset.Sorted(p.Visited)
}

// EmptyPathResult returns a result with no path and an empty visited set.
func EmptyPathResult() *PathResult {
	return &PathResult{
		Path:          []string{},
		RelationsUsed: []string{},
		Visited:       mapset.NewThreadUnsafeSet[string](),
	}
}
