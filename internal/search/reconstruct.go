package search

import (
	"fmt"

	"github.com/katalvlaran/relgraph/core"
)

// Path is a reconstructed route.
type Path struct {
	Entities  []string
	Relations []*core.Relation
}

// Cost sums the weights of the chosen relations.
func (p Path) Cost() float64 {
	var c float64
	for _, rel := range p.Relations {
		c += rel.Weight
	}
	return c
}

// Measure sums metric over the chosen relations.
func (p Path) Measure(metric MetricFunc) float64 {
	var total float64
	for _, rel := range p.Relations {
		total += metric(rel)
	}
	return total
}

// RelationIDs lists the chosen relation IDs in path order.
func (p Path) RelationIDs() []string {
	ids := make([]string, len(p.Relations))
	for i, rel := range p.Relations {
		ids[i] = rel.ID
	}
	return ids
}

// Reconstruct follows back-pointers from dest to the start and returns the
// forward path. The walk is iterative and bounded by the number of labels.
// An unreached dest yields an empty Path.
//
// Between consecutive entities the relation with the lowest Config.Metric
// is chosen; ties resolve to the first such relation in relation order.
func (s *State) Reconstruct(dest string) (Path, error) {
	l := s.labels[dest]
	if l == nil || !l.HasCost {
		return Path{}, nil
	}

	rev := []string{dest}
	for cur := l; cur.Prev != ""; cur = s.labels[cur.Prev] {
		if len(rev) > len(s.labels) {
			return Path{}, fmt.Errorf("search: back-pointer cycle at %q", cur.Prev)
		}
		rev = append(rev, cur.Prev)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	rels := make([]*core.Relation, 0, len(rev)-1)
	for i := 1; i < len(rev); i++ {
		rel := s.between(rev[i-1], rev[i])
		if rel == nil {
			return Path{}, fmt.Errorf("search: no relation %q→%q", rev[i-1], rev[i])
		}
		rels = append(rels, rel)
	}

	return Path{Entities: rev, Relations: rels}, nil
}

// between picks the relation from→to with the lowest metric.
func (s *State) between(from, to string) *core.Relation {
	var best *core.Relation
	var bestM float64
	for _, rel := range s.outgoing[from] {
		if rel.To != to {
			continue
		}
		m := s.cfg.Metric(rel)
		if best == nil || m < bestM {
			best, bestM = rel, m
		}
	}
	return best
}

// Result assembles a PathResult routed to dest. length measures the
// reconstructed path. When routed is false the path stays empty and only
// Visited is filled.
func (s *State) Result(start, dest string, routed bool, length func(Path) float64) (*core.PathResult, error) {
	res := core.EmptyPathResult()
	res.Visited = s.Settled()
	if !routed {
		return res, nil
	}

	p, err := s.Reconstruct(dest)
	if err != nil {
		return res, err
	}
	if len(p.Entities) == 0 || p.Entities[0] != start {
		return res, fmt.Errorf("search: back-pointers from %q do not lead to %q", dest, start)
	}
	res.Path = p.Entities
	res.RelationsUsed = p.RelationIDs()
	res.Cost = p.Cost()
	res.Length = length(p)
	res.Destination = dest

	return res, nil
}
