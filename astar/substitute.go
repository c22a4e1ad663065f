package astar

import (
	"github.com/tidwall/rtree"

	"github.com/katalvlaran/relgraph/geom"
)

// closestSettled returns the entity among settled (in settle order) whose
// position is nearest to target; ties go to the earliest settled. Entities
// without a position are skipped. ok is false when none qualifies.
func closestSettled(settled []string, positions map[string]geom.Point, target geom.Point) (string, bool) {
	var tr rtree.RTreeG[int]
	for i, id := range settled {
		p, ok := positions[id]
		if !ok {
			continue
		}
		pt := [2]float64{p.X, p.Y}
		tr.Insert(pt, pt, i)
	}
	if tr.Len() == 0 {
		return "", false
	}

	// Nodes are ranked by planar box distance, items by full 3D distance;
	// the planar term never exceeds the 3D one, so the walk stays ordered.
	tgt := [2]float64{target.X, target.Y}
	dist := rtree.BoxDist[float64, int](tgt, tgt, func(_, _ [2]float64, i int) float64 {
		return geom.DistanceSq(positions[settled[i]], target)
	})

	best, bestDist := -1, 0.0
	tr.Nearby(dist, func(_, _ [2]float64, i int, d float64) bool {
		switch {
		case best < 0:
			best, bestDist = i, d
		case d > bestDist:
			return false
		case i < best:
			best = i
		}
		return true
	})

	return settled[best], true
}
