package astar_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/relgraph/astar"
	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/diag"
	"github.com/katalvlaran/relgraph/geom"
)

// lattice builds an n×n positioned grid with unit relations in both
// orientations between horizontal and vertical neighbours.
func lattice(n int) *core.Graph {
	g := core.NewGraph()
	id := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			_ = g.AddEntity(id(x, y), geom.At(geom.Pt(float64(x), float64(y))))
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				_, _ = g.AddRelation(id(x, y), id(x+1, y), 1)
				_, _ = g.AddRelation(id(x+1, y), id(x, y), 1)
			}
			if y+1 < n {
				_, _ = g.AddRelation(id(x, y), id(x, y+1), 1)
				_, _ = g.AddRelation(id(x, y+1), id(x, y), 1)
			}
		}
	}
	return g
}

// BenchmarkAStar_Grid routes corner to corner on a 64×64 lattice with each
// priority key.
func BenchmarkAStar_Grid(b *testing.B) {
	const n = 64
	g := lattice(n)
	end := fmt.Sprintf("%d,%d", n-1, n-1)

	for _, p := range []astar.Priority{astar.PriorityCostMinusHeuristic, astar.PriorityCostPlusHeuristic} {
		b.Run(p.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(g.EntityCount() + g.RelationCount()))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = astar.AStar(g, "0,0", end, astar.WithPriority(p), astar.WithSink(diag.Nop{}))
			}
		})
	}
}

// BenchmarkAStar_Substitute measures the closest-settled lookup when the
// target sits on a detached island.
func BenchmarkAStar_Substitute(b *testing.B) {
	const n = 64
	g := lattice(n)
	_ = g.AddEntity("island", geom.At(geom.Pt(2*n, 2*n)))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = astar.AStar(g, "0,0", "island", astar.WithSink(diag.Nop{}))
	}
}
