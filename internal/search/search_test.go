package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/geom"
	"github.com/katalvlaran/relgraph/internal/search"
)

func build(t *testing.T, ids []string, rels ...[3]any) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddEntity(id, nil))
	}
	for _, r := range rels {
		_, err := g.AddRelation(r[0].(string), r[1].(string), r[2].(float64))
		require.NoError(t, err)
	}
	return g
}

func TestRunSettlesInCostOrder(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		[3]any{"A", "B", 1.0}, [3]any{"B", "D", 1.0}, [3]any{"A", "C", 5.0}, [3]any{"C", "D", 1.0})
	s := search.New(g, search.Config{})

	reached, err := s.Run(context.Background(), "A", "D")
	require.NoError(t, err)
	require.True(t, reached)
	require.Equal(t, []string{"A", "B", "D"}, s.SettledOrder())
	require.Equal(t, 2.0, s.Label("D").Cost)
	require.Equal(t, "B", s.Label("D").Prev)
	require.Equal(t, 1.0, s.Label("D").EdgeCost)

	p, err := s.Reconstruct("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, p.Entities)
	require.Equal(t, []string{"r1", "r2"}, p.RelationIDs())
	require.Equal(t, 2.0, p.Cost())
}

func TestTiesFollowAdmissionOrder(t *testing.T) {
	g := build(t, []string{"S", "X", "Y", "T"},
		[3]any{"S", "Y", 1.0}, [3]any{"S", "X", 1.0}, [3]any{"X", "T", 1.0}, [3]any{"Y", "T", 1.0})
	s := search.New(g, search.Config{})
	_, err := s.Run(context.Background(), "S", "T")
	require.NoError(t, err)
	// Y admitted before X, so Y settles first and claims T.
	require.Equal(t, []string{"S", "Y", "X", "T"}, s.SettledOrder())
	require.Equal(t, "Y", s.Label("T").Prev)
}

func TestReconstructPicksShortestParallel(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEntity("A", nil))
	require.NoError(t, g.AddEntity("B", nil))
	_, _ = g.AddRelation("A", "B", 1, core.WithCurve(geom.Line{B: geom.Pt(4, 0)}))
	_, _ = g.AddRelation("A", "B", 1, core.WithCurve(geom.Line{B: geom.Pt(2, 0)}))
	_, _ = g.AddRelation("A", "B", 1, core.WithCurve(geom.Line{B: geom.Pt(0, 2)}))

	s := search.New(g, search.Config{Metric: func(r *core.Relation) float64 { return r.Curve.Length() }})
	_, err := s.Run(context.Background(), "A", "B")
	require.NoError(t, err)
	p, err := s.Reconstruct("B")
	require.NoError(t, err)
	require.Equal(t, []string{"r2"}, p.RelationIDs())
	require.InDelta(t, 2.0, p.Measure(func(r *core.Relation) float64 { return r.Curve.Length() }), 1e-12)
}

func TestUnreachedAndStartOnly(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [3]any{"A", "B", 1.0})
	s := search.New(g, search.Config{})
	reached, err := s.Run(context.Background(), "A", "C")
	require.NoError(t, err)
	require.False(t, reached)
	require.ElementsMatch(t, []string{"A", "B"}, s.Settled().ToSlice())

	p, err := s.Reconstruct("C")
	require.NoError(t, err)
	require.Empty(t, p.Entities)

	s = search.New(g, search.Config{})
	reached, err = s.Run(context.Background(), "A", "A")
	require.NoError(t, err)
	require.True(t, reached)
	p, err = s.Reconstruct("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, p.Entities)
	require.Empty(t, p.Relations)
}

func TestBudgetAndCancel(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [3]any{"A", "B", 1.0}, [3]any{"B", "C", 1.0})

	s := search.New(g, search.Config{MaxIterations: 1})
	_, err := s.Run(context.Background(), "A", "C")
	require.ErrorIs(t, err, search.ErrBudgetExhausted)
	require.Equal(t, 1, s.Iterations())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.New(g, search.Config{}).Run(ctx, "A", "C")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCustomPriority(t *testing.T) {
	g := build(t, []string{"S", "near", "far", "T"},
		[3]any{"S", "near", 1.0}, [3]any{"S", "far", 2.0}, [3]any{"far", "T", 1.0}, [3]any{"near", "T", 5.0})
	s := search.New(g, search.Config{Priority: func(l *search.Label) float64 { return l.Cost - l.Heuristic }})
	s.SetHeuristic("far", 10)
	_, err := s.Run(context.Background(), "S", "T")
	require.NoError(t, err)
	// far's key 2-10 beats near's key 1-0
	require.Equal(t, "far", s.SettledOrder()[1])
}
