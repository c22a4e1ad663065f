package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/diag"
	"github.com/katalvlaran/relgraph/dijkstra"
	"github.com/katalvlaran/relgraph/geom"
)

type DijkstraSuite struct {
	suite.Suite
	g   *core.Graph
	rec *diag.Recorder
}

func TestDijkstraSuite(t *testing.T) {
	suite.Run(t, new(DijkstraSuite))
}

// SetupTest builds A→B(1) B→D(1) A→C(5) C→D(1).
func (s *DijkstraSuite) SetupTest() {
	s.g = core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		s.Require().NoError(s.g.AddEntity(id, nil))
	}
	s.rel("A", "B", 1, "ab")
	s.rel("B", "D", 1, "bd")
	s.rel("A", "C", 5, "ac")
	s.rel("C", "D", 1, "cd")
	s.rec = diag.NewRecorder()
}

func (s *DijkstraSuite) rel(from, to string, w float64, id string, opts ...core.RelationOption) {
	_, err := s.g.AddRelation(from, to, w, append(opts, core.WithRelationID(id))...)
	s.Require().NoError(err)
}

func (s *DijkstraSuite) run(start, end string, opts ...dijkstra.Option) (*core.PathResult, error) {
	return dijkstra.Dijkstra(s.g, start, end, append([]dijkstra.Option{dijkstra.WithSink(s.rec)}, opts...)...)
}

func (s *DijkstraSuite) TestOptimality() {
	res, err := s.run("A", "D")
	s.Require().NoError(err)
	s.True(res.Reached)
	s.Equal([]string{"A", "B", "D"}, res.Path)
	s.Equal([]string{"ab", "bd"}, res.RelationsUsed)
	s.Equal(2.0, res.Cost)
	s.Equal(2.0, res.Length)
	s.Equal(2, res.Hops())
	s.Equal("D", res.Destination)
	s.Empty(s.rec.Warnings())
	s.Empty(s.rec.Errors())
}

func (s *DijkstraSuite) TestPartialPath() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		s.Require().NoError(g.AddEntity(id, nil))
	}
	_, _ = g.AddRelation("A", "B", 1)
	_, _ = g.AddRelation("A", "C", 5)

	res, err := dijkstra.Dijkstra(g, "A", "D", dijkstra.WithSink(s.rec))
	s.Require().NoError(err)
	s.False(res.Reached)
	s.NotContains(res.Path, "D")
	s.Equal([]string{"A", "B", "C"}, res.VisitedIDs())
	s.Len(s.rec.Warnings(), 1)
	s.Contains(s.rec.Warnings()[0], "unreachable")
}

func (s *DijkstraSuite) TestStartEqualsEnd() {
	res, err := s.run("B", "B")
	s.Require().NoError(err)
	s.True(res.Reached)
	s.Equal([]string{"B"}, res.Path)
	s.Empty(res.RelationsUsed)
	s.Zero(res.Cost)
}

func (s *DijkstraSuite) TestDirectedness() {
	res, err := s.run("D", "A")
	s.Require().NoError(err)
	s.False(res.Reached)
	s.Equal([]string{"D"}, res.VisitedIDs())
}

func (s *DijkstraSuite) TestParallelRelationTieBreak() {
	// equal weights, so the reported relation is chosen by geometry
	s.rel("A", "B", 1, "ab-long", core.WithCurve(geom.Line{B: geom.Pt(10, 0)}))
	s.rel("A", "B", 1, "ab-short", core.WithCurve(geom.Line{B: geom.Pt(0.5, 0)}))
	res, err := s.run("A", "B")
	s.Require().NoError(err)
	// "ab" has no curve: metric is its weight 1; "ab-short" measures 0.5
	s.Equal([]string{"ab-short"}, res.RelationsUsed)
}

func (s *DijkstraSuite) TestParallelTiesResolveToFirst() {
	s.rel("B", "D", 1, "bd-2")
	res, err := s.run("A", "D")
	s.Require().NoError(err)
	s.Equal([]string{"ab", "bd"}, res.RelationsUsed)
}

func (s *DijkstraSuite) TestInvalidInput() {
	res, err := dijkstra.Dijkstra(nil, "A", "D", dijkstra.WithSink(s.rec))
	s.ErrorIs(err, dijkstra.ErrNilGraph)
	s.Empty(res.Path)

	_, err = s.run("", "D")
	s.ErrorIs(err, dijkstra.ErrEmptyEndpoint)

	_, err = s.run("A", "Z")
	s.ErrorIs(err, dijkstra.ErrEntityNotFound)

	s.Len(s.rec.Errors(), 3)

	_, err = s.run("A", "D", dijkstra.WithMaxIterations(-1))
	s.ErrorIs(err, dijkstra.ErrOptionViolation)
}

func (s *DijkstraSuite) TestBudgetAndCancel() {
	res, err := s.run("A", "D", dijkstra.WithMaxIterations(1))
	s.ErrorIs(err, dijkstra.ErrIterationBudget)
	s.False(res.Reached)
	s.Equal([]string{"A"}, res.VisitedIDs())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.run("A", "D", dijkstra.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

// malformed exposes a relation whose target is not an entity.
type malformed struct{ *core.Graph }

func (m malformed) Relations() []*core.Relation {
	return append(m.Graph.Relations(), &core.Relation{ID: "bad", From: "A", To: "ghost"})
}

func TestMalformedRelationFailsFast(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEntity("A", nil))
	require.NoError(t, g.AddEntity("B", nil))

	rec := diag.NewRecorder()
	_, err := dijkstra.Dijkstra(malformed{g}, "A", "B", dijkstra.WithSink(rec))
	require.ErrorIs(t, err, core.ErrMalformedRelation)
	require.Len(t, rec.Errors(), 1)
}
