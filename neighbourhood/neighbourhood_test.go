package neighbourhood_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/diag"
	"github.com/katalvlaran/relgraph/neighbourhood"
)

// star builds hub→a, hub→b, c→hub, a→x, x→y, a→b.
func star(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"hub", "a", "b", "c", "x", "y"} {
		require.NoError(t, g.AddEntity(id, nil))
	}
	for _, e := range [][2]string{{"hub", "a"}, {"hub", "b"}, {"c", "hub"}, {"a", "x"}, {"x", "y"}, {"a", "b"}} {
		_, err := g.AddRelation(e[0], e[1], 1)
		require.NoError(t, err)
	}
	return g
}

func quiet() neighbourhood.Option { return neighbourhood.WithSink(diag.Nop{}) }

func TestDepthOneRoundTrip(t *testing.T) {
	g := star(t)
	for _, dir := range []core.Direction{core.Forwards, core.Backwards, core.Both} {
		adj, err := core.Adjacency(g, dir)
		require.NoError(t, err)
		for _, id := range g.EntityIDs() {
			sg, err := neighbourhood.Neighbourhood(g, id, 1, dir, quiet())
			require.NoError(t, err)

			want := adj[id].Clone()
			want.Add(id)
			require.True(t, want.Equal(mapset.NewThreadUnsafeSet(sg.EntityIDs()...)), "%s %s", id, dir)
		}
	}
}

func TestRelationsJoinTheEntity(t *testing.T) {
	sg, err := neighbourhood.Neighbourhood(star(t), "hub", 1, core.Both, quiet())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "hub"}, sg.EntityIDs())

	// a→b is between two members but does not touch hub
	var pairs []string
	for _, rel := range sg.Relations() {
		pairs = append(pairs, rel.From+">"+rel.To)
	}
	require.Equal(t, []string{"hub>a", "hub>b", "c>hub"}, pairs)
}

func TestExactDepth(t *testing.T) {
	g := star(t)
	sg, err := neighbourhood.Neighbourhood(g, "hub", 2, core.Forwards, quiet())
	require.NoError(t, err)
	require.Equal(t, []string{"hub", "x"}, sg.EntityIDs())
	require.Zero(t, sg.RelationCount())

	sg, err = neighbourhood.Neighbourhood(g, "hub", 0, core.Forwards, quiet())
	require.NoError(t, err)
	require.Equal(t, []string{"hub"}, sg.EntityIDs())

	sg, err = neighbourhood.Neighbourhood(g, "hub", 9, core.Forwards, quiet())
	require.NoError(t, err)
	require.Equal(t, []string{"hub"}, sg.EntityIDs())
}

func TestNeighbourhoodErrors(t *testing.T) {
	rec := diag.NewRecorder()
	sink := neighbourhood.WithSink(rec)

	_, err := neighbourhood.Neighbourhood(nil, "hub", 1, core.Forwards, sink)
	require.ErrorIs(t, err, neighbourhood.ErrNilGraph)
	_, err = neighbourhood.Neighbourhood(star(t), "hub", -1, core.Forwards, sink)
	require.ErrorIs(t, err, neighbourhood.ErrNegativeDepth)
	_, err = neighbourhood.Neighbourhood(star(t), "nope", 1, core.Forwards, sink)
	require.ErrorIs(t, err, neighbourhood.ErrEntityNotFound)
	require.Len(t, rec.Errors(), 3)

	_, err = neighbourhood.Neighbourhoods(star(t), core.Both, neighbourhood.WithWorkers(0))
	require.ErrorIs(t, err, neighbourhood.ErrOptionViolation)
	_, err = neighbourhood.Neighbourhoods(nil, core.Both, sink)
	require.ErrorIs(t, err, neighbourhood.ErrNilGraph)
}

// malformed exposes a relation whose target is not an entity.
type malformed struct{ *core.Graph }

func (m malformed) Relations() []*core.Relation {
	return append(m.Graph.Relations(), &core.Relation{ID: "bad", From: "hub", To: "ghost"})
}

func TestMalformedRelationFailsFast(t *testing.T) {
	rec := diag.NewRecorder()
	sg, err := neighbourhood.Neighbourhood(malformed{star(t)}, "hub", 1, core.Forwards, neighbourhood.WithSink(rec))
	require.ErrorIs(t, err, core.ErrMalformedRelation)
	require.Nil(t, sg)
	require.Len(t, rec.Errors(), 1)

	_, err = neighbourhood.Neighbourhoods(malformed{star(t)}, core.Both, neighbourhood.WithSink(rec))
	require.ErrorIs(t, err, core.ErrMalformedRelation)
	require.Len(t, rec.Errors(), 2)
}

func TestNeighbourhoodsMatchSingleCalls(t *testing.T) {
	g := star(t)
	for _, workers := range []int{1, 4} {
		all, err := neighbourhood.Neighbourhoods(g, core.Both, quiet(), neighbourhood.WithWorkers(workers))
		require.NoError(t, err)
		ids := g.EntityIDs()
		require.Len(t, all, len(ids))
		for i, id := range ids {
			one, err := neighbourhood.Neighbourhood(g, id, 1, core.Both, quiet())
			require.NoError(t, err)
			require.Equal(t, one.EntityIDs(), all[i].EntityIDs(), id)
			require.Equal(t, one.Relations(), all[i].Relations(), id)
		}
	}
}
