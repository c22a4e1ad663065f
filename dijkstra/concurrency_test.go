package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/diag"
	"github.com/katalvlaran/relgraph/dijkstra"
)

// TestReentrant runs many searches on one graph at once; each must see its
// own state. Run with -race.
func TestReentrant(t *testing.T) {
	const n = 30
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEntity(fmt.Sprintf("n%02d", i), nil))
	}
	for i := 1; i < n; i++ {
		_, err := g.AddRelation(fmt.Sprintf("n%02d", i-1), fmt.Sprintf("n%02d", i), 1)
		require.NoError(t, err)
	}

	var eg errgroup.Group
	for i := 1; i < n; i++ {
		end := fmt.Sprintf("n%02d", i)
		want := float64(i)
		eg.Go(func() error {
			res, err := dijkstra.Dijkstra(g, "n00", end, dijkstra.WithSink(diag.Nop{}))
			if err != nil {
				return err
			}
			if res.Cost != want || len(res.Path) != i+1 {
				return fmt.Errorf("%s: cost %v path %v", end, res.Cost, res.Path)
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
