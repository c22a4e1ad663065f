package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/diag"
	"github.com/katalvlaran/relgraph/dijkstra"
)

// ExampleDijkstra routes through a corridor instead of the expensive
// direct door.
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, id := range []string{"lobby", "corridor", "stair", "office"} {
		_ = g.AddEntity(id, nil)
	}
	_, _ = g.AddRelation("lobby", "corridor", 1)
	_, _ = g.AddRelation("corridor", "office", 1)
	_, _ = g.AddRelation("lobby", "stair", 5)
	_, _ = g.AddRelation("stair", "office", 1)

	res, err := dijkstra.Dijkstra(g, "lobby", "office", dijkstra.WithSink(diag.Nop{}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost, res.Length)

	// Output:
	// [lobby corridor office] 2 2
}
