// Package relgraph is a traversal and shortest-path toolkit for
// entity/relation graphs such as building and engineering models, where
// entities are opaque objects (walls, spaces, openings) and relations are
// weighted, directed links that may carry geometry.
//
// What is in the box?
//
//	core/           Entity, Relation, Graph, the Reader interface, adjacency
//	                per Direction, supporting queries, induced sub-graphs
//	bfs/            breadth-first depth labelling and level layering
//	components/     weakly-connected component partitioning
//	neighbourhood/  fixed-depth neighbourhood extraction, single or batch
//	dijkstra/       point-to-point Dijkstra with deterministic tie-breaks
//	astar/          geometry-guided search with Dijkstra fallback and
//	                closest-reachable substitution
//	geom/           the points, curves and Positioned contract consumed
//	diag/           diagnostics sinks (slog, in-memory recorder, fan-out)
//
// Guarantees
//
//   - Every entry point builds its working state per call; concurrent calls
//     on one graph are safe and never observe each other.
//   - Iteration order is fixed: sorted entity IDs, relation insertion order,
//     and admission order inside search frontiers.
//   - Invalid input never panics. It is reported on the diagnostics sink
//     and returned as a sentinel error next to an empty result.
//
// Observability
//
//	Each call opens an OpenTelemetry span and updates Prometheus collectors
//	(relgraph_search_total, relgraph_search_visited,
//	relgraph_astar_fallback_total, relgraph_partition_components,
//	relgraph_diagnostics_total, relgraph_operation_duration_seconds).
//	Diagnostics default to log/slog.
//
// Quick start
//
//	g := core.NewGraph()
//	_ = g.AddEntity("lobby", geom.At(geom.Pt(0, 0)))
//	_ = g.AddEntity("office", geom.At(geom.Pt(8, 3)))
//	_, _ = g.AddRelation("lobby", "office", 9)
//
//	res, err := astar.AStar(g, "lobby", "office")
//
// See examples/ for a runnable floor-plan walkthrough.
package relgraph
