// Package dijkstra provides point-to-point Dijkstra search over the
// entity/relation graph of package core.
//
// Overview:
//
//   - Dijkstra(r, start, end) settles entities in order of accumulated
//     relation weight until end is settled or the frontier empties.
//   - The frontier is a min-heap with lazy decrease-key; equal costs pop in
//     the order entities were admitted, so results are reproducible.
//   - The route is rebuilt iteratively from back-pointers. When several
//     relations join two consecutive entities, the one with the shortest
//     curve (or lowest weight without a curve) is reported.
//
// Result semantics:
//
//   - Length is the hop count, not a geometric length.
//   - Cost sums the weights of the reported relations.
//   - Visited is the settled set; with Reached == false it tells how much of
//     the graph is reachable from start.
//
// Failure policy:
//
//	invalid input          → error on the sink, empty result, sentinel error
//	unreachable end        → warning on the sink, Reached == false, nil error
//	malformed relation     → core.ErrMalformedRelation, call aborted
//	budget / cancellation  → partial result with ErrIterationBudget / ctx error
//
// Every call owns its search state; concurrent calls on one graph are safe.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, "A", "D", dijkstra.WithSink(rec))
//	if err != nil { ... }
//	if !res.Reached { ... }
//	fmt.Println(res.Path, res.Cost)
package dijkstra
