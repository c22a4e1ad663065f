// Package astar provides a geometry-aware shortest-path search over the
// entity/relation graph of package core, degrading to Dijkstra when the
// graph carries no spatial data.
//
// Pipeline:
//
//  1. Project the graph (Projector). The default PayloadProjector places an
//     entity when its payload implements geom.Positioned and measures a
//     relation by its curve, or by the straight line between its endpoints.
//  2. If nothing could be projected, or start/end have no position, record
//     a warning and return dijkstra.Dijkstra on the unprojected graph with
//     Fallback set.
//  3. Precompute h(e) = straight-line distance from e to end, then run the
//     label-setting search on relation weights with the frontier keyed by
//     the configured Priority.
//  4. If end was never settled, substitute the settled entity closest to
//     end (nearest-neighbour query over an R-tree of settled positions),
//     record a warning, and route to it instead.
//
// Priority:
//
//	PriorityCostMinusHeuristic (default) keys the frontier by g − h. This is
//	the documented behaviour of this engine and does not guarantee optimal
//	routes. PriorityCostPlusHeuristic selects the classic admissible g + h.
//
// Result:
//
//	Length sums the projected relation lengths; Cost sums relation weights.
//	Parallel relations are reported by shortest projected length, first in
//	relation order on ties.
package astar
