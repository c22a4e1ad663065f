// Package neighbourhood extracts the sub-graph around an entity.
//
// Neighbourhood(r, e, d, dir) keeps e plus every entity whose breadth-first
// depth from e is exactly d, and only the relations joining e to one of
// those entities (in either orientation). With d == 1 this is e with its
// direct adjacency; with d == 0 it is e alone.
//
// Neighbourhoods(r, dir) returns the depth-1 neighbourhood of every entity
// in ascending ID order. Adjacency is derived once and shared; WithWorkers
// spreads the extraction over a bounded errgroup while keeping the order.
package neighbourhood
