// Package bfs computes breadth-first depth labels over a core.AdjacencyMap.
//
// What
//
//   - Depth(adj, start) returns map[id]hops for every entity reachable from
//     start; depth[start] == 0 and unreached entities are absent.
//   - Walk(adj, start) additionally returns visit Order and BFS-tree Parent
//     links, with Result.PathTo for hop-path reconstruction.
//   - DepthFrom(r, start, dir) derives the adjacency first.
//   - Layers(depth) groups a labelling into sorted levels.
//
// Determinism
//
//	Neighbours are expanded in ascending ID order (AdjacencyMap.Neighbours),
//	so Order and Parent are reproducible across runs.
//
// Errors
//
//	A start that is not an adjacency key is reported on the diagnostics sink
//	and returned as ErrStartNotFound with an empty labelling. Negative
//	WithMaxDepth yields ErrOptionViolation.
//
// Complexity (V = |entities|, A = Σ|neighbour sets|)
//
//   - Time:   O(V + A log A) including neighbour sorting
//   - Memory: O(V)
//
// Usage
//
//	adj, _ := core.Adjacency(g, core.Forwards)
//	depth, err := bfs.Depth(adj, "slab-1", bfs.WithMaxDepth(2))
package bfs
