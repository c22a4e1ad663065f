// Package components decomposes an entity/relation graph into its maximal
// weakly-connected sub-graphs.
//
// What
//
//   - Partition(r, dir) returns the member IDs of every component.
//   - SubGraphs(r, dir) materializes each component as a fresh core.Graph
//     holding its entities and every relation whose endpoints both belong.
//   - Largest(r, dir) returns the component with the most entities.
//
// How
//
//	Adjacency is derived once for dir. Unassigned entities are taken as
//	seeds in ascending ID order; each seed runs an iterative depth-first
//	reachability walk. Reaching an entity claimed by an earlier seed merges
//	the two components through a disjoint-set forest, so the result is the
//	unique weak-component partition whatever the direction.
//
// Determinism
//
//	Components are ordered by their smallest entity ID, members are sorted,
//	and relations keep source order.
//
// Complexity (V = |entities|, R = |relations|)
//
//   - Time:   O(V log V + R α(V))
//   - Memory: O(V + R)
package components
