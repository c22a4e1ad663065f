// Package geom holds the small set of geometric primitives the graph
// engines consume from a domain model: points in space, curves with a
// measurable length, and the Positioned interface through which an entity
// payload exposes its location.
//
// The package does not attempt to be a geometry kernel. Anything richer
// (planes, projections, tessellation) belongs to the owning application,
// which only has to satisfy Curve and Positioned to take part in spatial
// shortest-path search.
package geom
