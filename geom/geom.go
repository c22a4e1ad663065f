package geom

import "math"

// Point is a location in 3D model space. Planar models leave Z at zero.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for a planar Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the straight-line distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(DistanceSq(a, b))
}

// DistanceSq returns the squared straight-line distance between a and b.
func DistanceSq(a, b Point) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// Curve is any geometry attached to a relation whose length can be measured.
type Curve interface {
	// Length returns the arc length of the curve. Must be non-negative.
	Length() float64
}

// Positioned is implemented by entity payloads that occupy a location.
// ok == false means the payload has no usable position.
type Positioned interface {
	Position() (p Point, ok bool)
}

// Line is a straight segment from A to B.
type Line struct {
	A, B Point
}

// Length implements Curve.
func (l Line) Length() float64 { return Distance(l.A, l.B) }

// Polyline is an open chain of segments through its vertices in order.
type Polyline []Point

// Length implements Curve. Fewer than two vertices yield zero.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += Distance(pl[i-1], pl[i])
	}
	return total
}

// At is a Positioned value fixed at a point. It is handy as an entity
// payload when the caller has nothing but a location to attach.
type At Point

// Position implements Positioned.
func (a At) Position() (Point, bool) { return Point(a), true }
