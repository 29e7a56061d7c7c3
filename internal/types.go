package internal

type Point struct {
	X int64
	Y int64
}

// Note that all points handed to the builder are pointers, and the hull is
// built out of those same pointers. Callers can use hull vertices as keys into
// their own data. We never modify a point value from the input.

type Segment struct {
	Start *Point
	End   *Point
}

type PointStack []*Point

// Points are compared by value for geometry, so sets are keyed by value too.
type PointSet map[Point]struct{}
