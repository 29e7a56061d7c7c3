package internal

// Orientation predicates. All of these are exact as long as the coordinates
// involved are within MaxCoordinate.

// Twice the signed area of triangle abc. Positive if c is strictly left of the
// directed line a->b, negative if it is strictly right, and zero if the three
// points are collinear.
func SignedArea(a, b, c *Point) int64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

func Collinear(p, q, r *Point) bool {
	return SignedArea(p, q, r) == 0
}

// Strict: collinear points are not "left".
func Left(a, b, c *Point) bool {
	return SignedArea(a, b, c) > 0
}

// Squared euclidean distance. We never need the actual distance, and this keeps
// everything in integer arithmetic.
func DistanceSquared(p, q *Point) int64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
