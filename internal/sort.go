package internal

import "sort"

// Orders points counterclockwise by polar angle around the pivot. The pivot is
// carried by the value, so concurrent builds never share it.
type angularOrder struct {
	pivot *Point
}

// Reports whether p1 sorts before p2.
//
// Points on the same ray from the pivot sort far to near. The sweep relies on
// this: the farthest point of a ray is seen first, and the nearer ones are
// then discarded as non-left turns.
func (o angularOrder) Less(p1, p2 *Point) bool {
	pivot := o.pivot
	if Collinear(p1, pivot, p2) {
		// Opposite rays only happen with PivotFirstLowest, where both points sit
		// on the pivot's horizontal line. The one to the right is at angle 0.
		if dot(p1, pivot, p2) < 0 {
			return p1.X > pivot.X
		}
		return DistanceSquared(pivot, p1) > DistanceSquared(pivot, p2)
	}
	// If p2 is to the right of the line from p1 to the pivot, p1 has the
	// smaller angle.
	return SignedArea(p1, pivot, p2) < 0
}

// Dot product of p1-origin and p2-origin.
func dot(p1, origin, p2 *Point) int64 {
	return (p1.X-origin.X)*(p2.X-origin.X) + (p1.Y-origin.Y)*(p2.Y-origin.Y)
}

// Sort the points in place by angle around the pivot. The pivot itself must
// not be among them.
func SortByAngle(pivot *Point, points []*Point) {
	order := angularOrder{pivot}
	sort.SliceStable(points, func(i, j int) bool {
		return order.Less(points[i], points[j])
	})
}
