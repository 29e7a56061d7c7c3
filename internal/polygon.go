package internal

// A closed polygon, counterclockwise. The last point connects back to the
// first.
type Polygon struct {
	Points []*Point
}

// Inside or on the boundary of a convex counterclockwise polygon. For a
// polygon of one or two points (a degenerate hull), this checks the point or
// the segment.
func (poly Polygon) ContainsPoint(p *Point) bool {
	n := len(poly.Points)
	switch n {
	case 0:
		return false
	case 1:
		return poly.Points[0].Equals(p)
	case 2:
		return Segment{poly.Points[0], poly.Points[1]}.Contains(p)
	}
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, n)]
		if SignedArea(vertex, nextVertex, p) < 0 {
			return false
		}
	}
	return true
}

// Every consecutive triple, wrapping around, makes a strict left turn.
func (poly Polygon) IsStrictlyConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i := range poly.Points {
		a := poly.Points[i]
		b := poly.Points[CircularIndex(i+1, n)]
		c := poly.Points[CircularIndex(i+2, n)]
		if !Left(a, b, c) {
			return false
		}
	}
	return true
}

// Twice the signed area, by the shoelace formula. Positive for a
// counterclockwise polygon.
func (poly Polygon) Area2() int64 {
	var area int64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.X*next.Y - next.X*p.Y
	}
	return area
}

func (poly Polygon) IsCCW() bool {
	return poly.Area2() > 0
}

// Whether p lies on the closed segment.
func (s Segment) Contains(p *Point) bool {
	if !Collinear(s.Start, s.End, p) {
		return false
	}
	return between(s.Start.X, s.End.X, p.X) && between(s.Start.Y, s.End.Y, p.Y)
}

func between(a, b, v int64) bool {
	if a > b {
		a, b = b, a
	}
	return a <= v && v <= b
}
