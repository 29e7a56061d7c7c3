package internal

// Graham scan. The pivot (lowest point) is always on the hull. Every other
// point is sorted by angle around it, and then swept in that order while a
// stack holds the hull of everything seen so far. A point that does not make a
// strict left turn with the top two stack entries proves the top entry is not
// on the hull, so it's popped.
//
// Each point is pushed once and popped at most once, so the sweep is linear and
// the whole thing is dominated by the O(nlog(n)) sort.

// Builds convex hulls. The zero value uses PivotLowestLeftmost. A Builder holds
// no per-call state, so one can be shared between goroutines.
type Builder struct {
	Pivot PivotRule
}

// The default tie-break is PivotLowestLeftmost, not the input order based
// PivotFirstLowest.
func NewBuilder() *Builder {
	return &Builder{Pivot: PivotLowestLeftmost}
}

// Compute the convex hull of the points, counterclockwise, starting at the
// pivot. The hull is made of the input pointers; the input slice itself is not
// reordered.
//
// With three points or fewer, every point is on the hull, and they are
// returned in input order, unchanged. Otherwise exact duplicates are dropped
// before the scan. If the remaining points are all collinear, the result is
// the two extreme points, lowest (by Point.Below) first.
//
// Panics with a *HullError on invalid input. Use HandleHullPanicRecover (or
// the public API) to convert this into an error.
func (b *Builder) Build(points []*Point) []*Point {
	validate(points)
	n := len(points)

	if n <= 3 {
		var result []*Point
		allocate("hull", n, func() { result = make([]*Point, n) })
		copy(result, points)
		return result
	}

	var working []*Point
	allocate("working copy", n, func() { working = make([]*Point, 0, n) })
	working = appendUnique(working, points)

	pivotIndex := FindPivot(working, b.Pivot)
	working[0], working[pivotIndex] = working[pivotIndex], working[0]
	pivot := working[0]
	SortByAngle(pivot, working[1:])

	// Duplicates can leave too few points to sweep.
	if len(working) == 1 {
		return working
	}

	// When everything is on one line (or only two distinct points are left),
	// the hull is the segment between the two extremes. With PivotFirstLowest
	// the pivot can sit in the middle of that line, with points on both of its
	// sides, which the sweep cannot handle.
	if allCollinear(working) {
		return extremes(working)
	}

	var stack PointStack
	allocate("hull stack", n, func() { stack = make(PointStack, 0, len(working)) })
	return sweep(stack, working)
}

// Sweep the angularly sorted points, pivot first, and return the stack bottom
// to top.
func sweep(stack PointStack, sorted []*Point) []*Point {
	pivot := sorted[0]
	// Seed hull
	stack.Push(sorted[0])
	stack.Push(sorted[1])
	stack.Push(sorted[2])

	for _, p := range sorted[3:] {
		if Left(stack.Second(), stack.Peek(), p) {
			stack.Push(p)
			continue
		}
		// Keep the pivot and at least one other point; everything else that fails
		// to turn left toward p is inside the hull.
		for stack.Len() > 2 && !Left(stack.Second(), stack.Peek(), p) {
			stack.Pop()
		}
		stack.Push(p)
	}

	// Points on the last ray sort far to near, so the nearer ones are still on
	// the stack. Treat the pivot as the final point to close the hull.
	for stack.Len() > 2 && !Left(stack.Second(), stack.Peek(), pivot) {
		stack.Pop()
	}

	return []*Point(stack)
}

// The points are distinct, so points[0] and points[1] define the line.
func allCollinear(points []*Point) bool {
	for _, p := range points[2:] {
		if !Collinear(points[0], points[1], p) {
			return false
		}
	}
	return true
}

// The lowest and highest points, in Point.Below order.
func extremes(points []*Point) []*Point {
	lowest, highest := points[0], points[0]
	for _, p := range points[1:] {
		if p.Below(lowest) {
			lowest = p
		}
		if highest.Below(p) {
			highest = p
		}
	}
	return []*Point{lowest, highest}
}

func validate(points []*Point) {
	for i, p := range points {
		if p == nil {
			fatalf("point %d is nil", i)
		}
		if !p.InRange() {
			fatalf("point %d %v exceeds the coordinate limit of %d", i, p, MaxCoordinate)
		}
	}
}

// Append the points to dst, skipping any whose coordinates were already seen.
// The first occurrence wins.
func appendUnique(dst []*Point, points []*Point) []*Point {
	seen := make(PointSet, len(points))
	for _, p := range points {
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		dst = append(dst, p)
	}
	return dst
}
