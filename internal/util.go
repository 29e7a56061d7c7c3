package internal

import "fmt"

// Largest coordinate magnitude the predicates accept. Differences of two
// coordinates then fit in 32 bits, so each product in SignedArea fits in 62
// bits and the difference of two products cannot overflow an int64.
const MaxCoordinate = 1<<30 - 1

func (p *Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p *Point) Equals(other *Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Points compare lexicographically by Y and then X, so that "lower" is well
// defined even when Y values are equal.
func (p *Point) Below(otherPoint *Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p *Point) InRange() bool {
	return inRange(p.X) && inRange(p.Y)
}

// Not written with an absolute value, which overflows for math.MinInt64.
func inRange(v int64) bool {
	return -MaxCoordinate <= v && v <= MaxCoordinate
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

// The element just below the top of the stack, or nil.
func (s *PointStack) Second() *Point {
	if len(*s) < 2 {
		return nil
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (set PointSet) Add(p *Point) {
	set[*p] = struct{}{}
}

func (set PointSet) Contains(p *Point) bool {
	_, ok := set[*p]
	return ok
}
