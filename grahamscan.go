// Convex hulls of integer point sets, by Graham scan.
//
// The hull comes back counterclockwise, starting at the lowest point, and is
// made of the caller's own point pointers. Coordinates must be within
// MaxCoordinate so that the orientation predicates stay exact in 64 bit
// arithmetic.
package grahamscan

import "github.com/osuushi/grahamscan/internal"

type Point = internal.Point
type Polygon = internal.Polygon
type Builder = internal.Builder
type PivotRule = internal.PivotRule

const (
	PivotLowestLeftmost = internal.PivotLowestLeftmost
	PivotFirstLowest    = internal.PivotFirstLowest
)

const MaxCoordinate = internal.MaxCoordinate

var (
	ErrInvalidInput      = internal.ErrInvalidInput
	ErrAllocationFailure = internal.ErrAllocationFailure
)

// Compute the convex hull of a set of points.
//
// Three points or fewer are returned as given. Otherwise the result starts at
// the lowest point (leftmost among ties) and winds counterclockwise, with no
// three consecutive vertices collinear. When every input point lies on one
// line, the result is its two endpoints, lowest first. The final edge back to
// the first vertex is implied.
//
// Ties for the lowest point go to the leftmost one (PivotLowestLeftmost). This
// is not the classic convention of taking the first lowest point in input
// order; for that, use ConvexHullWith and a Builder with PivotFirstLowest.
//
// Errors wrap ErrInvalidInput for nil points or out of range coordinates.
func ConvexHull(points ...*Point) ([]*Point, error) {
	return ConvexHullWith(internal.NewBuilder(), points)
}

// Like ConvexHull, but with an explicitly configured builder.
func ConvexHullWith(builder *Builder, points []*Point) (result []*Point, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return builder.Build(points), nil
}

func NewBuilder() *Builder {
	return internal.NewBuilder()
}

func ParsePivotRule(name string) (PivotRule, error) {
	return internal.ParsePivotRule(name)
}
