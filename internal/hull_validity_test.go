package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull built with the given pivot rule is valid for a
// point set. The rules are:
// 1. Every hull vertex is one of the input pointers, and none repeats.
// 2. If the points are all collinear, the hull is the two extremes (or the
//    single point), lowest first.
// 3. Otherwise the hull starts at the pivot the rule picks, has positive area,
//    and every consecutive triple, wrapping around, makes a strict left turn.
//    With PivotFirstLowest the pivot may be a collinear vertex, so only a
//    right turn is rejected there.
// 4. Every input point is inside or on the boundary of the hull.
func AssertValidHull(t *testing.T, rule PivotRule, points []*Point, hull []*Point) {
	t.Helper()
	if len(points) <= 3 {
		require.Equal(t, points, hull, "three points or fewer must come back unchanged")
		return
	}

	inputs := make(map[*Point]struct{}, len(points))
	for _, p := range points {
		inputs[p] = struct{}{}
	}
	seen := make(PointSet)
	for _, p := range hull {
		_, ok := inputs[p]
		require.True(t, ok, "hull vertex %v is not an input pointer", p)
		require.False(t, seen.Contains(p), "hull vertex %v repeats\n%# v", p, pretty.Formatter(hull))
		seen.Add(p)
	}
	require.NotEmpty(t, hull)

	poly := Polygon{Points: hull}
	unique := appendUnique(nil, points)
	if len(unique) < 3 || allCollinear(unique) {
		require.LessOrEqual(t, len(hull), 2, "degenerate hull should be a segment:\n%# v", pretty.Formatter(hull))
		for _, p := range points {
			require.False(t, p.Below(hull[0]), "hull starts at %v, but %v is lower", hull[0], p)
			require.False(t, hull[len(hull)-1].Below(p), "hull ends at %v, but %v is higher", hull[len(hull)-1], p)
		}
	} else {
		pivot := points[FindPivot(points, rule)]
		require.Same(t, pivot, hull[0], "hull starts at %v, not at the pivot %v", hull[0], pivot)
		require.True(t, poly.IsCCW(), "hull is not counterclockwise:\n%# v", pretty.Formatter(hull))

		n := len(hull)
		for i := range hull {
			prev := hull[CircularIndex(i-1, n)]
			next := hull[CircularIndex(i+1, n)]
			area := SignedArea(prev, hull[i], next)
			if i == 0 && rule == PivotFirstLowest {
				require.GreaterOrEqual(t, area, int64(0), "right turn at the pivot:\n%# v", pretty.Formatter(hull))
			} else {
				require.Greater(t, area, int64(0), "no strict left turn at %v:\n%# v", hull[i], pretty.Formatter(hull))
			}
		}
	}

	for _, p := range points {
		require.True(t, poly.ContainsPoint(p), "point %v is outside the hull:\n%# v", p, pretty.Formatter(hull))
	}
}

var pivotRules = []PivotRule{PivotLowestLeftmost, PivotFirstLowest}
