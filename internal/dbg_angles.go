package internal

import (
	"fmt"
	"io"
	"math"

	"github.com/osuushi/grahamscan/internal/dbg"
)

// For debugging: print each point with the angle it makes with the pivot, in
// the order given. Run this on the output of SortByAngle to check the
// comparator.
func DbgAngles(w io.Writer, pivot *Point, points []*Point) error {
	for _, p := range points {
		angle := math.Atan2(float64(p.Y-pivot.Y), float64(p.X-pivot.X))
		_, err := fmt.Fprintf(w, "%-24s %v angle: %f dist²: %d\n", dbg.Name(p), p, angle, DistanceSquared(pivot, p))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Sort a copy of the points around the pivot the builder would choose, and
// print them. Returns the pivot, or nil for empty input.
func (b *Builder) DbgSortedAngles(w io.Writer, points []*Point) (pivot *Point, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			pivot = nil
			err = recoveredErr
		}
	}()
	validate(points)
	if len(points) == 0 {
		return nil, nil
	}
	working := appendUnique(make([]*Point, 0, len(points)), points)
	pivotIndex := FindPivot(working, b.Pivot)
	working[0], working[pivotIndex] = working[pivotIndex], working[0]
	SortByAngle(working[0], working[1:])
	return working[0], DbgAngles(w, working[0], working[1:])
}
