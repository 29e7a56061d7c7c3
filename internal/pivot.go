package internal

import (
	"strings"

	"github.com/pkg/errors"
)

// How to break ties between several points sharing the minimum Y value when
// picking the pivot.
type PivotRule int

const (
	// Lowest Y, then lowest X. This is the same lexicographic order as
	// Point.Below, and it guarantees that every other point lies at an angle in
	// [0, π) from the pivot.
	PivotLowestLeftmost PivotRule = iota
	// Lowest Y, keeping whichever of the tied points comes first in the input.
	// Points to the left of the pivot on the same horizontal line end up at an
	// angle of exactly π, and the pivot may come out as a collinear vertex.
	PivotFirstLowest
)

var pivotRuleNames = []string{"lowest-leftmost", "first-lowest"}

func (r PivotRule) String() string {
	if r < 0 || int(r) >= len(pivotRuleNames) {
		return "unknown"
	}
	return pivotRuleNames[r]
}

func PivotRuleNames() []string {
	return append([]string(nil), pivotRuleNames...)
}

func ParsePivotRule(name string) (PivotRule, error) {
	for i, candidate := range pivotRuleNames {
		if strings.EqualFold(name, candidate) {
			return PivotRule(i), nil
		}
	}
	return 0, errors.Errorf("unknown pivot rule %q (want one of %s)", name, strings.Join(pivotRuleNames, ", "))
}

// Index of the pivot point according to the rule. The points must not be
// empty.
func FindPivot(points []*Point, rule PivotRule) int {
	pivotIndex := 0
	for i, p := range points[1:] {
		i := i + 1
		pivot := points[pivotIndex]
		switch rule {
		case PivotFirstLowest:
			if p.Y < pivot.Y {
				pivotIndex = i
			}
		default:
			if p.Below(pivot) {
				pivotIndex = i
			}
		}
	}
	return pivotIndex
}
