package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures. This is not a full (or even correct) svg
// parser. Every <circle> center is an input point, in document order, and the
// single <polygon> is the expected hull, counterclockwise from the pivot. If
// anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Points []*Point
	Hull   []Point
}

func LoadFixture(name string) *Fixture {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	result := &Fixture{}
	for _, circleEl := range rootEl.FindAll("circle") {
		result.Points = append(result.Points, &Point{
			X: parseFixtureInt(name, circleEl.Attributes["cx"]),
			Y: parseFixtureInt(name, circleEl.Attributes["cy"]),
		})
	}
	if len(result.Points) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	// Find the hull polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		result.Hull = append(result.Hull, Point{
			X: parseFixtureInt(name, coords[0]),
			Y: parseFixtureInt(name, coords[1]),
		})
	}
	return result
}

func parseFixtureInt(name, s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q in fixture %q: %v", s, name, err)
	}
	return v
}

// Dereference a hull for comparison against expected coordinates
func values(points []*Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		result = append(result, *p)
	}
	return result
}

// Build a point list from coordinate pairs
func pts(coords ...int64) []*Point {
	if len(coords)%2 != 0 {
		panic("odd number of coordinates")
	}
	points := make([]*Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		points = append(points, &Point{coords[i], coords[i+1]})
	}
	return points
}
