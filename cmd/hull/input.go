package main

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/grahamscan"
	"github.com/pkg/errors"
)

type Point = grahamscan.Point

// Read points from text input. Each line should be a point in the form "x y"
// (a comma works as a separator too). Blank lines and lines starting with "#"
// are skipped.
func readPoints(in io.Reader) ([]*Point, error) {
	points := []*Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "reading points")
}

func parsePoint(line string) (*Point, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return nil, errors.Errorf("expected two coordinates, got %q", line)
	}
	x, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return &Point{X: x, Y: y}, nil
}

// Read points from an SVG document. Every <circle> contributes its center,
// and every <polygon> contributes its vertices. This is not a full SVG
// reader: transforms are ignored, and coordinates must be integers.
func readSVGPoints(in io.Reader) ([]*Point, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []*Point{}
	for _, circleEl := range rootEl.FindAll("circle") {
		point, err := svgPoint(circleEl.Attributes["cx"], circleEl.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle")
		}
		points = append(points, point)
	}

	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			coords := strings.Split(pointString, ",")
			if len(coords) != 2 {
				return nil, errors.Errorf("polygon: invalid point string %q", pointString)
			}
			point, err := svgPoint(coords[0], coords[1])
			if err != nil {
				return nil, errors.Wrap(err, "polygon")
			}
			points = append(points, point)
		}
	}
	return points, nil
}

func svgPoint(xString, yString string) (*Point, error) {
	x, err := svgCoordinate(xString)
	if err != nil {
		return nil, err
	}
	y, err := svgCoordinate(yString)
	if err != nil {
		return nil, err
	}
	return &Point{X: x, Y: y}, nil
}

func svgCoordinate(s string) (int64, error) {
	if s == "" {
		// SVG defaults missing coordinates to zero
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	if v != math.Trunc(v) || math.Abs(v) > grahamscan.MaxCoordinate {
		return 0, errors.Errorf("coordinate %q is not an integer within ±%d", s, grahamscan.MaxCoordinate)
	}
	return int64(v), nil
}
