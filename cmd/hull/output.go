package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/grahamscan"
)

func writePoints(w io.Writer, points []*Point) error {
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%d %d\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// A standalone SVG with the input points as circles and the hull as a
// polygon. It can be fed back in with --format=svg.
func writeSVG(w io.Writer, points []*Point, hull []*Point) error {
	minX, minY, maxX, maxY := bounds(points)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%d %d %d %d">`+"\n",
		minX-1, minY-1, maxX-minX+2, maxY-minY+2)

	var hullPoints []string
	for _, p := range hull {
		hullPoints = append(hullPoints, fmt.Sprintf("%d,%d", p.X, p.Y))
	}
	fmt.Fprintf(&b, `  <polygon points="%s" fill="none" stroke="teal"/>`+"\n", strings.Join(hullPoints, " "))
	for _, p := range points {
		fmt.Fprintf(&b, `  <circle cx="%d" cy="%d" r="0.5"/>`+"\n", p.X, p.Y)
	}
	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func bounds(points []*Point) (minX, minY, maxX, maxY int64) {
	for i, p := range points {
		if i == 0 || p.X < minX {
			minX = p.X
		}
		if i == 0 || p.Y < minY {
			minY = p.Y
		}
		if i == 0 || p.X > maxX {
			maxX = p.X
		}
		if i == 0 || p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

// Write a line per input point saying whether it made it onto the hull,
// followed by a summary with the hull's area. The pivot is highlighted.
func writeReport(w io.Writer, au aurora.Aurora, points []*Point, hull []*Point) error {
	onHull := make(map[*Point]int, len(hull))
	for i, p := range hull {
		onHull[p] = i
	}
	poly := grahamscan.Polygon{Points: hull}
	for _, p := range points {
		var status aurora.Value
		if i, ok := onHull[p]; ok {
			if i == 0 {
				status = au.Bold(au.Yellow(fmt.Sprintf("pivot  #%d", i)))
			} else {
				status = au.Green(fmt.Sprintf("hull   #%d", i))
			}
		} else if poly.ContainsPoint(p) {
			status = au.Faint("inside")
		} else {
			// Would mean a broken hull
			status = au.Red("outside")
		}
		if _, err := fmt.Fprintf(w, "%8d %8d  %s\n", p.X, p.Y, status); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s\n", au.Cyan(fmt.Sprintf("%d of %d points on the hull", len(hull), len(points)))); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", au.Cyan("area "+halve(poly.Area2())))
	return err
}

// Exact half of a (non-negative) doubled area.
func halve(area2 int64) string {
	if area2%2 != 0 {
		return fmt.Sprintf("%d.5", area2/2)
	}
	return fmt.Sprintf("%d", area2/2)
}
