package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/grahamscan/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the drawing so that hull edges on the bounds are visible
const dbgDrawPadding = 40

type RenderOptions struct {
	// Pixels per unit. Zero picks a scale that makes the longer side about 800
	// pixels.
	Scale float64
	// Label hull vertices with their debug names
	Labels bool
}

// Draw the points in grey and the hull over them, filled and stroked. Hull
// vertices are marked in red, and the pivot (the first vertex) in yellow.
func Render(points []*Point, hull Polygon, opts RenderOptions) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 800 / math.Max(1, math.Max(maxX-minX, maxY-minY))
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Marker radius, in point space
	radius := 3 / scale

	if len(hull.Points) > 0 {
		c.MoveTo(float64(hull.Points[0].X), float64(hull.Points[0].Y))
		for _, p := range hull.Points[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	c.SetRGB(0.6, 0.6, 0.6)
	for _, p := range points {
		c.DrawCircle(float64(p.X), float64(p.Y), radius)
		c.Fill()
	}

	for i, p := range hull.Points {
		if i == 0 {
			c.SetRGB(1, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(float64(p.X), float64(p.Y), radius*1.5)
		c.Fill()
	}

	if opts.Labels {
		c.SetRGB(1, 1, 1)
		for _, p := range hull.Points {
			// We have to go back to identity to draw the text, so get the point in
			// native coordinates
			x, y := c.TransformPoint(float64(p.X), float64(p.Y))
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(p), x, y-8, 0.5, 0)
			c.Pop()
		}
	}
	return c
}

func RenderPNG(w io.Writer, points []*Point, hull Polygon, opts RenderOptions) error {
	c := Render(points, hull, opts)
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

// Show an already rendered PNG file inline (iTerm only).
func CatPNG(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "displaying %s", path)
}
