package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			a := &Point{0, -1}
			b := &Point{1, 0}
			c := &Point{0, 1}
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*int64(cwI)
			if cwI == 1 {
				a, b = b, a
			}
			assertArea := func(expected int64) {
				assert.Equal(t, sign*expected, SignedArea(a, b, c))
				// Rotating the vertex order never changes the area
				assert.Equal(t, sign*expected, SignedArea(b, c, a))
				assert.Equal(t, sign*expected, SignedArea(c, a, b))
			}
			assertArea(2)

			// Stretch the triangle out
			for _, p := range []*Point{a, b, c} {
				p.Y *= 2
			}
			assertArea(4)

			// Rotate by quarter turns, which keeps everything on the lattice
			for i := 0; i < 4; i++ {
				for _, p := range []*Point{a, b, c} {
					rotateQuarter(p)
				}
				assertArea(4)
			}

			// Translate the triangle and do the whole rotation thing again
			for _, p := range []*Point{a, b, c} {
				p.X += 5
				p.Y += 3
			}
			for i := 0; i < 4; i++ {
				for _, p := range []*Point{a, b, c} {
					rotateQuarter(p)
				}
				assertArea(4)
			}
		})
	}
}

func TestSignedAreaAtCoordinateLimit(t *testing.T) {
	const m = MaxCoordinate
	// The largest possible triangle. Each product is close to 2^62, and the
	// result must still come out exact.
	a := &Point{-m, -m}
	b := &Point{m, -m}
	c := &Point{m, m}
	assert.Equal(t, int64(2*m)*int64(2*m), SignedArea(a, b, c))
	assert.Equal(t, -int64(2*m)*int64(2*m), SignedArea(a, c, b))
	assert.True(t, Left(a, b, c))
	assert.Equal(t, 2*int64(2*m)*int64(2*m), DistanceSquared(a, c))

	// Nearly collinear points far apart
	assert.True(t, Collinear(a, &Point{0, 0}, c))
	assert.True(t, Left(a, &Point{0, 0}, &Point{m - 1, m}))
	assert.False(t, Left(a, &Point{0, 0}, &Point{m, m - 1}))
}

func TestCollinearAndLeft(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{2, 2}
	assert.True(t, Collinear(a, b, &Point{4, 4}))
	assert.True(t, Collinear(a, b, &Point{-1, -1}))
	assert.True(t, Collinear(a, b, &Point{1, 1}))
	assert.False(t, Collinear(a, b, &Point{1, 2}))

	assert.True(t, Left(a, b, &Point{0, 1}))
	assert.False(t, Left(a, b, &Point{1, 0}))
	// Collinear is not left
	assert.False(t, Left(a, b, &Point{3, 3}))
	// Degenerate segment
	assert.False(t, Left(a, a, b))
}

func TestDistanceSquared(t *testing.T) {
	assert.Equal(t, int64(25), DistanceSquared(&Point{0, 0}, &Point{3, 4}))
	assert.Equal(t, int64(25), DistanceSquared(&Point{3, 4}, &Point{0, 0}))
	assert.Equal(t, int64(0), DistanceSquared(&Point{-7, 2}, &Point{-7, 2}))
}

// Helpers

func rotateQuarter(point *Point) {
	point.X, point.Y = -point.Y, point.X
}
