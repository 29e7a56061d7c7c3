// Package gen generates point clouds for benchmarks, tests and the hull CLI.
package gen

import (
	"math"

	"github.com/osuushi/grahamscan/internal"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type Point = internal.Point

// Points with integer coordinates uniformly distributed in [-radius, radius]²
func Uniform(n int, radius int64, seed uint64) []*Point {
	src := rand.NewSource(seed)
	dist := distuv.Uniform{Min: float64(-radius), Max: float64(radius), Src: src}
	return sample(n, radius, func() float64 { return dist.Rand() })
}

// Points normally distributed around the origin, clamped to [-radius, radius]
func Gaussian(n int, sigma float64, radius int64, seed uint64) []*Point {
	src := rand.NewSource(seed)
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	return sample(n, radius, func() float64 { return dist.Rand() })
}

// n points evenly spaced on a circle, rounded to integers. With a radius large
// enough relative to n, every point is a hull vertex.
func Circle(n int, radius int64) []*Point {
	points := make([]*Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, &Point{
			X: int64(math.Round(float64(radius) * math.Cos(angle))),
			Y: int64(math.Round(float64(radius) * math.Sin(angle))),
		})
	}
	return points
}

func sample(n int, radius int64, next func() float64) []*Point {
	points := make([]*Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, &Point{
			X: clamp(next(), radius),
			Y: clamp(next(), radius),
		})
	}
	return points
}

func clamp(v float64, radius int64) int64 {
	r := float64(radius)
	return int64(math.Round(math.Max(-r, math.Min(r, v))))
}
