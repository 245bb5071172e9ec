package editor

import (
	"math/rand"

	"splinedit/spline"
)

// DefaultPointCount is how many control points a fresh editor starts with.
const DefaultPointCount = 8

// SeedPositions lays out n points left to right, jittered by rng: point i
// lands in x = 40+80i+[0,30), y = 150+[0,150). It returns nil when n < 1.
func SeedPositions(n int, rng *rand.Rand) []spline.Point {
	if n < 1 {
		return nil
	}
	pts := make([]spline.Point, n)
	for i := range pts {
		x := 40 + float64(i)*80 + rng.Float64()*30
		y := 150 + rng.Float64()*150
		pts[i] = spline.Pt(x, y)
	}
	return pts
}
