package spline

import "fmt"

const (
	// DefaultSteps is the number of samples taken per segment.
	DefaultSteps = 25
	// DefaultSmoothness is the tangent scale that gives a uniform Catmull-Rom spline.
	DefaultSmoothness = 0.5
)

// Options controls how densely a chain is sampled.
type Options struct {
	// Steps is the number of samples per segment, taken at s = j/Steps for
	// j in [0, Steps). Zero means DefaultSteps.
	Steps int

	// IncludeEnd appends the last control point after the final segment.
	// Without it the polyline stops one sample short of the chain's end.
	IncludeEnd bool
}

func (o Options) steps() int {
	if o.Steps == 0 {
		return DefaultSteps
	}
	return o.Steps
}

// Basis returns the four cubic Hermite basis weights at s: start position,
// end position, start tangent and end tangent.
func Basis(s float64) (h1, h2, h3, h4 float64) {
	s2 := s * s
	s3 := s2 * s
	h1 = 2*s3 - 3*s2 + 1
	h2 = -2*s3 + 3*s2
	h3 = s3 - 2*s2 + s
	h4 = s3 - s2
	return h1, h2, h3, h4
}

// Tangent returns the Catmull-Rom tangent at index i of points scaled by k.
// The first and last points of the chain always have a zero tangent.
func Tangent(points []Point, i int, k float64) Point {
	if i <= 0 || i >= len(points)-1 {
		return Point{}
	}
	return points[i+1].Sub(points[i-1]).Mul(k)
}

// Curve returns the point at parameter s on segment [i, i+1].
func Curve(points []Point, i int, k, s float64) (Point, error) {
	if len(points) < 2 {
		return Point{}, fmt.Errorf("%w: have %d", ErrInsufficientPoints, len(points))
	}
	if i < 0 || i > len(points)-2 {
		return Point{}, fmt.Errorf("%w: segment %d of %d", ErrOutOfRange, i, len(points)-1)
	}
	return curve(points, i, k, s), nil
}

func curve(points []Point, i int, k, s float64) Point {
	h1, h2, h3, h4 := Basis(s)
	return points[i].Mul(h1).
		Add(points[i+1].Mul(h2)).
		Add(Tangent(points, i, k).Mul(h3)).
		Add(Tangent(points, i+1, k).Mul(h4))
}

// Evaluate samples the whole chain with steps samples per segment and
// returns the polyline, starting with points[0].
func Evaluate(points []Point, k float64, steps int) ([]Point, error) {
	if steps == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrInvalidSampleCount)
	}
	return Append(nil, points, k, Options{Steps: steps})
}

// Append is like Evaluate but appends the polyline to dst, so a caller
// redrawing every frame can reuse one buffer.
func Append(dst, points []Point, k float64, opts Options) ([]Point, error) {
	steps := opts.steps()
	if steps < 1 {
		return dst, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, steps)
	}
	n := len(points)
	if n < 2 {
		return dst, fmt.Errorf("%w: have %d", ErrInsufficientPoints, n)
	}

	need := 1 + (n-1)*steps
	if opts.IncludeEnd {
		need++
	}
	if cap(dst)-len(dst) < need {
		grown := make([]Point, len(dst), len(dst)+need)
		copy(grown, dst)
		dst = grown
	}

	dst = append(dst, points[0])
	for i := 0; i < n-1; i++ {
		for j := 0; j < steps; j++ {
			s := float64(j) / float64(steps)
			dst = append(dst, curve(points, i, k, s))
		}
	}
	if opts.IncludeEnd {
		dst = append(dst, points[n-1])
	}
	return dst, nil
}

// SampleCount returns how many points Append emits for a chain of n points.
func SampleCount(n int, opts Options) int {
	if n < 2 || opts.steps() < 1 {
		return 0
	}
	c := 1 + (n-1)*opts.steps()
	if opts.IncludeEnd {
		c++
	}
	return c
}
