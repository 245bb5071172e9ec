package editor

import (
	"image/color"

	"splinedit/spline"
)

// Surface is an immediate-mode drawing target. The editor only writes
// through it and never reads back.
type Surface interface {
	FillCircle(center spline.Point, radius float64, col color.Color)
	StrokePolyline(points []spline.Point, width float64, col color.Color)
}

// Style holds the colours and sizes used to draw a frame.
type Style struct {
	Point       color.Color
	Hover       color.Color
	Curve       color.Color
	PointRadius float64
	LineWidth   float64
}

// DefaultStyle matches the light canvas look: blue points on a dark grey curve.
var DefaultStyle = Style{
	Point:       color.RGBA{R: 0x00, G: 0x84, B: 0xb4, A: 0xff},
	Hover:       color.RGBA{R: 0x33, G: 0xb5, B: 0xe5, A: 0xff},
	Curve:       color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	PointRadius: 6,
	LineWidth:   1,
}
