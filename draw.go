package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"splinedit/spline"
)

var whiteSubImage *ebiten.Image

// solidSource returns a 1x1 white source image for DrawTriangles. It is
// created on first use so tests never need a graphics device.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// maxStrokePoints bounds one DrawTriangles batch so its vertex indices fit
// in uint16.
const maxStrokePoints = 2048

// drawFilledCircleFn and drawTrianglesFn are swapped out in tests.
var (
	drawFilledCircleFn = vector.DrawFilledCircle
	drawTrianglesFn    = func(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, op *ebiten.DrawTrianglesOptions) {
		dst.DrawTriangles(vs, is, solidSource(), op)
	}
)

// strokeVertsPerSample is a rough vertex budget per polyline point for a
// thin round-joined stroke.
const strokeVertsPerSample = 4

// screenSurface draws editor frames onto an ebiten image. Its stroke buffers
// are reused across frames; drawing happens on the game goroutine only.
type screenSurface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// reserve grows the stroke buffers to fit a curve of samples points.
func (s *screenSurface) reserve(samples int) {
	if samples > maxStrokePoints {
		samples = maxStrokePoints
	}
	if nv := samples * strokeVertsPerSample; cap(s.vertices) < nv {
		s.vertices = make([]ebiten.Vertex, 0, nv)
		s.indices = make([]uint16, 0, nv*3/2)
	}
}

func (s *screenSurface) FillCircle(center spline.Point, radius float64, col color.Color) {
	drawFilledCircleFn(s.dst, float32(center.X), float32(center.Y), float32(radius), col, true)
}

func (s *screenSurface) StrokePolyline(points []spline.Point, width float64, col color.Color) {
	// consecutive batches share their boundary point so the line stays joined
	for len(points) > 1 {
		n := len(points)
		if n > maxStrokePoints {
			n = maxStrokePoints
		}
		s.strokeBatch(points[:n], float32(width), col)
		points = points[n-1:]
	}
}

func (s *screenSurface) strokeBatch(points []spline.Point, width float32, col color.Color) {
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	opv := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound, LineCap: vector.LineCapRound}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], opv)
	r, g, b, a := col.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 0xffff
		s.vertices[i].ColorG = float32(g) / 0xffff
		s.vertices[i].ColorB = float32(b) / 0xffff
		s.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero, AntiAlias: true}
	drawTrianglesFn(s.dst, s.vertices, s.indices, op)
}
