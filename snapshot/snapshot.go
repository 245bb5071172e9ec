// Package snapshot renders editor frames off screen into PNG images.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/remeh/sizedwaitgroup"

	"splinedit/editor"
	"splinedit/spline"
)

// Canvas is an editor.Surface backed by a software gg context.
type Canvas struct {
	dc  *gg.Context
	err error
}

// NewCanvas returns a w x h canvas cleared to bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.FromColor(bg))
	return &Canvas{dc: dc}
}

func (c *Canvas) FillCircle(center spline.Point, radius float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.keep(c.dc.Fill())
}

func (c *Canvas) StrokePolyline(points []spline.Point, width float64, col color.Color) {
	if len(points) < 2 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.keep(c.dc.Stroke())
}

func (c *Canvas) keep(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// Err returns the first drawing error.
func (c *Canvas) Err() error { return c.err }

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Close releases the drawing context.
func (c *Canvas) Close() error { return c.dc.Close() }

// Frame is everything needed to draw one editor frame without a window.
type Frame struct {
	Positions  []spline.Point
	Smoothness float64
	Options    spline.Options
	Style      editor.Style
	Background color.Color
	Width      int
	Height     int
}

// Render draws f onto a fresh canvas. The caller must Close it.
func Render(f Frame) (*Canvas, error) {
	cs, err := spline.NewControlPointSet(f.Positions)
	if err != nil {
		return nil, err
	}
	bg := f.Background
	if bg == nil {
		bg = color.White
	}
	c := NewCanvas(f.Width, f.Height, bg)
	ed := editor.New(cs, editor.NewSmoothness(f.Smoothness), f.Options, f.Style)
	if err := ed.RenderFrame(c); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.Err(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// WritePNG renders f and encodes it to w.
func WritePNG(w io.Writer, f Frame) error {
	c, err := Render(f)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.EncodePNG(w)
}

// SavePNG renders f to path and returns the number of bytes written.
func SavePNG(path string, f Frame) (int64, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, f); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, err
	}
	return int64(buf.Len()), nil
}

// SweepResult describes one image written by Sweep.
type SweepResult struct {
	Smoothness float64
	Path       string
	Size       int64
	Err        error
}

// SweepName is the file name Sweep uses for smoothness k.
func SweepName(k float64) string {
	return fmt.Sprintf("smooth-%03d.png", int(k*100+0.5))
}

// Sweep renders f once per smoothness in ks into dir, running at most
// workers renders at a time. Results are returned in ks order.
func Sweep(ctx context.Context, f Frame, ks []float64, dir string, workers int) []SweepResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]SweepResult, len(ks))
	swg := sizedwaitgroup.New(workers)
	for i, k := range ks {
		results[i] = SweepResult{Smoothness: k, Path: filepath.Join(dir, SweepName(k))}
		if err := swg.AddWithContext(ctx); err != nil {
			results[i].Err = err
			continue
		}
		go func(i int, k float64) {
			defer swg.Done()
			frame := f
			frame.Smoothness = k
			n, err := SavePNG(results[i].Path, frame)
			results[i].Size = n
			results[i].Err = err
		}(i, k)
	}
	swg.Wait()
	return results
}
