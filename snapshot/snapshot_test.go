package snapshot

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"splinedit/editor"
	"splinedit/spline"
)

func testFrame() Frame {
	return Frame{
		Positions:  []spline.Point{spline.Pt(40, 100), spline.Pt(120, 100), spline.Pt(200, 100)},
		Smoothness: 0.5,
		Options:    spline.Options{Steps: 10},
		Style:      editor.DefaultStyle,
		Background: color.White,
		Width:      240,
		Height:     200,
	}
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2 && d(a.A, b.A) <= 2
}

func pixel(c *Canvas, x, y int) color.RGBA {
	return color.RGBAModel.Convert(c.Image().At(x, y)).(color.RGBA)
}

func TestRenderDrawsPointsOnBackground(t *testing.T) {
	c, err := Render(testFrame())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	want := editor.DefaultStyle.Point.(color.RGBA)
	// inside each dot, below the horizontal curve
	for _, p := range testFrame().Positions {
		if got := pixel(c, int(p.X), int(p.Y)+3); !near(got, want) {
			t.Errorf("dot at %v: got %#v want %#v", p, got, want)
		}
	}
	if got := pixel(c, 5, 5); !near(got, color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("background: got %#v", got)
	}
}

func TestRenderRejectsBadFrames(t *testing.T) {
	f := testFrame()
	f.Positions = f.Positions[:1]
	if _, err := Render(f); !errors.Is(err, spline.ErrInsufficientPoints) {
		t.Errorf("one point: got %v", err)
	}

	f = testFrame()
	f.Options.Steps = -1
	if _, err := Render(f); !errors.Is(err, spline.ErrInvalidSampleCount) {
		t.Errorf("bad steps: got %v", err)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testFrame()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 200 {
		t.Errorf("bounds %v", b)
	}
}

func TestSweep(t *testing.T) {
	dir := t.TempDir()
	ks := []float64{0, 0.25, 0.5, 0.75, 1}
	res := Sweep(context.Background(), testFrame(), ks, dir, 2)
	if len(res) != len(ks) {
		t.Fatalf("got %d results", len(res))
	}
	var got []float64
	for _, r := range res {
		if r.Err != nil {
			t.Errorf("k=%v: %v", r.Smoothness, r.Err)
			continue
		}
		fi, err := os.Stat(r.Path)
		if err != nil {
			t.Errorf("k=%v: %v", r.Smoothness, err)
			continue
		}
		if fi.Size() != r.Size || r.Size == 0 {
			t.Errorf("k=%v: size %d on disk, reported %d", r.Smoothness, fi.Size(), r.Size)
		}
		got = append(got, r.Smoothness)
	}
	if d := cmp.Diff(ks, got); d != "" {
		t.Errorf("order (-want +got):\n%s", d)
	}
}

func TestSweepName(t *testing.T) {
	for k, want := range map[float64]string{0: "smooth-000.png", 0.25: "smooth-025.png", 1: "smooth-100.png"} {
		if got := SweepName(k); got != want {
			t.Errorf("%v: got %q", k, got)
		}
	}
}
