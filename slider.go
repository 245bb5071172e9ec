package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"splinedit/editor"
)

const (
	sliderMin = 0.0
	sliderMax = 1.0
	// the smoothness slider moves in hundredths, like a 0..100 range input
	sliderTicks = 100

	sliderMargin  = 20
	sliderLabelW  = 140
	sliderKnobR   = 7
	sliderTrackH  = 4
	sliderBottomY = 28
)

// slider is a horizontal value slider drawn along the bottom of the window.
type slider struct {
	X, Y, W  float64
	Value    float64
	dragging bool
	OnChange func(v float64)
}

// layout places the track for a screen of the given size.
func (s *slider) layout(screenW, screenH int) {
	s.X = sliderMargin + sliderLabelW
	s.Y = float64(screenH) - sliderBottomY
	s.W = float64(screenW) - s.X - sliderMargin
	if s.W < 1 {
		s.W = 1
	}
}

func (s *slider) knobX() float64 {
	return s.X + (s.Value-sliderMin)/(sliderMax-sliderMin)*s.W
}

func (s *slider) contains(x, y float64) bool {
	return x >= s.X-sliderKnobR && x <= s.X+s.W+sliderKnobR &&
		math.Abs(y-s.Y) <= sliderKnobR+2
}

// handle applies a pointer event and reports whether the slider consumed it.
func (s *slider) handle(ev editor.PointerEvent) bool {
	switch ev.Kind {
	case editor.PointerDown:
		if !s.contains(ev.Pos.X, ev.Pos.Y) {
			return false
		}
		s.dragging = true
		s.setFromX(ev.Pos.X)
		return true
	case editor.PointerMove:
		if !s.dragging {
			return false
		}
		s.setFromX(ev.Pos.X)
		return true
	case editor.PointerUp:
		if !s.dragging {
			return false
		}
		s.dragging = false
		return true
	}
	return false
}

func (s *slider) setFromX(x float64) {
	val := x - s.X
	if val < 0 {
		val = 0
	}
	if val > s.W {
		val = s.W
	}
	ratio := val / s.W
	v := sliderMin + ratio*(sliderMax-sliderMin)
	v = quantize(v)
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *slider) draw(dst *ebiten.Image, pal palette) {
	vector.DrawFilledRect(dst, float32(s.X), float32(s.Y-sliderTrackH/2), float32(s.W), sliderTrackH, pal.Track, true)
	vector.DrawFilledCircle(dst, float32(s.knobX()), float32(s.Y), sliderKnobR, pal.Knob, true)

	if labelFace == nil {
		return
	}
	top := &text.DrawOptions{}
	top.GeoM.Translate(sliderMargin, s.Y)
	top.PrimaryAlign = text.AlignStart
	top.SecondaryAlign = text.AlignCenter
	top.ColorScale.ScaleWithColor(pal.Text)
	text.Draw(dst, fmt.Sprintf("%s %.2f", titleCaser.String("smoothness"), s.Value), labelFace, top)
}

// quantize snaps v to the slider's tick grid.
func quantize(v float64) float64 {
	return math.Round(v*sliderTicks) / sliderTicks
}
