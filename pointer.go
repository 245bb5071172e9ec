package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"splinedit/editor"
	"splinedit/spline"
)

var touchIDs []ebiten.TouchID

// pointerSample is one tick of primary pointer input.
type pointerSample struct {
	x, y     int
	touch    bool // a touch is down this tick
	pressed  bool
	released bool
}

// samplePointerFn is swapped out in tests.
var samplePointerFn = samplePointer

// samplePointer reads the primary pointer. If a touch is active, the first
// touch is used. Otherwise the mouse cursor is. A second finger is ignored
// rather than starting another drag.
func samplePointer() pointerSample {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	var s pointerSample
	if len(touchIDs) > 0 {
		s.x, s.y = ebiten.TouchPosition(touchIDs[0])
		s.touch = true
	} else {
		s.x, s.y = ebiten.CursorPosition()
	}
	if len(touchIDs) <= 1 {
		s.pressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
	}
	s.released = len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButton0)
	return s
}

// pointerState tracks the last pointer sample so moves are only reported
// when the position actually changes.
type pointerState struct {
	x, y  int
	touch bool
	valid bool
}

// poll turns this tick's pointer input into editor events, in the order
// down, move, up.
func (ps *pointerState) poll(dst []editor.PointerEvent) []editor.PointerEvent {
	s := samplePointerFn()
	// a lifted finger has no position; the cursor reading is unrelated to it
	if ps.valid && ps.touch && !s.touch {
		s.x, s.y = ps.x, ps.y
	}
	pos := spline.Pt(float64(s.x), float64(s.y))

	if s.pressed {
		dst = append(dst, editor.PointerEvent{Kind: editor.PointerDown, Pos: pos})
	}
	if !ps.valid || s.x != ps.x || s.y != ps.y {
		dst = append(dst, editor.PointerEvent{Kind: editor.PointerMove, Pos: pos})
	}
	if s.released {
		dst = append(dst, editor.PointerEvent{Kind: editor.PointerUp, Pos: pos})
	}
	ps.x, ps.y, ps.touch, ps.valid = s.x, s.y, s.touch, true
	return dst
}
