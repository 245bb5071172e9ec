// Package editor turns pointer events into control point drags and draws the
// control points and their Hermite curve onto a Surface once per frame.
//
// An Editor is driven from a single goroutine: the host calls
// HandlePointerEvent for every pointer change and RenderFrame once per display
// refresh, never both at once.
package editor

import (
	"splinedit/spline"
)

// PointerKind identifies a pointer transition.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent is a pointer transition at Pos, in control point coordinates.
type PointerEvent struct {
	Kind PointerKind
	Pos  spline.Point
}

// Editor couples a control point set with the smoothness it is drawn at.
type Editor struct {
	points *spline.ControlPointSet
	smooth SmoothnessSource
	opts   spline.Options
	style  Style

	hover int

	// reused every frame
	pos  []spline.Point
	line []spline.Point
}

// New returns an editor over points. The smoothness is read from smooth
// every frame.
func New(points *spline.ControlPointSet, smooth SmoothnessSource, opts spline.Options, style Style) *Editor {
	return &Editor{
		points: points,
		smooth: smooth,
		opts:   opts,
		style:  style,
		hover:  -1,
	}
}

// Points returns the control point set the editor mutates.
func (e *Editor) Points() *spline.ControlPointSet { return e.points }

// Options returns the sampling options.
func (e *Editor) Options() spline.Options { return e.opts }

// SetOptions replaces the sampling options used from the next frame on.
func (e *Editor) SetOptions(opts spline.Options) { e.opts = opts }

// SetStyle replaces the drawing style.
func (e *Editor) SetStyle(s Style) { e.style = s }

// Hovered returns the control point under the pointer when no drag is active.
func (e *Editor) Hovered() (int, bool) { return e.hover, e.hover >= 0 }

// HandlePointerEvent applies one pointer transition. A press over a control
// point starts dragging it; moves drag the selection; release ends the drag.
func (e *Editor) HandlePointerEvent(ev PointerEvent) error {
	switch ev.Kind {
	case PointerDown:
		i, ok := e.points.HitTest(ev.Pos)
		e.hover = i
		if !ok {
			return nil
		}
		return e.points.BeginDrag(i)
	case PointerMove:
		if e.points.UpdateDrag(ev.Pos) {
			return nil
		}
		e.hover, _ = e.points.HitTest(ev.Pos)
	case PointerUp:
		e.points.EndDrag()
		e.hover, _ = e.points.HitTest(ev.Pos)
	}
	return nil
}

// Curve evaluates the current control points at the current smoothness. The
// returned slice is reused by the next call.
func (e *Editor) Curve() ([]spline.Point, error) {
	e.pos = e.points.AppendPositions(e.pos[:0])
	var err error
	e.line, err = spline.Append(e.line[:0], e.pos, e.smooth.Smoothness(), e.opts)
	if err != nil {
		e.line = e.line[:0]
	}
	return e.line, err
}

// Samples returns the length of the polyline produced by the last frame.
func (e *Editor) Samples() int { return len(e.line) }

// RenderFrame draws every control point and then the curve through them.
// When the curve cannot be evaluated the points are still drawn and the
// error is returned; the caller should carry on with the next frame.
func (e *Editor) RenderFrame(s Surface) error {
	line, err := e.Curve()

	active, dragging := e.points.Selected()
	if !dragging {
		active = e.hover
	}
	for i, p := range e.pos {
		if i == active {
			s.FillCircle(p, e.style.PointRadius*1.5, e.style.Hover)
			continue
		}
		s.FillCircle(p, e.style.PointRadius, e.style.Point)
	}

	if err != nil {
		return err
	}
	s.StrokePolyline(line, e.style.LineWidth, e.style.Curve)
	return nil
}
