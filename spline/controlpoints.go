package spline

import (
	"fmt"
	"math"
	"sync"
)

// HitRadius is the half-width of the square around a control point that
// accepts a pointer press. x and y are tested independently.
const HitRadius = 25.0

// ControlPoint is one anchor of the chain. Index is its fixed position in
// the interpolation order.
type ControlPoint struct {
	Index int
	Pos   Point
}

// Contains reports whether cursor lies inside the point's hit square.
func (cp ControlPoint) Contains(cursor Point) bool {
	return math.Abs(cursor.X-cp.Pos.X) < HitRadius &&
		math.Abs(cursor.Y-cp.Pos.Y) < HitRadius
}

// ControlPointSet owns an ordered, fixed-length chain of control points and
// the current drag selection. It is safe for concurrent use; readers always
// see whole position updates.
type ControlPointSet struct {
	mu       sync.Mutex
	points   []ControlPoint
	selected int
}

// NewControlPointSet creates a set with one control point per position.
func NewControlPointSet(positions []Point) (*ControlPointSet, error) {
	if len(positions) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrInsufficientPoints, len(positions))
	}
	pts := make([]ControlPoint, len(positions))
	for i, p := range positions {
		pts[i] = ControlPoint{Index: i, Pos: p}
	}
	return &ControlPointSet{points: pts, selected: -1}, nil
}

// Len returns the number of control points.
func (cs *ControlPointSet) Len() int {
	return len(cs.points)
}

// HitTest returns the first control point, in chain order, whose hit square
// contains cursor.
func (cs *ControlPointSet) HitTest(cursor Point) (int, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for _, cp := range cs.points {
		if cp.Contains(cursor) {
			return cp.Index, true
		}
	}
	return -1, false
}

// BeginDrag selects the control point at index as the drag target,
// replacing any previous selection.
func (cs *ControlPointSet) BeginDrag(index int) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if index < 0 || index >= len(cs.points) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(cs.points))
	}
	cs.selected = index
	return nil
}

// UpdateDrag moves the selected control point to cursor. It reports whether
// a point was moved.
func (cs *ControlPointSet) UpdateDrag(cursor Point) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.selected < 0 {
		return false
	}
	cs.points[cs.selected].Pos = cursor
	return true
}

// EndDrag clears the selection.
func (cs *ControlPointSet) EndDrag() {
	cs.mu.Lock()
	cs.selected = -1
	cs.mu.Unlock()
}

// Selected returns the index of the current drag target.
func (cs *ControlPointSet) Selected() (int, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.selected, cs.selected >= 0
}

// Positions returns a copy of every control point position in chain order.
func (cs *ControlPointSet) Positions() []Point {
	return cs.AppendPositions(nil)
}

// AppendPositions appends the control point positions to dst.
func (cs *ControlPointSet) AppendPositions(dst []Point) []Point {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for _, cp := range cs.points {
		dst = append(dst, cp.Pos)
	}
	return dst
}
