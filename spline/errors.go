package spline

import "errors"

var (
	// ErrOutOfRange reports a control point index outside the set.
	ErrOutOfRange = errors.New("control point index out of range")
	// ErrInsufficientPoints reports a chain with fewer than two points.
	ErrInsufficientPoints = errors.New("at least two control points are required")
	// ErrInvalidSampleCount reports a non-positive per-segment sample count.
	ErrInvalidSampleCount = errors.New("sample count must be at least 1")
)
