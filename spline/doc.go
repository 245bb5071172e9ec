// Package spline evaluates piecewise cubic Hermite curves whose tangents are
// estimated with the Catmull-Rom rule, and owns the draggable control points
// such a curve is drawn through.
//
// The curve is flat at both ends of the chain: the tangent at the first and the
// last control point is the zero vector. Every interior tangent is the chord
// between its two neighbours scaled by a smoothness factor k, so k = 0.5
// yields the classic uniform Catmull-Rom spline.
package spline
