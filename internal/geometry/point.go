// Package geometry provides the 2D primitives the racetrack compiler and
// simulator build on: points, vector arithmetic, and line/line intersection.
package geometry

import "math"

// Point is an (x, y) pair in world units.
type Point struct {
	X, Y float64
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by the scalar k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Div returns p divided by the scalar k.
func (p Point) Div(k float64) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// Length returns the Euclidean length of p, treated as a vector from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// NewPolar builds a Point at the given radius and angle (radians,
// anticlockwise from +x), relative to the origin.
func NewPolar(radius, angle float64) Point {
	return Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// InsideRectangle reports whether p lies within the axis-aligned rectangle
// spanned by r1 and r2, inclusive of the boundary. r1 and r2 need not be
// ordered; min/max are taken per axis.
func InsideRectangle(p, r1, r2 Point) bool {
	minX, maxX := math.Min(r1.X, r2.X), math.Max(r1.X, r2.X)
	minY, maxY := math.Min(r1.Y, r2.Y), math.Max(r1.Y, r2.Y)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// parallelEpsilon is the determinant tolerance below which two lines are
// treated as parallel (and Intersection reports no intersection).
const parallelEpsilon = 1e-8

// Intersection returns the point where the infinite lines through (s1, e1)
// and (s2, e2) cross, or false if the lines are parallel (or near-parallel,
// within parallelEpsilon). Callers that need a segment/segment intersection
// must separately confirm the returned point lies within both segments'
// extents (see InsideRectangle).
//
// Lines are represented in the form a*x + b*y = c, with (a, b, c) derived
// from the two points that define the line; the intersection is the Cramer
// solution of the resulting 2x2 linear system.
func Intersection(s1, e1, s2, e2 Point) (Point, bool) {
	a1 := e1.Y - s1.Y
	b1 := s1.X - e1.X
	c1 := a1*s1.X + b1*s1.Y

	a2 := e2.Y - s2.Y
	b2 := s2.X - e2.X
	c2 := a2*s2.X + b2*s2.Y

	det := a1*b2 - a2*b1
	if math.Abs(det) <= parallelEpsilon {
		return Point{}, false
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return Point{X: x, Y: y}, true
}
