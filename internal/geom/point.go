// Package geom provides the integer pixel geometry shared by room layout
// reconstruction and wallpaper compositing: points, line segments, wall
// quadrilaterals, and the slope/intercept algebra used to extend them.
//
// Two coordinate frames are used. The image frame has its origin at the
// top-left corner with y increasing downward. The geometric frame reflects
// y (y' = height-1-y) so that slope signs read as in a Cartesian plot.
package geom

import "math"

// Point is an integer pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vec returns the point as a float vector.
func (p Point) Vec() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Scale returns the point scaled by (sx, sy) and rounded to the nearest
// pixel.
func (p Point) Scale(sx, sy float64) Point {
	return Point{
		X: int(math.Round(float64(p.X) * sx)),
		Y: int(math.Round(float64(p.Y) * sy)),
	}
}

// Vec is a point or vector with float64 components.
type Vec struct {
	X, Y float64
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(q Vec) Vec {
	return Vec{X: v.X - q.X, Y: v.Y - q.Y}
}

// Cross returns the 2D cross product (scalar).
func (v Vec) Cross(q Vec) float64 {
	return v.X*q.Y - v.Y*q.X
}

// Length returns the length of the vector.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Trunc converts the vector to a Point, truncating toward zero.
// The vector must be finite.
func (v Vec) Trunc() Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}
