package geom

import (
	"image"
	"math"
)

// onEdgeTolerance is the cross product magnitude under which a point is
// treated as lying on a polygon edge.
const onEdgeTolerance = 1e-9

// Polygon is a wall quadrilateral in image space. Its corners, taken in
// field order, form a simple quadrilateral; they may lie outside the image.
//
// Polygon is a value type. Methods never modify the receiver.
type Polygon struct {
	TopLeft     Point `json:"topLeft"`
	TopRight    Point `json:"topRight"`
	BottomRight Point `json:"bottomRight"`
	BottomLeft  Point `json:"bottomLeft"`
}

// Corners returns the corners in {TopLeft, TopRight, BottomRight, BottomLeft} order.
func (p Polygon) Corners() [4]Point {
	return [4]Point{p.TopLeft, p.TopRight, p.BottomRight, p.BottomLeft}
}

// Edges returns the four edges, each starting at a corner and ending at the next.
func (p Polygon) Edges() [4]Line {
	return [4]Line{
		{Start: p.TopLeft, End: p.TopRight},
		{Start: p.TopRight, End: p.BottomRight},
		{Start: p.BottomRight, End: p.BottomLeft},
		{Start: p.BottomLeft, End: p.TopLeft},
	}
}

// Scale returns a new polygon with every vertex scaled independently by
// (sx, sy) and rounded to the nearest pixel.
func (p Polygon) Scale(sx, sy float64) Polygon {
	return Polygon{
		TopLeft:     p.TopLeft.Scale(sx, sy),
		TopRight:    p.TopRight.Scale(sx, sy),
		BottomRight: p.BottomRight.Scale(sx, sy),
		BottomLeft:  p.BottomLeft.Scale(sx, sy),
	}
}

// TopEdgeLength returns the pixel length of the top edge.
func (p Polygon) TopEdgeLength() float64 {
	return p.TopRight.Vec().Sub(p.TopLeft.Vec()).Length()
}

// Bounds returns the smallest rectangle containing every vertex.
func (p Polygon) Bounds() image.Rectangle {
	c := p.Corners()
	r := image.Rectangle{Min: image.Pt(c[0].X, c[0].Y), Max: image.Pt(c[0].X, c[0].Y)}
	for _, pt := range c[1:] {
		r.Min.X = min(r.Min.X, pt.X)
		r.Min.Y = min(r.Min.Y, pt.Y)
		r.Max.X = max(r.Max.X, pt.X)
		r.Max.Y = max(r.Max.Y, pt.Y)
	}
	r.Max.X++
	r.Max.Y++
	return r
}

// Area returns the signed shoelace area. Corners ordered clockwise on screen
// (y down) give a positive area.
func (p Polygon) Area() float64 {
	c := p.Corners()
	var sum float64
	for i := range 4 {
		a, b := c[i].Vec(), c[(i+1)%4].Vec()
		sum += a.Cross(b)
	}
	return sum / 2
}

// Contains reports whether (x, y) lies strictly inside the polygon.
// Points on an edge are outside.
func (p Polygon) Contains(x, y float64) bool {
	c := p.Corners()
	pt := Vec{X: x, Y: y}
	inside := false
	for i := range 4 {
		a, b := c[i].Vec(), c[(i+1)%4].Vec()
		if onSegment(a, b, pt) {
			return false
		}
		if (a.Y > y) != (b.Y > y) {
			xCross := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// IsSimple reports whether the corners are distinct and the quadrilateral
// does not intersect itself.
func (p Polygon) IsSimple() bool {
	c := p.Corners()
	for i := range 4 {
		for j := i + 1; j < 4; j++ {
			if c[i] == c[j] {
				return false
			}
		}
	}
	// Only opposite edges can cross in a quadrilateral.
	return !segmentsIntersect(c[0].Vec(), c[1].Vec(), c[2].Vec(), c[3].Vec()) &&
		!segmentsIntersect(c[1].Vec(), c[2].Vec(), c[3].Vec(), c[0].Vec())
}

func orientation(a, b, c Vec) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func inBox(a, b, p Vec) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

func onSegment(a, b, p Vec) bool {
	return math.Abs(b.Sub(a).Cross(p.Sub(a))) <= onEdgeTolerance && inBox(a, b, p)
}

// segmentsIntersect reports whether segments p1p2 and p3p4 touch or cross.
func segmentsIntersect(p1, p2, p3, p4 Vec) bool {
	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && inBox(p3, p4, p1)) ||
		(d2 == 0 && inBox(p3, p4, p2)) ||
		(d3 == 0 && inBox(p1, p2, p3)) ||
		(d4 == 0 && inBox(p1, p2, p4))
}
