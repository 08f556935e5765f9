package layout

import (
	"math"

	"github.com/gogpu/wallpreview/internal/geom"
)

// reconstructType0 handles a fully visible center wall. Lines 0..3 run from
// the center wall's corners to the image border (top-left, bottom-left,
// bottom-right, top-right); lines 4..7 trace the center wall itself, with
// 4 its left divider and 6 its right divider.
func reconstructType0(f *frame, g []geom.Line) []geom.Polygon {
	cl, cr := g[4], g[6]
	lb := f.left(slopeOf(cl))
	rb := f.right(slopeOf(cr))

	return []geom.Polygon{
		{
			TopLeft:     f.corner(lb, geom.FitLine(g[0])),
			TopRight:    f.back(cl.Start),
			BottomRight: f.back(cl.End),
			BottomLeft:  f.corner(lb, geom.FitLine(g[1])),
		},
		{
			TopLeft:     f.back(cl.Start),
			TopRight:    f.back(cr.End),
			BottomRight: f.back(cr.Start),
			BottomLeft:  f.back(cl.End),
		},
		{
			TopLeft:     f.back(cr.End),
			TopRight:    f.corner(rb, geom.FitLine(g[3])),
			BottomRight: f.corner(rb, geom.FitLine(g[2])),
			BottomLeft:  f.back(cr.Start),
		},
	}
}

// reconstructType1 handles three walls whose ceiling is cut off by the top
// of the image. Line 0 is the left divider (bottom to top), 3 the right
// divider, 1 and 4 the left and right floor edges, 2 the center floor edge.
// The missing ceiling edges of the side walls are mirrored about their
// dividers.
func reconstructType1(f *frame, g []geom.Line) []geom.Polygon {
	cl, cr := g[0], g[3]
	aLeft, aRight := slopeOf(cl), slopeOf(cr)
	leftFloor, rightFloor := geom.FitLine(g[1]), geom.FitLine(g[4])

	leftCeiling := edge(mirror(aLeft, leftFloor.Slope), v(0, f.y), cl.End.Vec())
	rightCeiling := edge(mirror(aRight, rightFloor.Slope), cr.End.Vec(), v(f.x, f.y))
	lb, rb := f.left(aLeft), f.right(aRight)

	return []geom.Polygon{
		{
			TopLeft:     f.corner(lb, leftCeiling),
			TopRight:    f.back(cl.End),
			BottomRight: f.back(cl.Start),
			BottomLeft:  f.corner(lb, leftFloor),
		},
		{
			TopLeft:     f.back(cl.End),
			TopRight:    f.back(cr.End),
			BottomRight: f.back(cr.Start),
			BottomLeft:  f.back(cl.Start),
		},
		{
			TopLeft:     f.back(cr.End),
			TopRight:    f.corner(rb, rightCeiling),
			BottomRight: f.corner(rb, rightFloor),
			BottomLeft:  f.back(cr.Start),
		},
	}
}

// reconstructType2 is the vertical mirror of type 1: three walls whose floor
// is cut off by the bottom of the image. Lines 0 and 3 are the left and
// right ceiling edges, 1 and 4 the dividers (top to bottom), 2 the center
// ceiling edge.
func reconstructType2(f *frame, g []geom.Line) []geom.Polygon {
	leftCeiling, rightCeiling := geom.FitLine(g[0]), geom.FitLine(g[3])
	cl, cr := g[1], g[4]
	aLeft, aRight := slopeOf(cl), slopeOf(cr)

	leftFloor := edge(mirror(aLeft, leftCeiling.Slope), cl.End.Vec(), v(0, 0))
	rightFloor := edge(mirror(aRight, rightCeiling.Slope), v(f.x, 0), cr.End.Vec())
	lb, rb := f.left(aLeft), f.right(aRight)

	return []geom.Polygon{
		{
			TopLeft:     f.corner(lb, leftCeiling),
			TopRight:    f.back(cl.Start),
			BottomRight: f.back(cl.End),
			BottomLeft:  f.corner(lb, leftFloor),
		},
		{
			TopLeft:     f.back(cl.Start),
			TopRight:    f.back(cr.Start),
			BottomRight: f.back(cr.End),
			BottomLeft:  f.back(cl.End),
		},
		{
			TopLeft:     f.back(cr.Start),
			TopRight:    f.corner(rb, rightCeiling),
			BottomRight: f.corner(rb, rightFloor),
			BottomLeft:  f.back(cr.End),
		},
	}
}

// reconstructType7 handles three walls where only the two vertical
// dividers are visible. Line 0 is the left divider and line 1 the right
// one, both from bottom to top. Floor and ceiling edges of the side walls
// are synthesized at the divider's perpendicular plus or minus the mirror
// angle; the center wall spans the two dividers.
func reconstructType7(f *frame, g []geom.Line) []geom.Polygon {
	l, r := g[0], g[1]
	aLeft, aRight := slopeOf(l), slopeOf(r)

	pl := math.Atan(perpendicular(aLeft))
	leftTop := edge(math.Tan(pl-f.angle), v(0, f.y), l.End.Vec())
	leftBottom := edge(math.Tan(pl+f.angle), l.Start.Vec(), v(0, 0))

	pr := math.Atan(perpendicular(aRight))
	rightTop := edge(math.Tan(pr+f.angle), r.End.Vec(), v(f.x, f.y))
	rightBottom := edge(math.Tan(pr-f.angle), v(f.x, 0), r.Start.Vec())

	lb, rb := f.left(aLeft), f.right(aRight)

	left := geom.Polygon{
		TopLeft:     f.corner(lb, leftTop),
		TopRight:    f.back(l.End),
		BottomRight: f.back(l.Start),
		BottomLeft:  f.corner(lb, leftBottom),
	}
	right := geom.Polygon{
		TopLeft:     f.back(r.End),
		TopRight:    f.corner(rb, rightTop),
		BottomRight: f.corner(rb, rightBottom),
		BottomLeft:  f.back(r.Start),
	}
	center := geom.Polygon{
		TopLeft:     left.TopRight,
		TopRight:    right.TopLeft,
		BottomRight: right.BottomLeft,
		BottomLeft:  left.BottomRight,
	}
	return []geom.Polygon{left, center, right}
}
