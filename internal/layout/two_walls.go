package layout

import (
	"math"

	"github.com/gogpu/wallpreview/internal/geom"
)

// reconstructType3 handles two walls meeting at a divider whose floor is cut
// off. Line 0 is the left ceiling edge, line 1 the divider (top to bottom),
// line 2 the right ceiling edge. Floor edges are mirrored about the divider.
func reconstructType3(f *frame, g []geom.Line) []geom.Polygon {
	leftCeiling, rightCeiling := geom.FitLine(g[0]), geom.FitLine(g[2])
	ce := g[1]
	a := slopeOf(ce)

	leftFloor := edge(mirror(a, leftCeiling.Slope), ce.End.Vec(), v(0, 0))
	rightFloor := edge(mirror(a, rightCeiling.Slope), v(f.x, 0), ce.End.Vec())
	lb, rb := f.left(a), f.right(a)

	return []geom.Polygon{
		{
			TopLeft:     f.corner(lb, leftCeiling),
			TopRight:    f.back(g[0].Start),
			BottomRight: f.back(ce.End),
			BottomLeft:  f.corner(lb, leftFloor),
		},
		{
			TopLeft:     f.back(ce.Start),
			TopRight:    f.corner(rb, rightCeiling),
			BottomRight: f.corner(rb, rightFloor),
			BottomLeft:  f.back(ce.End),
		},
	}
}

// reconstructType4 is the vertical mirror of type 3: the ceiling is cut off.
// Line 0 is the left floor edge, line 1 the divider (bottom to top), line 2
// the right floor edge.
func reconstructType4(f *frame, g []geom.Line) []geom.Polygon {
	leftFloor, rightFloor := geom.FitLine(g[0]), geom.FitLine(g[2])
	ce := g[1]
	a := slopeOf(ce)

	leftCeiling := edge(mirror(a, leftFloor.Slope), v(0, f.y), ce.End.Vec())
	rightCeiling := edge(mirror(a, rightFloor.Slope), ce.End.Vec(), v(f.x, f.y))
	lb, rb := f.left(a), f.right(a)

	return []geom.Polygon{
		{
			TopLeft:     f.corner(lb, leftCeiling),
			TopRight:    f.back(ce.End),
			BottomRight: f.back(ce.Start),
			BottomLeft:  f.corner(lb, leftFloor),
		},
		{
			TopLeft:     f.back(ce.End),
			TopRight:    f.corner(rb, rightCeiling),
			BottomRight: f.corner(rb, rightFloor),
			BottomLeft:  f.back(ce.Start),
		},
	}
}

// reconstructType5 handles two fully bounded walls. Line 2 is the divider
// (top to bottom); lines 0 and 1 are the left and right ceiling edges, 3 and
// 4 the left and right floor edges. No extrapolation is needed.
func reconstructType5(f *frame, g []geom.Line) []geom.Polygon {
	ce := g[2]
	a := slopeOf(ce)
	lb, rb := f.left(a), f.right(a)

	return []geom.Polygon{
		{
			TopLeft:     f.corner(lb, geom.FitLine(g[0])),
			TopRight:    f.back(ce.Start),
			BottomRight: f.back(ce.End),
			BottomLeft:  f.corner(lb, geom.FitLine(g[3])),
		},
		{
			TopLeft:     f.back(ce.Start),
			TopRight:    f.corner(rb, geom.FitLine(g[1])),
			BottomRight: f.corner(rb, geom.FitLine(g[4])),
			BottomLeft:  f.back(ce.End),
		},
	}
}

// reconstructType10 handles two walls where only the divider (line 0, top to
// bottom) is visible. Ceiling and floor edges are synthesized at the
// divider's perpendicular plus or minus the mirror angle.
func reconstructType10(f *frame, g []geom.Line) []geom.Polygon {
	ce := g[0]
	a := slopeOf(ce)
	p := math.Atan(perpendicular(a))

	leftTop := edge(math.Tan(p-f.angle), v(0, f.y), ce.Start.Vec())
	leftBottom := edge(math.Tan(p+f.angle), ce.End.Vec(), v(0, 0))
	rightTop := edge(math.Tan(p+f.angle), ce.Start.Vec(), v(f.x, f.y))
	rightBottom := edge(math.Tan(p-f.angle), v(f.x, 0), ce.End.Vec())
	lb, rb := f.left(a), f.right(a)

	return []geom.Polygon{
		{
			TopLeft:     f.corner(lb, leftTop),
			TopRight:    f.back(ce.Start),
			BottomRight: f.back(ce.End),
			BottomLeft:  f.corner(lb, leftBottom),
		},
		{
			TopLeft:     f.back(ce.Start),
			TopRight:    f.corner(rb, rightTop),
			BottomRight: f.corner(rb, rightBottom),
			BottomLeft:  f.back(ce.End),
		},
	}
}
