package layout

import "github.com/gogpu/wallpreview/internal/geom"

// reconstructType6 handles a single wall whose ceiling (line 0) and floor
// (line 1) are visible but whose sides run past the image. The side borders
// are near-vertical lines just outside x=0 and at x=W.
func reconstructType6(f *frame, g []geom.Line) []geom.Polygon {
	ceiling, floor := geom.FitLine(g[0]), geom.FitLine(g[1])

	lAnchor := v(0, f.y)
	rAnchor := v(float64(f.width-1), f.y)
	lb := border{geom.FitLine(geom.Ln(-1, 0, 0, f.height-1)), lAnchor}
	rb := border{geom.FitLine(geom.Ln(f.width, 0, f.width-1, f.height-1)), rAnchor}

	return []geom.Polygon{{
		TopLeft:     f.corner(lb, ceiling),
		TopRight:    f.corner(rb, ceiling),
		BottomRight: f.corner(rb, floor),
		BottomLeft:  f.corner(lb, floor),
	}}
}

// reconstructType8 handles a single wall where only the floor edge is cut
// off. Line 0 is the ceiling edge; the floor is placed parallel to it at the
// bottom of the image, and the sides run perpendicular to it.
func reconstructType8(f *frame, g []geom.Line) []geom.Polygon {
	ceiling := geom.FitLine(g[0])
	a := ceiling.Slope
	floor := edge(a, v(f.x, 0), v(0, 0))

	side := perpendicular(a)
	lb, rb := f.left(side), f.right(side)

	return []geom.Polygon{{
		TopLeft:     f.corner(lb, ceiling),
		TopRight:    f.corner(rb, ceiling),
		BottomRight: f.corner(rb, floor),
		BottomLeft:  f.corner(lb, floor),
	}}
}

// reconstructType9 handles a single wall where only the floor edge (line 0)
// is visible. The ceiling is placed parallel to it at the top of the image.
func reconstructType9(f *frame, g []geom.Line) []geom.Polygon {
	floor := geom.FitLine(g[0])
	a := floor.Slope
	ceiling := edge(a, v(0, f.y), v(f.x, f.y))

	side := perpendicular(a)
	lb, rb := f.left(side), f.right(side)

	return []geom.Polygon{{
		TopLeft:     f.corner(lb, ceiling),
		TopRight:    f.corner(rb, ceiling),
		BottomRight: f.corner(rb, floor),
		BottomLeft:  f.corner(lb, floor),
	}}
}
