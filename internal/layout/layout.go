// Package layout reconstructs wall quadrilaterals from the boundary line
// segments of a classified room image.
//
// Each of the eleven room types has its own procedure. All procedures work
// in the geometric frame (y up), extend partially visible boundaries to the
// image border, and convert the resulting corners back to the image frame.
// Inputs are assumed to be validated: the room type is in range and the
// line count matches LineCounts.
package layout

import (
	"log/slog"
	"math"

	"github.com/gogpu/wallpreview/internal/geom"
)

// NumRoomTypes is the number of room layout classes.
const NumRoomTypes = 11

// SlopeEpsilon is the magnitude a zero slope is nudged to before it is
// inverted to form a perpendicular.
const SlopeEpsilon = 1e-9

// maxCoord bounds the magnitude of a corner before it is truncated to an
// integer. Larger values are treated as a degenerate intersection.
const maxCoord = 1 << 24

// LineCounts is the number of input lines each room type expects.
var LineCounts = [NumRoomTypes]int{8, 5, 5, 3, 3, 5, 2, 2, 1, 1, 1}

// PolygonCounts is the number of wall polygons each room type produces.
var PolygonCounts = [NumRoomTypes]int{3, 3, 3, 2, 2, 2, 1, 3, 1, 1, 2}

// Params holds the per-call inputs shared by all procedures.
type Params struct {
	// Width and Height are the image dimensions the lines refer to.
	Width, Height int

	// MirrorAngle is the angular offset, in radians, between a vertical
	// divider's perpendicular and the synthesized floor and ceiling edges
	// of room types 7 and 10.
	MirrorAngle float64

	// Logger receives warnings about degenerate geometry. Nil is silent.
	Logger *slog.Logger
}

type procedure func(f *frame, g []geom.Line) []geom.Polygon

var procedures = [NumRoomTypes]procedure{
	reconstructType0,
	reconstructType1,
	reconstructType2,
	reconstructType3,
	reconstructType4,
	reconstructType5,
	reconstructType6,
	reconstructType7,
	reconstructType8,
	reconstructType9,
	reconstructType10,
}

// Reconstruct returns the wall polygons, in image coordinates, for the given
// room type and its boundary lines. The result always has
// PolygonCounts[roomType] elements.
func Reconstruct(roomType int, lines []geom.Line, p Params) []geom.Polygon {
	f := &frame{
		x:      float64(p.Width - 1),
		y:      float64(p.Height - 1),
		width:  p.Width,
		height: p.Height,
		angle:  p.MirrorAngle,
		log:    p.Logger,
	}
	if f.log == nil {
		f.log = slog.New(slog.DiscardHandler)
	}
	return procedures[roomType](f, geom.ImageToGeoAll(lines, p.Height))
}

// frame carries the image extents and the helpers shared by the procedures.
// x and y are the largest valid pixel coordinates.
type frame struct {
	x, y          float64
	width, height int
	angle         float64
	log           *slog.Logger
}

// border is a line modelling the left or right edge of a wall, together
// with the image corner it is anchored at.
type border struct {
	geom.SlopeIntercept
	anchor geom.Vec
}

// v returns the geometric-frame point as a float vector.
func v(x, y float64) geom.Vec { return geom.Vec{X: x, Y: y} }

// back converts a geometric-frame point to the image frame.
func (f *frame) back(p geom.Point) geom.Point {
	return geom.PointToGeo(p, f.height)
}

// left returns the left border with the given slope. Rising borders are
// anchored at the top-left image corner, falling ones at the bottom-left.
func (f *frame) left(slope float64) border {
	a := v(0, 0)
	if slope >= 0 {
		a = v(0, f.y)
	}
	return border{geom.Through(slope, a), a}
}

// right returns the right border with the given slope. Rising borders are
// anchored at the bottom-right image corner, falling ones at the top-right.
func (f *frame) right(slope float64) border {
	a := v(f.x, f.y)
	if slope >= 0 {
		a = v(f.x, 0)
	}
	return border{geom.Through(slope, a), a}
}

// edge returns the line with the given slope through pos when the slope is
// non-negative and through neg otherwise.
func edge(slope float64, pos, neg geom.Vec) geom.SlopeIntercept {
	if slope >= 0 {
		return geom.Through(slope, pos)
	}
	return geom.Through(slope, neg)
}

// corner intersects a border with an edge and returns the truncated result
// in image coordinates. A degenerate intersection falls back to the
// border's anchor.
func (f *frame) corner(b border, e geom.SlopeIntercept) geom.Point {
	p := geom.Intersect(b.SlopeIntercept, e)
	if !p.Finite() || math.Abs(p.X) > maxCoord || math.Abs(p.Y) > maxCoord {
		f.log.Warn("layout: degenerate corner, using border anchor",
			"border_slope", b.Slope, "edge_slope", e.Slope,
			"anchor_x", b.anchor.X, "anchor_y", b.anchor.Y)
		p = b.anchor
	}
	return f.back(p.Trunc())
}

// mirror returns the slope of the edge that makes the same angle with the
// divider as the known edge, on the other side of it.
func mirror(divider, known float64) float64 {
	return math.Tan(2*math.Atan(divider) - math.Atan(known))
}

// perpendicular returns the slope perpendicular to slope. A zero slope is
// nudged away from zero, keeping its sign, before inversion.
func perpendicular(slope float64) float64 {
	if math.Abs(slope) < SlopeEpsilon {
		slope = math.Copysign(SlopeEpsilon, slope)
	}
	return -1 / slope
}

func slopeOf(l geom.Line) float64 { return geom.FitLine(l).Slope }
