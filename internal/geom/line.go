package geom

// FitEpsilon is added to both coordinates of a line's end point when the
// line is vertical, so that its fitted slope is very large but finite.
const FitEpsilon = 1e-5

// Line is an ordered line segment. The order of the endpoints decides which
// polygon corner each one becomes downstream.
type Line struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Ln is a convenience function to create a Line from four coordinates.
func Ln(x1, y1, x2, y2 int) Line {
	return Line{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
}

// Scale returns the line with both endpoints scaled by (sx, sy) and
// rounded to the nearest pixel.
func (l Line) Scale(sx, sy float64) Line {
	return Line{Start: l.Start.Scale(sx, sy), End: l.End.Scale(sx, sy)}
}

// ImageToGeo converts a line between the image frame and the geometric
// frame. The conversion is its own inverse.
func ImageToGeo(l Line, height int) Line {
	return Line{
		Start: Point{X: l.Start.X, Y: height - 1 - l.Start.Y},
		End:   Point{X: l.End.X, Y: height - 1 - l.End.Y},
	}
}

// ImageToGeoAll converts every line with ImageToGeo and returns a new slice.
func ImageToGeoAll(lines []Line, height int) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = ImageToGeo(l, height)
	}
	return out
}

// PointToGeo converts a single point between frames.
func PointToGeo(p Point, height int) Point {
	return Point{X: p.X, Y: height - 1 - p.Y}
}

// SlopeIntercept is the y = Slope*x + Intercept form of a line.
type SlopeIntercept struct {
	Slope     float64
	Intercept float64
}

// At returns y for the given x.
func (s SlopeIntercept) At(x float64) float64 {
	return s.Slope*x + s.Intercept
}

// FitLine fits a first degree polynomial through the two endpoints of l by
// least squares.
func FitLine(l Line) SlopeIntercept {
	x1, y1 := float64(l.Start.X), float64(l.Start.Y)
	x2, y2 := float64(l.End.X), float64(l.End.Y)
	if l.Start.X == l.End.X {
		x2 += FitEpsilon
		y2 += FitEpsilon
	}

	mx := (x1 + x2) / 2
	my := (y1 + y2) / 2
	sxx := (x1-mx)*(x1-mx) + (x2-mx)*(x2-mx)
	sxy := (x1-mx)*(y1-my) + (x2-mx)*(y2-my)

	slope := sxy / sxx
	return SlopeIntercept{Slope: slope, Intercept: my - slope*mx}
}

// InterceptAt returns the intercept of the line with the given slope that
// passes through p.
func InterceptAt(slope float64, p Vec) float64 {
	return p.Y - slope*p.X
}

// Through returns the line with the given slope passing through p.
func Through(slope float64, p Vec) SlopeIntercept {
	return SlopeIntercept{Slope: slope, Intercept: InterceptAt(slope, p)}
}

// Intersect returns the intersection point of two lines.
//
// The result is undefined for parallel lines; callers choose their inputs so
// that this cannot happen and check Vec.Finite where it might.
func Intersect(a, b SlopeIntercept) Vec {
	//   a1*x + b1 = a2*x + b2
	//   x = (b1 - b2) / (a2 - a1)
	x := (a.Intercept - b.Intercept) / (b.Slope - a.Slope)
	return Vec{X: x, Y: a.Slope*x + a.Intercept}
}
