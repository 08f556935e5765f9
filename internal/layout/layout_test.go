package layout

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/wallpreview/internal/geom"
)

// fixtures holds one representative detected line set per room type, in
// image coordinates of a 512x512 reference image.
var fixtures = [NumRoomTypes][]geom.Line{
	0: {
		geom.Ln(116, 100, 72, 0), geom.Ln(116, 396, 64, 511),
		geom.Ln(344, 370, 511, 479), geom.Ln(342, 133, 496, 0),
		geom.Ln(116, 100, 116, 396), geom.Ln(116, 396, 344, 370),
		geom.Ln(344, 370, 342, 133), geom.Ln(342, 133, 116, 100),
	},
	1: {
		geom.Ln(153, 365, 154, 0), geom.Ln(153, 365, 24, 511),
		geom.Ln(153, 365, 441, 375), geom.Ln(441, 375, 446, 1),
		geom.Ln(441, 375, 510, 439),
	},
	2: {
		geom.Ln(101, 35, 86, 1), geom.Ln(101, 35, 93, 510),
		geom.Ln(101, 35, 336, 42), geom.Ln(336, 42, 365, 1),
		geom.Ln(336, 42, 336, 510),
	},
	3: {geom.Ln(31, 110, 0, 97), geom.Ln(31, 110, 20, 511), geom.Ln(31, 110, 511, 0)},
	4: {geom.Ln(482, 471, 1, 422), geom.Ln(482, 471, 504, 1), geom.Ln(482, 471, 491, 512)},
	5: {
		geom.Ln(294, 167, 13, 0), geom.Ln(294, 167, 511, 85),
		geom.Ln(294, 167, 306, 343), geom.Ln(306, 343, 0, 491),
		geom.Ln(306, 343, 511, 410),
	},
	6:  {geom.Ln(142, 0, 511, 75), geom.Ln(2, 511, 511, 346)},
	7:  {geom.Ln(51, 510, 0, 0), geom.Ln(417, 510, 419, 1)},
	8:  {geom.Ln(0, 127, 511, 95)},
	9:  {geom.Ln(0, 311, 511, 305)},
	10: {geom.Ln(292, 0, 312, 511)},
}

func quad(x0, y0, x1, y1, x2, y2, x3, y3 int) geom.Polygon {
	return geom.Polygon{
		TopLeft:     geom.Pt(x0, y0),
		TopRight:    geom.Pt(x1, y1),
		BottomRight: geom.Pt(x2, y2),
		BottomLeft:  geom.Pt(x3, y3),
	}
}

// expected holds reference outputs for the fixtures with a 30 degree
// mirror angle.
var expected = [NumRoomTypes][]geom.Polygon{
	0: {
		quad(0, -163, 116, 100, 116, 396, 0, 652),
		quad(116, 100, 342, 133, 344, 370, 116, 396),
		quad(342, 133, 510, -12, 515, 482, 344, 370),
	},
	1: {
		quad(0, -175, 154, 0, 153, 365, -1, 539),
		quad(154, 0, 446, 1, 441, 375, 153, 365),
		quad(446, 1, 518, -62, 511, 441, 441, 375),
	},
	2: {
		quad(3, -186, 101, 35, 93, 510, -12, 728),
		quad(101, 35, 336, 42, 336, 510, 93, 510),
		quad(336, 42, 510, -205, 511, 757, 336, 510),
	},
	3: {
		quad(-2, 96, 31, 110, 20, 511, -14, 523),
		quad(31, 110, 525, -3, 507, 651, 20, 511),
	},
	4: {
		quad(0, 0, 504, 1, 482, 471, -19, 420),
		quad(504, 1, 540, -112, 507, 586, 482, 471),
	},
	5: {
		quad(-36, -29, 294, 167, 306, 343, -1, 492),
		quad(294, 167, 516, 83, 539, 420, 306, 343),
	},
	6: {quad(0, -28, 511, 76, 511, 346, -1, 511)},
	7: {
		quad(-53, -24, 0, 0, 51, 510, 3, 544),
		quad(0, 0, 419, 1, 417, 510, 51, 510),
		quad(419, 1, 513, -52, 510, 564, 417, 510),
	},
	8: {quad(-23, 129, 516, 95, 542, 510, 1, 542)},
	9: {quad(-5, 1, 510, -5, 514, 305, -2, 312)},
	10: {
		quad(-26, -167, 292, 0, 312, 511, 7, 703),
		quad(292, 0, 505, -134, 535, 628, 312, 511),
	},
}

func reference() Params {
	return Params{Width: 512, Height: 512, MirrorAngle: 30 * math.Pi / 180}
}

func nearPoint(a, b geom.Point, tol int) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx >= -tol && dx <= tol && dy >= -tol && dy <= tol
}

func TestReconstructFixtures(t *testing.T) {
	for rt := range NumRoomTypes {
		t.Run(roomName(rt), func(t *testing.T) {
			got := Reconstruct(rt, fixtures[rt], reference())
			if len(got) != PolygonCounts[rt] {
				t.Fatalf("Reconstruct() returned %d polygons, want %d", len(got), PolygonCounts[rt])
			}
			for i, p := range got {
				want := expected[rt][i].Corners()
				for j, c := range p.Corners() {
					// Trigonometric rounding may move a truncated corner by one pixel.
					if !nearPoint(c, want[j], 1) {
						t.Errorf("polygon %d corner %d = %v, want %v", i, j, c, want[j])
					}
				}
			}
		})
	}
}

func TestReconstructPolygonsAreSimple(t *testing.T) {
	for rt := range NumRoomTypes {
		for i, p := range Reconstruct(rt, fixtures[rt], reference()) {
			if !p.IsSimple() {
				t.Errorf("type %d polygon %d = %v is not simple", rt, i, p)
			}
			if p.Area() <= 0 {
				t.Errorf("type %d polygon %d area = %v, want > 0", rt, i, p.Area())
			}
		}
	}
}

func TestReconstructType5Exact(t *testing.T) {
	got := Reconstruct(5, fixtures[5], reference())
	for i := range expected[5] {
		if got[i] != expected[5][i] {
			t.Errorf("polygon %d = %v, want %v", i, got[i], expected[5][i])
		}
	}
	// Adjacent walls share the divider.
	if got[0].TopRight != got[1].TopLeft || got[0].BottomRight != got[1].BottomLeft {
		t.Errorf("walls do not share the divider: %v, %v", got[0], got[1])
	}
}

func TestReconstructSharedDividers(t *testing.T) {
	for _, rt := range []int{0, 1, 2, 7} {
		got := Reconstruct(rt, fixtures[rt], reference())
		left, center, right := got[0], got[1], got[2]
		if left.TopRight != center.TopLeft || left.BottomRight != center.BottomLeft {
			t.Errorf("type %d: left %v and center %v do not share an edge", rt, left, center)
		}
		if center.TopRight != right.TopLeft || center.BottomRight != right.BottomLeft {
			t.Errorf("type %d: center %v and right %v do not share an edge", rt, center, right)
		}
	}
}

func TestReconstructType0KeepsDividers(t *testing.T) {
	got := Reconstruct(0, fixtures[0], reference())
	c := got[1]
	want := quad(116, 100, 342, 133, 344, 370, 116, 396)
	if c != want {
		t.Errorf("center wall = %v, want %v", c, want)
	}
}

func TestReconstructDoesNotModifyInput(t *testing.T) {
	lines := append([]geom.Line(nil), fixtures[1]...)
	Reconstruct(1, lines, reference())
	for i := range lines {
		if lines[i] != fixtures[1][i] {
			t.Errorf("line %d = %v, want %v", i, lines[i], fixtures[1][i])
		}
	}
}

func TestReconstructScalesWithImageSize(t *testing.T) {
	// A horizontal wall edge in a wider image still spans the full width.
	p := Params{Width: 1024, Height: 512, MirrorAngle: reference().MirrorAngle}
	got := Reconstruct(9, []geom.Line{geom.Ln(0, 300, 1023, 300)}, p)
	if len(got) != 1 {
		t.Fatalf("Reconstruct() returned %d polygons, want 1", len(got))
	}
	w := got[0]
	if w.TopRight.X != 1023 || w.BottomRight.X != 1023 {
		t.Errorf("right side = %v, %v, want x = 1023", w.TopRight, w.BottomRight)
	}
	if w.BottomLeft.Y != 300 || w.BottomRight.Y != 300 {
		t.Errorf("floor corners = %v, %v, want y = 300", w.BottomLeft, w.BottomRight)
	}
	if w.TopLeft.Y != 0 || w.TopRight.Y != 0 {
		t.Errorf("ceiling corners = %v, %v, want y = 0", w.TopLeft, w.TopRight)
	}
}

func TestReconstructHorizontalEdge(t *testing.T) {
	// A horizontal ceiling makes the perpendicular sides vertical.
	got := Reconstruct(8, []geom.Line{geom.Ln(0, 100, 511, 100)}, reference())
	want := quad(0, 100, 511, 100, 511, 511, 0, 511)
	if got[0] != want {
		t.Errorf("horizontal type 8 = %v, want %v", got[0], want)
	}
}

func TestReconstructZeroMirrorAngle(t *testing.T) {
	p := reference()
	p.MirrorAngle = 0
	want := []geom.Polygon{
		quad(-19, 1, 292, 0, 312, 511, 0, 523),
		quad(292, 0, 510, -8, 530, 511, 312, 511),
	}
	got := Reconstruct(10, fixtures[10], p)
	for i := range want {
		w := want[i].Corners()
		for j, c := range got[i].Corners() {
			if !nearPoint(c, w[j], 1) {
				t.Errorf("polygon %d corner %d = %v, want %v", i, j, c, w[j])
			}
		}
	}
}

func TestCornerFallbackLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	f := &frame{
		x: 511, y: 511, width: 512, height: 512,
		log: slog.New(slog.NewTextHandler(&buf, nil)),
	}
	b := f.left(1)
	got := f.corner(b, geom.SlopeIntercept{Slope: 1, Intercept: 7})
	if want := geom.Pt(0, 0); got != want {
		t.Errorf("corner() = %v, want anchor %v", got, want)
	}
	if !strings.Contains(buf.String(), "degenerate corner") {
		t.Errorf("expected warning, got log %q", buf.String())
	}
}

func TestPerpendicular(t *testing.T) {
	tests := []struct {
		slope float64
		want  float64
	}{
		{1, -1},
		{-2, 0.5},
		{0, -1 / SlopeEpsilon},
		{math.Copysign(0, -1), 1 / SlopeEpsilon},
	}
	for _, tt := range tests {
		got := perpendicular(tt.slope)
		if math.IsInf(got, 0) || math.Abs(got-tt.want) > 1e-9*math.Abs(tt.want) {
			t.Errorf("perpendicular(%v) = %v, want %v", tt.slope, got, tt.want)
		}
	}
}

func TestMirror(t *testing.T) {
	// Mirroring about a horizontal divider negates the slope, and an edge
	// collinear with the divider mirrors onto itself.
	if got := mirror(0, 0.5); math.Abs(got+0.5) > 1e-12 {
		t.Errorf("mirror(0, 0.5) = %v, want -0.5", got)
	}
	if got := mirror(1, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("mirror(1, 1) = %v, want 1", got)
	}
}

func TestCounts(t *testing.T) {
	for rt := range NumRoomTypes {
		if len(fixtures[rt]) != LineCounts[rt] {
			t.Errorf("fixture %d has %d lines, LineCounts says %d", rt, len(fixtures[rt]), LineCounts[rt])
		}
		if len(expected[rt]) != PolygonCounts[rt] {
			t.Errorf("expected %d has %d polygons, PolygonCounts says %d", rt, len(expected[rt]), PolygonCounts[rt])
		}
	}
}

func roomName(rt int) string {
	return fmt.Sprintf("type%d", rt)
}
