package geom

import (
	"image"
	"testing"
)

func square() Polygon {
	return Polygon{
		TopLeft:     Pt(0, 0),
		TopRight:    Pt(10, 0),
		BottomRight: Pt(10, 10),
		BottomLeft:  Pt(0, 10),
	}
}

func TestPolygonContains(t *testing.T) {
	p := square()
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 5, 5, true},
		{"near corner", 0.5, 0.5, true},
		{"left edge", 0, 5, false},
		{"top edge", 5, 0, false},
		{"corner", 10, 10, false},
		{"outside right", 10.5, 5, false},
		{"outside above", 5, -0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPolygonContainsTrapezoid(t *testing.T) {
	p := Polygon{
		TopLeft:     Pt(294, 167),
		TopRight:    Pt(516, 83),
		BottomRight: Pt(539, 420),
		BottomLeft:  Pt(306, 343),
	}
	if !p.Contains(400, 250) {
		t.Error("Contains(400, 250) = false, want true")
	}
	if p.Contains(290, 250) {
		t.Error("Contains(290, 250) = true, want false")
	}
	if p.Contains(400, 100) {
		t.Error("Contains(400, 100) = true, want false")
	}
}

func TestPolygonIsSimple(t *testing.T) {
	tests := []struct {
		name string
		p    Polygon
		want bool
	}{
		{"square", square(), true},
		{"bowtie", Polygon{Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(0, 10)}, false},
		{"repeated corner", Polygon{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(0, 10)}, false},
		{"collinear fold", Polygon{Pt(0, 0), Pt(10, 0), Pt(5, 0), Pt(0, 10)}, false},
		{"outside image", Polygon{Pt(-36, -29), Pt(294, 167), Pt(306, 343), Pt(-1, 492)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsSimple(); got != tt.want {
				t.Errorf("IsSimple() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonArea(t *testing.T) {
	if got := square().Area(); got != 100 {
		t.Errorf("Area() = %v, want 100", got)
	}
	rev := Polygon{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	if got := rev.Area(); got != -100 {
		t.Errorf("reversed Area() = %v, want -100", got)
	}
}

func TestPolygonScale(t *testing.T) {
	p := Polygon{Pt(10, 20), Pt(30, 20), Pt(30, 41), Pt(-5, 41)}
	orig := p
	got := p.Scale(2, 0.5)
	want := Polygon{Pt(20, 10), Pt(60, 10), Pt(60, 21), Pt(-10, 21)}
	if got != want {
		t.Errorf("Scale(2, 0.5) = %v, want %v", got, want)
	}
	if p != orig {
		t.Errorf("Scale modified receiver: %v", p)
	}
}

func TestPolygonTopEdgeLength(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(3, 4), Pt(3, 10), Pt(0, 10)}
	if got := p.TopEdgeLength(); got != 5 {
		t.Errorf("TopEdgeLength() = %v, want 5", got)
	}
}

func TestPolygonBounds(t *testing.T) {
	p := Polygon{Pt(-3, 2), Pt(8, -1), Pt(9, 12), Pt(0, 7)}
	want := image.Rect(-3, -1, 10, 13)
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestPolygonEdges(t *testing.T) {
	e := square().Edges()
	for i := range e {
		if e[i].End != e[(i+1)%4].Start {
			t.Errorf("edge %d ends at %v, next starts at %v", i, e[i].End, e[(i+1)%4].Start)
		}
	}
	if e[0] != Ln(0, 0, 10, 0) {
		t.Errorf("Edges()[0] = %v, want top edge", e[0])
	}
}
