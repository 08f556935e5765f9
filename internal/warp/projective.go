// Package warp maps a rectangular strip of a source image onto an
// arbitrary quadrilateral with a projective transform.
package warp

import (
	"math"

	"github.com/gogpu/wallpreview/internal/geom"
)

// Projective is a 3x3 homogeneous transform in row-major order:
//
//	| a b c |   | x |
//	| d e f | * | y |
//	| g h i |   | 1 |
//
// The mapped point is ((a*x + b*y + c) / w, (d*x + e*y + f) / w) with
// w = g*x + h*y + i.
type Projective [9]float64

// Identity returns the identity transform.
func Identity() Projective {
	return Projective{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// SquareToQuad returns the transform mapping the unit square corners
// (0,0), (1,0), (1,1), (0,1) onto q[0], q[1], q[2], q[3].
func SquareToQuad(q [4]geom.Vec) Projective {
	x0, y0 := q[0].X, q[0].Y
	x1, y1 := q[1].X, q[1].Y
	x2, y2 := q[2].X, q[2].Y
	x3, y3 := q[3].X, q[3].Y

	dx3 := x0 - x1 + x2 - x3
	dy3 := y0 - y1 + y2 - y3
	if dx3 == 0 && dy3 == 0 {
		// Parallelogram: the transform is affine.
		return Projective{
			x1 - x0, x2 - x1, x0,
			y1 - y0, y2 - y1, y0,
			0, 0, 1,
		}
	}

	dx1, dx2 := x1-x2, x3-x2
	dy1, dy2 := y1-y2, y3-y2
	den := dx1*dy2 - dx2*dy1
	g := (dx3*dy2 - dx2*dy3) / den
	h := (dx1*dy3 - dx3*dy1) / den
	return Projective{
		x1 - x0 + g*x1, x3 - x0 + h*x3, x0,
		y1 - y0 + g*y1, y3 - y0 + h*y3, y0,
		g, h, 1,
	}
}

// QuadToQuad returns the transform mapping src[i] onto dst[i] for each of
// the four corners.
func QuadToQuad(src, dst [4]geom.Vec) Projective {
	return SquareToQuad(dst).Mul(SquareToQuad(src).Adjoint())
}

// Adjoint returns the adjugate matrix. It is the inverse up to a scale
// factor, which a projective transform ignores.
func (p Projective) Adjoint() Projective {
	a, b, c := p[0], p[1], p[2]
	d, e, f := p[3], p[4], p[5]
	g, h, i := p[6], p[7], p[8]
	return Projective{
		e*i - f*h, c*h - b*i, b*f - c*e,
		f*g - d*i, a*i - c*g, c*d - a*f,
		d*h - e*g, b*g - a*h, a*e - b*d,
	}
}

// Mul returns p * o, the transform that applies o first and then p.
func (p Projective) Mul(o Projective) Projective {
	var r Projective
	for row := range 3 {
		for col := range 3 {
			r[row*3+col] = p[row*3]*o[col] + p[row*3+1]*o[3+col] + p[row*3+2]*o[6+col]
		}
	}
	return r
}

// Det returns the determinant.
func (p Projective) Det() float64 {
	return p[0]*(p[4]*p[8]-p[5]*p[7]) -
		p[1]*(p[3]*p[8]-p[5]*p[6]) +
		p[2]*(p[3]*p[7]-p[4]*p[6])
}

// Finite reports whether every entry is finite.
func (p Projective) Finite() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Apply maps (x, y). ok is false when the point maps to infinity.
func (p Projective) Apply(x, y float64) (px, py float64, ok bool) {
	w := p[6]*x + p[7]*y + p[8]
	if w == 0 {
		return 0, 0, false
	}
	px = (p[0]*x + p[1]*y + p[2]) / w
	py = (p[3]*x + p[4]*y + p[5]) / w
	return px, py, true
}
