package warp

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/wallpreview/internal/geom"
)

// ErrDegenerate is returned when a quadrilateral has no invertible
// projective mapping to its strip.
var ErrDegenerate = errors.New("warp: degenerate quadrilateral")

// Strip is a horizontal range [X0, X1] of the source image, spanning its
// full height.
type Strip struct {
	X0, X1 float64
}

// Warper maps destination pixels inside a quadrilateral back into a strip
// of the source image.
type Warper struct {
	src   *image.NRGBA
	inv   Projective
	strip Strip
	h     float64
	clip  image.Rectangle
}

// New returns a Warper that maps the strip of src onto quad, with strip
// corners (X0,0), (X1,0), (X1,H), (X0,H) going to quad's corners in order.
func New(src *image.NRGBA, strip Strip, quad [4]geom.Vec) (*Warper, error) {
	h := float64(src.Bounds().Dy())
	rect := [4]geom.Vec{
		{X: strip.X0, Y: 0},
		{X: strip.X1, Y: 0},
		{X: strip.X1, Y: h},
		{X: strip.X0, Y: h},
	}
	fwd := QuadToQuad(rect, quad)
	inv := QuadToQuad(quad, rect)
	if !fwd.Finite() || !inv.Finite() || fwd.Det() == 0 || inv.Det() == 0 {
		return nil, ErrDegenerate
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range quad {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	clip := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	)

	return &Warper{src: src, inv: inv, strip: strip, h: h, clip: clip}, nil
}

// Source returns the continuous source coordinate for the center of
// destination pixel (x, y). ok is false when it falls outside the strip.
func (w *Warper) Source(x, y int) (sx, sy float64, ok bool) {
	sx, sy, ok = w.inv.Apply(float64(x)+0.5, float64(y)+0.5)
	if !ok || sx < w.strip.X0 || sx > w.strip.X1 || sy < 0 || sy > w.h {
		return 0, 0, false
	}
	return sx, sy, true
}

// At returns the warped colour at destination pixel (x, y), or fully
// transparent when its source lies outside the strip.
func (w *Warper) At(x, y int) color.NRGBA {
	sx, sy, ok := w.Source(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return Bilinear(w.src, sx, sy)
}

// Rows writes the warped pixels of rows [y0, y1) into dst. Pixels whose
// source lies outside the strip are not written.
func (w *Warper) Rows(dst *image.NRGBA, y0, y1 int) {
	r := dst.Bounds().Intersect(w.clip)
	y0, y1 = max(y0, r.Min.Y), min(y1, r.Max.Y)
	for y := y0; y < y1; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sx, sy, ok := w.Source(x, y)
			if !ok {
				continue
			}
			dst.SetNRGBA(x, y, Bilinear(w.src, sx, sy))
		}
	}
}

// Bilinear samples img at the continuous pixel coordinate (x, y), where
// pixel (i, j) covers [i, i+1) x [j, j+1). Coordinates are clamped to the
// image edge.
func Bilinear(img *image.NRGBA, x, y float64) color.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return color.NRGBA{}
	}

	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clamp(x0+1, 0, w-1)
	y1 := clamp(y0+1, 0, h-1)
	x0 = clamp(x0, 0, w-1)
	y0 = clamp(y0, 0, h-1)

	p00 := img.Pix[img.PixOffset(b.Min.X+x0, b.Min.Y+y0):]
	p10 := img.Pix[img.PixOffset(b.Min.X+x1, b.Min.Y+y0):]
	p01 := img.Pix[img.PixOffset(b.Min.X+x0, b.Min.Y+y1):]
	p11 := img.Pix[img.PixOffset(b.Min.X+x1, b.Min.Y+y1):]

	var out [4]uint8
	for i := range out {
		v := lerp2D(float64(p00[i]), float64(p10[i]), float64(p01[i]), float64(p11[i]), tx, ty)
		out[i] = uint8(clampFloat(math.Round(v), 0, 255))
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerp2D interpolates between the four corner values.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}
