// Package atlas sizes and assembles the repeated pattern image that is
// warped onto the walls.
package atlas

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/wallpreview/internal/geom"
)

// WidthShares returns the fraction of the atlas width allocated to each
// polygon. The shares sum to 1.
//
// One polygon gets the whole atlas. Two polygons split it in proportion to
// their top edge lengths. With three polygons, the side walls together get
// (visible-1)/visible, split in proportion to their top edge lengths, and
// the center wall gets the remaining 1/visible. Zero lengths split evenly.
// The result is nil for any other polygon count.
func WidthShares(polygons []geom.Polygon, visible int) []float64 {
	switch len(polygons) {
	case 1:
		return []float64{1}
	case 2:
		a, b := split(polygons[0].TopEdgeLength(), polygons[1].TopEdgeLength(), 1)
		return []float64{a, b}
	case 3:
		visible = max(visible, 1)
		center := 1 / float64(visible)
		left, right := split(polygons[0].TopEdgeLength(), polygons[2].TopEdgeLength(), 1-center)
		return []float64{left, center, right}
	default:
		return nil
	}
}

// split divides total between a and b in proportion to their lengths.
func split(a, b, total float64) (float64, float64) {
	sum := a + b
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return total / 2, total / 2
	}
	first := total * a / sum
	return first, total - first
}

// Offsets returns the cumulative start of each share.
func Offsets(shares []float64) []float64 {
	out := make([]float64, len(shares))
	var acc float64
	for i, s := range shares {
		out[i] = acc
		acc += s
	}
	return out
}

// Repeats returns how many times the tile repeats horizontally (m) and
// vertically (n) to cover the visible pattern.
//
// patternWidth and wallHeight are physical sizes; tileWidth and tileHeight
// are the physical size of one tile.
func Repeats(patternWidth, wallHeight, tileWidth, tileHeight float64) (m, n float64) {
	return patternWidth / tileWidth, wallHeight / tileHeight
}

// Size returns the atlas size for a w×h tile repeated m×n times.
func Size(w, h int, m, n float64) (int, int) {
	return int(math.Ceil(float64(w) * m)), int(math.Ceil(float64(h) * n))
}

// Assemble tiles src into an atlas repeating it m times horizontally and n
// times vertically. Atlas pixel (x, y) equals tile pixel (x mod w, y mod h).
func Assemble(src image.Image, m, n float64) *image.NRGBA {
	b := src.Bounds()
	tw, th := b.Dx(), b.Dy()

	tile := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.Draw(tile, tile.Bounds(), src, b.Min, xdraw.Src)

	aw, ah := Size(tw, th, m, n)
	dst := image.NewNRGBA(image.Rect(0, 0, aw, ah))
	if aw <= 0 || ah <= 0 || tw == 0 || th == 0 {
		return dst
	}

	rowBytes := tw * 4
	for y := range ah {
		srcRow := tile.Pix[(y%th)*tile.Stride : (y%th)*tile.Stride+rowBytes]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+aw*4]
		for x := 0; x < len(dstRow); x += rowBytes {
			copy(dstRow[x:], srcRow)
		}
	}
	return dst
}
