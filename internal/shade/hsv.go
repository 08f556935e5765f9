// Package shade transfers the lighting of a photographed wall onto the
// pattern that replaces it, by shifting brightness in HSV space.
package shade

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSV converts 8-bit RGB to hue in degrees [0, 360), saturation and
// value in [0, 1].
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	return toColorful(r, g, b).Hsv()
}

// HSVToRGB converts hue in degrees, saturation and value in [0, 1] back to
// 8-bit RGB. Inputs outside their range are clamped.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, clampUnit(s), clampUnit(v)).Clamped().RGB255()
}

// Value returns the HSV value (brightness) of an 8-bit RGB colour.
func Value(r, g, b uint8) float64 {
	return float64(max(r, g, b)) / 255
}

// Shift returns c with its HSV value moved by delta and clamped to [0, 1].
// Alpha is kept. A zero delta returns c unchanged.
func Shift(c color.NRGBA, delta float64) color.NRGBA {
	if delta == 0 {
		return c
	}
	h, s, v := RGBToHSV(c.R, c.G, c.B)
	r, g, b := HSVToRGB(h, s, v+delta)
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
