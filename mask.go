package wallpreview

import (
	"image"
	"image/color"
)

// DefaultMaskThreshold is the grey level above which a segmentation output
// pixel counts as wall.
const DefaultMaskThreshold = 50

// BinarizeMask converts a segmentation output into a wall mask: pixels whose
// grey level is above threshold become 255, all others 0. The result starts
// at the origin.
func BinarizeMask(img image.Image, threshold uint8) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := out.Pix[(y-b.Min.Y)*out.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if g > threshold {
				row[x-b.Min.X] = 0xff
			}
		}
	}
	return out
}
