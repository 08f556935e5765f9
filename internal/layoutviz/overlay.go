// Package layoutviz draws reconstructed room layouts over their photo for
// visual inspection.
package layoutviz

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/wallpreview/internal/geom"
)

// Style controls how an overlay is drawn.
type Style struct {
	// LineWidth is the stroke width of polygon edges, in pixels.
	LineWidth float64

	// Margin is the padding added around the union of the photo and the
	// polygons, in pixels.
	Margin int

	// CornerRadius is the radius of the dots marking polygon corners.
	// Zero disables them.
	CornerRadius float64
}

// DefaultStyle returns the style used by the command line tool.
func DefaultStyle() Style {
	return Style{LineWidth: 3, Margin: 8, CornerRadius: 4}
}

// Wall colours, cycled by polygon index.
var palette = []gg.RGBA{
	gg.RGB(0.95, 0.2, 0.2),
	gg.RGB(0.2, 0.85, 0.3),
	gg.RGB(0.25, 0.45, 1),
}

// Overlay draws the polygon outlines and the detected lines over photo.
//
// Wall polygons may extend past the image, so the canvas is padded to hold
// every corner. The returned point is where the photo's origin lies in the
// canvas. The first drawing error stops the overlay.
func Overlay(photo image.Image, polygons []geom.Polygon, lines []geom.Line, style Style) (image.Image, image.Point, error) {
	pb := photo.Bounds()
	r := image.Rect(0, 0, pb.Dx(), pb.Dy())
	for _, p := range polygons {
		r = r.Union(p.Bounds())
	}
	for _, l := range lines {
		r = r.Union(image.Rectangle{Min: image.Pt(l.Start.X, l.Start.Y), Max: image.Pt(l.Start.X+1, l.Start.Y+1)})
		r = r.Union(image.Rectangle{Min: image.Pt(l.End.X, l.End.Y), Max: image.Pt(l.End.X+1, l.End.Y+1)})
	}
	r = r.Inset(-style.Margin)
	origin := image.Pt(-r.Min.X, -r.Min.Y)

	canvas := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Draw(canvas, image.Rectangle{Min: origin, Max: origin.Add(pb.Size())}, photo, pb.Min, xdraw.Src)

	dc := gg.NewContextForImage(canvas)
	defer func() { _ = dc.Close() }()
	dc.Translate(float64(origin.X), float64(origin.Y))
	dc.SetLineWidth(style.LineWidth)

	for i, p := range polygons {
		dc.SetColor(palette[i%len(palette)].Color())
		for _, e := range p.Edges() {
			dc.DrawLine(float64(e.Start.X), float64(e.Start.Y), float64(e.End.X), float64(e.End.Y))
			if err := dc.Stroke(); err != nil {
				return nil, origin, fmt.Errorf("layoutviz: wall %d edge: %w", i, err)
			}
		}
		if style.CornerRadius <= 0 {
			continue
		}
		for _, c := range p.Corners() {
			dc.DrawCircle(float64(c.X), float64(c.Y), style.CornerRadius)
			if err := dc.Fill(); err != nil {
				return nil, origin, fmt.Errorf("layoutviz: wall %d corner: %w", i, err)
			}
		}
	}

	dc.SetColor(color.NRGBA{R: 255, G: 230, B: 0, A: 255})
	dc.SetLineWidth(style.LineWidth / 2)
	for k, l := range lines {
		dc.DrawLine(float64(l.Start.X), float64(l.Start.Y), float64(l.End.X), float64(l.End.Y))
		if err := dc.Stroke(); err != nil {
			return nil, origin, fmt.Errorf("layoutviz: line %d: %w", k, err)
		}
	}
	return dc.Image(), origin, nil
}
