// Command wallpreview renders a wallpaper pattern onto the walls of a room
// photo.
//
// Usage:
//
//	wallpreview -photo room.jpg -mask walls.png -tile pattern.png \
//	    -layout layout.json -out preview.png
//
// The layout file holds a room layout as JSON: the room type, the detected
// boundary lines and, optionally, the wall polygons. Missing polygons are
// reconstructed from the lines.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/wallpreview"
	"github.com/gogpu/wallpreview/internal/geom"
	"github.com/gogpu/wallpreview/internal/layoutviz"
)

type options struct {
	photo, mask, tile, layout string
	out, overlay, atlas       string
	minResolution             int
	workers                   int
	threshold                 uint
	visibleWalls              int
	mirrorAngle               float64
	verbose                   bool
}

func main() {
	var o options
	flag.StringVar(&o.photo, "photo", "", "room photo (PNG, JPEG or WebP)")
	flag.StringVar(&o.mask, "mask", "", "wall segmentation image")
	flag.StringVar(&o.tile, "tile", "", "wallpaper pattern tile")
	flag.StringVar(&o.layout, "layout", "", "room layout JSON file")
	flag.StringVar(&o.out, "out", "preview.png", "output file")
	flag.StringVar(&o.overlay, "overlay", "", "write the layout overlay to this file")
	flag.StringVar(&o.atlas, "atlas", "", "write the pattern atlas to this file")
	flag.IntVar(&o.minResolution, "min-resolution", 1024, "upscale photos whose shorter side is below this (0 disables)")
	flag.IntVar(&o.workers, "workers", 0, "worker goroutines (0 uses all CPUs)")
	flag.UintVar(&o.threshold, "mask-threshold", wallpreview.DefaultMaskThreshold, "grey level above which a mask pixel is wall")
	flag.IntVar(&o.visibleWalls, "visible-walls", 2, "number of walls a room is assumed to show")
	flag.Float64Var(&o.mirrorAngle, "mirror-angle", 30, "assumed wall angle in degrees for single-divider rooms")
	flag.BoolVar(&o.verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())
	slog.SetDefault(logger)
	wallpreview.SetLogger(logger)

	if err := run(o, logger); err != nil {
		logger.Error("wallpreview failed", "error", err)
		os.Exit(1)
	}
}

func run(o options, logger *slog.Logger) error {
	if o.photo == "" || o.mask == "" || o.tile == "" || o.layout == "" {
		return errors.New("-photo, -mask, -tile and -layout are required")
	}
	if o.threshold > 255 {
		return fmt.Errorf("-mask-threshold %d out of range 0..255", o.threshold)
	}

	photo, err := decode(o.photo)
	if err != nil {
		return err
	}
	seg, err := decode(o.mask)
	if err != nil {
		return err
	}
	tile, err := decode(o.tile)
	if err != nil {
		return err
	}
	layout, err := readLayout(o.layout)
	if err != nil {
		return err
	}

	opts := []wallpreview.Option{
		wallpreview.WithMinResolution(o.minResolution),
		wallpreview.WithWorkers(o.workers),
		wallpreview.WithVisibleWalls(o.visibleWalls),
		wallpreview.WithMirrorAngle(o.mirrorAngle),
	}
	compositor := wallpreview.NewCompositor(opts...)
	defer compositor.Close()
	conf := compositor.Config()

	if len(layout.WallPolygons) == 0 {
		layout, err = wallpreview.NewRoomLayout(layout.RoomType, layout.Lines, conf.ReferenceWidth, conf.ReferenceHeight, opts...)
		if err != nil {
			return err
		}
		logger.Debug("reconstructed walls", "room_type", layout.RoomType, "polygons", len(layout.WallPolygons))
	}

	mask := wallMask(seg, photo.Bounds(), uint8(o.threshold))
	r, err := compositor.Render(photo, mask, tile, layout.WallPolygons)
	if err != nil {
		return err
	}
	if err := writePNG(o.out, r.Image); err != nil {
		return err
	}
	if o.atlas != "" {
		if err := writePNG(o.atlas, r.Atlas); err != nil {
			return err
		}
	}
	if o.overlay != "" {
		pb := photo.Bounds()
		sx := float64(pb.Dx()) / float64(conf.ReferenceWidth)
		sy := float64(pb.Dy()) / float64(conf.ReferenceHeight)
		img, _, err := layoutviz.Overlay(photo, scalePolygons(layout.WallPolygons, sx, sy),
			scaleLines(layout.Lines, sx, sy), layoutviz.DefaultStyle())
		if err != nil {
			return err
		}
		if err := writePNG(o.overlay, img); err != nil {
			return err
		}
	}

	p := message.NewPrinter(language.English)
	b := r.Image.Bounds()
	p.Fprintf(os.Stdout, "%s: %v, %d walls, %d of %d pixels papered, %dx%d (scale %.2f)\n",
		o.out, layout.RoomType, len(r.Polygons), papered(r.Wallpaper), b.Dx()*b.Dy(), b.Dx(), b.Dy(), r.Scale)
	return nil
}

// wallMask resizes a segmentation output to the photo size with nearest
// neighbour sampling, then binarizes it.
func wallMask(seg image.Image, photo image.Rectangle, threshold uint8) *image.Gray {
	if seg.Bounds().Size() != photo.Size() {
		resized := image.NewGray(image.Rect(0, 0, photo.Dx(), photo.Dy()))
		xdraw.NearestNeighbor.Scale(resized, resized.Bounds(), seg, seg.Bounds(), xdraw.Src, nil)
		seg = resized
	}
	return wallpreview.BinarizeMask(seg, threshold)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	slog.Debug("decoded image", "path", path, "format", format, "size", img.Bounds().Size())
	return img, nil
}

func readLayout(path string) (wallpreview.RoomLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wallpreview.RoomLayout{}, err
	}
	var l wallpreview.RoomLayout
	if err := json.Unmarshal(data, &l); err != nil {
		return wallpreview.RoomLayout{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return wallpreview.RoomLayout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func scalePolygons(polygons []wallpreview.WallPolygon, sx, sy float64) []geom.Polygon {
	out := make([]geom.Polygon, len(polygons))
	for i, p := range polygons {
		out[i] = p.Scale(sx, sy)
	}
	return out
}

func scaleLines(lines []wallpreview.Line, sx, sy float64) []geom.Line {
	out := make([]geom.Line, len(lines))
	for i, l := range lines {
		out[i] = l.Scale(sx, sy)
	}
	return out
}

// papered counts the pixels that received the pattern.
func papered(wallpaper *image.NRGBA) int {
	n := 0
	for i := 3; i < len(wallpaper.Pix); i += 4 {
		if wallpaper.Pix[i] != 0 {
			n++
		}
	}
	return n
}
