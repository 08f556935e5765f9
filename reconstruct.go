package wallpreview

import (
	"fmt"
	"math"

	"github.com/gogpu/wallpreview/internal/layout"
)

// Reconstruct returns the wall polygons for a room type and its detected
// boundary lines, in the image coordinates of a width x height image.
//
// The room type and line count are checked before any computation. The
// returned slice has roomType.PolygonCount() elements and the input lines
// are not modified. Options other than WithMirrorAngle have no effect.
func Reconstruct(roomType RoomType, lines []Line, width, height int, opts ...Option) ([]WallPolygon, error) {
	if err := checkLines(roomType, len(lines)); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInputShapeMismatch, width, height)
	}

	cfg := newConfig(opts)
	log := Logger()
	log.Debug("wallpreview: reconstructing walls",
		"room_type", int(roomType), "lines", len(lines), "width", width, "height", height)

	return layout.Reconstruct(int(roomType), lines, layout.Params{
		Width:       width,
		Height:      height,
		MirrorAngle: cfg.MirrorAngle * math.Pi / 180,
		Logger:      log,
	}), nil
}

// NewRoomLayout reconstructs the wall polygons and returns them together
// with their inputs.
func NewRoomLayout(roomType RoomType, lines []Line, width, height int, opts ...Option) (RoomLayout, error) {
	polygons, err := Reconstruct(roomType, lines, width, height, opts...)
	if err != nil {
		return RoomLayout{}, err
	}
	return RoomLayout{
		RoomType:     roomType,
		Lines:        append([]Line(nil), lines...),
		WallPolygons: polygons,
	}, nil
}
