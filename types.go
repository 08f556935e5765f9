package wallpreview

import (
	"fmt"

	"github.com/gogpu/wallpreview/internal/geom"
	"github.com/gogpu/wallpreview/internal/layout"
)

// Point is an integer pixel coordinate, origin top-left, y down.
type Point = geom.Point

// Line is an ordered line segment. The order of its endpoints decides
// which polygon corner each becomes.
type Line = geom.Line

// WallPolygon is the image-space quadrilateral occupied by one wall, with
// corners in {TopLeft, TopRight, BottomRight, BottomLeft} order.
type WallPolygon = geom.Polygon

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point { return geom.Pt(x, y) }

// Ln is a convenience function to create a Line.
func Ln(x1, y1, x2, y2 int) Line { return geom.Ln(x1, y1, x2, y2) }

// NumRoomTypes is the number of room layout classes.
const NumRoomTypes = layout.NumRoomTypes

// RoomType is a room layout class: which room corners, wall dividers,
// floor and ceiling edges are visible in the image.
type RoomType int

// Valid reports whether t is one of the known room types.
func (t RoomType) Valid() bool {
	return t >= 0 && t < NumRoomTypes
}

// LineCount returns the number of boundary lines the room type expects,
// or 0 for an invalid type.
func (t RoomType) LineCount() int {
	if !t.Valid() {
		return 0
	}
	return layout.LineCounts[t]
}

// PolygonCount returns the number of wall polygons the room type yields,
// or 0 for an invalid type.
func (t RoomType) PolygonCount() int {
	if !t.Valid() {
		return 0
	}
	return layout.PolygonCounts[t]
}

// String returns a string representation of the room type.
func (t RoomType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("RoomType(%d)", int(t))
	}
	return fmt.Sprintf("type %d", int(t))
}

// RoomLayout is a classified room image: its room type, the detected
// boundary lines, and the wall polygons reconstructed from them.
//
// The JSON form uses the field names of the mobile app's persisted layouts.
type RoomLayout struct {
	RoomType     RoomType      `json:"roomType"`
	Lines        []Line        `json:"edges"`
	WallPolygons []WallPolygon `json:"wallPolygons"`
}

// Validate checks the line and polygon counts against the room type.
// An empty polygon list is accepted; it means the polygons have not been
// reconstructed yet.
func (l RoomLayout) Validate() error {
	if err := checkLines(l.RoomType, len(l.Lines)); err != nil {
		return err
	}
	if n := len(l.WallPolygons); n != 0 && n != l.RoomType.PolygonCount() {
		return fmt.Errorf("%w: %v has %d wall polygons, want %d",
			ErrInvalidPolygonCount, l.RoomType, n, l.RoomType.PolygonCount())
	}
	return nil
}

func checkLines(t RoomType, n int) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidRoomType, int(t), NumRoomTypes-1)
	}
	if n != t.LineCount() {
		return fmt.Errorf("%w: %v expects %d lines, got %d", ErrMalformedLineSet, t, t.LineCount(), n)
	}
	return nil
}
