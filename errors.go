package wallpreview

import "errors"

var (
	// ErrInvalidRoomType is returned for a room type outside 0..10.
	ErrInvalidRoomType = errors.New("wallpreview: invalid room type")

	// ErrMalformedLineSet is returned when the number of lines does not
	// match what the room type expects.
	ErrMalformedLineSet = errors.New("wallpreview: malformed line set")

	// ErrInputShapeMismatch is returned when the photo, mask or tile are
	// empty, or when the mask and photo sizes differ.
	ErrInputShapeMismatch = errors.New("wallpreview: input shape mismatch")

	// ErrInvalidPolygonCount is returned when compositing is asked to
	// handle anything other than one to three wall polygons.
	ErrInvalidPolygonCount = errors.New("wallpreview: invalid polygon count")

	// ErrOverlappingWalls is returned when two wall polygons claim the
	// same mask pixel.
	ErrOverlappingWalls = errors.New("wallpreview: overlapping wall polygons")
)
