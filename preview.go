package wallpreview

import "image"

// Preview composites tile onto the walls described by layout in one call.
//
// When layout has no wall polygons they are reconstructed from its lines at
// the configured reference resolution. The layout is validated first.
func Preview(photo image.Image, mask *image.Gray, tile image.Image, layout RoomLayout, opts ...Option) (*image.RGBA, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	polygons := layout.WallPolygons
	if len(polygons) == 0 {
		cfg := newConfig(opts)
		var err error
		polygons, err = Reconstruct(layout.RoomType, layout.Lines, cfg.ReferenceWidth, cfg.ReferenceHeight, opts...)
		if err != nil {
			return nil, err
		}
	}

	c := NewCompositor(opts...)
	defer c.Close()
	return c.Composite(photo, mask, tile, polygons)
}
