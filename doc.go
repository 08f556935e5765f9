// Package wallpreview renders a wallpaper pattern onto the walls of a room
// photograph.
//
// # Overview
//
// The package solves two coupled problems:
//
//   - Reconstructing one to three wall quadrilaterals from the boundary line
//     segments of a room image and its room layout class (types 0 to 10).
//   - Compositing a repeating pattern onto those quadrilaterals with a
//     projective warp, while keeping the lighting of the original photo.
//
// Detecting the lines and the room type, and synthesizing a seamless tile,
// happen upstream and are not part of this package.
//
// # Quick Start
//
//	polygons, err := wallpreview.Reconstruct(5, lines, 512, 512)
//	if err != nil {
//	    return err
//	}
//
//	c := wallpreview.NewCompositor()
//	defer c.Close()
//	out, err := c.Composite(photo, mask, tile, polygons)
//
// # Coordinate System
//
// Points are integer pixel coordinates with the origin at the top-left and
// y increasing downward. Wall polygons are expressed at a reference
// resolution (512x512 by default) and rescaled to the photo by the
// compositor.
//
// # Architecture
//
//   - Public API: RoomType, RoomLayout, Reconstruct, Compositor, Preview
//   - internal/geom: points, lines, polygons and line algebra
//   - internal/layout: the eleven room type procedures
//   - internal/atlas, internal/warp, internal/shade: compositing stages
//   - internal/parallel: optional per-row parallelism
//   - internal/layoutviz: debug overlay of reconstructed polygons
//   - cmd/wallpreview: command line front end
package wallpreview

// Version is the current version of the library.
const Version = "0.1.0"
