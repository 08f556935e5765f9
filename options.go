package wallpreview

// Config holds the physical and geometric assumptions of the pipeline.
// Use DefaultConfig and Option values rather than filling it by hand.
type Config struct {
	// ReferenceWidth and ReferenceHeight are the resolution wall polygons
	// are expressed in.
	ReferenceWidth, ReferenceHeight int

	// MinResolution is the floor for the shorter photo side. Smaller photos
	// are upscaled before compositing. Zero disables upscaling.
	MinResolution int

	// WallWidth and WallHeight are the assumed physical wall size, in
	// meters.
	WallWidth, WallHeight float64

	// TileWidth and TileHeight are the physical size of one pattern tile,
	// in meters.
	TileWidth, TileHeight float64

	// VisibleWalls is the number of wall widths of pattern spread across
	// a three-wall layout.
	VisibleWalls int

	// MirrorAngle is the offset, in degrees, between a vertical divider's
	// perpendicular and the synthesized floor and ceiling edges.
	MirrorAngle float64

	// Workers is the number of goroutines used by per-pixel passes.
	// 1 runs everything on the calling goroutine; 0 uses GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ReferenceWidth:  512,
		ReferenceHeight: 512,
		MinResolution:   1024,
		WallWidth:       4.0,
		WallHeight:      2.5,
		TileWidth:       0.5,
		TileHeight:      0.5,
		VisibleWalls:    2,
		MirrorAngle:     30,
		Workers:         1,
	}
}

// Option configures a Config.
//
// Example:
//
//	c := wallpreview.NewCompositor(
//	    wallpreview.WithMinResolution(0),
//	    wallpreview.WithTileSize(0.53, 0.53),
//	)
type Option func(*Config)

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithReferenceSize sets the resolution wall polygons are expressed in.
// Non-positive sizes are ignored.
func WithReferenceSize(w, h int) Option {
	return func(c *Config) {
		if w > 0 && h > 0 {
			c.ReferenceWidth, c.ReferenceHeight = w, h
		}
	}
}

// WithMinResolution sets the minimum shorter side of the working image.
// Zero disables upscaling; negative values are ignored.
func WithMinResolution(px int) Option {
	return func(c *Config) {
		if px >= 0 {
			c.MinResolution = px
		}
	}
}

// WithWallSize sets the physical wall size in meters.
func WithWallSize(width, height float64) Option {
	return func(c *Config) {
		if width > 0 && height > 0 {
			c.WallWidth, c.WallHeight = width, height
		}
	}
}

// WithTileSize sets the physical size of one pattern tile in meters.
func WithTileSize(width, height float64) Option {
	return func(c *Config) {
		if width > 0 && height > 0 {
			c.TileWidth, c.TileHeight = width, height
		}
	}
}

// WithVisibleWalls sets how many wall widths of pattern a three-wall layout
// shows.
func WithVisibleWalls(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.VisibleWalls = n
		}
	}
}

// WithMirrorAngle sets the mirror angle offset in degrees. Values outside
// [0, 90) are ignored.
func WithMirrorAngle(deg float64) Option {
	return func(c *Config) {
		if deg >= 0 && deg < 90 {
			c.MirrorAngle = deg
		}
	}
}

// WithWorkers sets the number of goroutines for per-pixel passes.
// 0 uses GOMAXPROCS; negative values are ignored.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.Workers = n
		}
	}
}
