package wallpreview

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.ReferenceWidth != 512 || c.ReferenceHeight != 512 {
		t.Errorf("reference size = %dx%d, want 512x512", c.ReferenceWidth, c.ReferenceHeight)
	}
	if c.MinResolution != 1024 {
		t.Errorf("MinResolution = %d, want 1024", c.MinResolution)
	}
	if c.VisibleWalls != 2 {
		t.Errorf("VisibleWalls = %d, want 2", c.VisibleWalls)
	}
	if c.MirrorAngle != 30 {
		t.Errorf("MirrorAngle = %v, want 30", c.MirrorAngle)
	}
	if c.Workers != 1 {
		t.Errorf("Workers = %d, want 1", c.Workers)
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(Config) bool
	}{
		{"reference size", WithReferenceSize(256, 128), func(c Config) bool {
			return c.ReferenceWidth == 256 && c.ReferenceHeight == 128
		}},
		{"reference size ignored", WithReferenceSize(0, 128), func(c Config) bool {
			return c.ReferenceWidth == 512 && c.ReferenceHeight == 512
		}},
		{"min resolution", WithMinResolution(0), func(c Config) bool { return c.MinResolution == 0 }},
		{"min resolution ignored", WithMinResolution(-1), func(c Config) bool { return c.MinResolution == 1024 }},
		{"wall size", WithWallSize(3, 2.7), func(c Config) bool { return c.WallWidth == 3 && c.WallHeight == 2.7 }},
		{"wall size ignored", WithWallSize(-3, 2.7), func(c Config) bool { return c.WallWidth == 4 && c.WallHeight == 2.5 }},
		{"tile size", WithTileSize(0.53, 0.6), func(c Config) bool { return c.TileWidth == 0.53 && c.TileHeight == 0.6 }},
		{"tile size ignored", WithTileSize(0, 0), func(c Config) bool { return c.TileWidth == 0.5 && c.TileHeight == 0.5 }},
		{"visible walls", WithVisibleWalls(3), func(c Config) bool { return c.VisibleWalls == 3 }},
		{"visible walls ignored", WithVisibleWalls(0), func(c Config) bool { return c.VisibleWalls == 2 }},
		{"mirror angle", WithMirrorAngle(15), func(c Config) bool { return c.MirrorAngle == 15 }},
		{"mirror angle ignored", WithMirrorAngle(90), func(c Config) bool { return c.MirrorAngle == 30 }},
		{"workers", WithWorkers(0), func(c Config) bool { return c.Workers == 0 }},
		{"workers ignored", WithWorkers(-2), func(c Config) bool { return c.Workers == 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := newConfig([]Option{tt.opt}); !tt.check(c) {
				t.Errorf("newConfig() = %+v", c)
			}
		})
	}
}
