package wallpreview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/wallpreview/internal/atlas"
	"github.com/gogpu/wallpreview/internal/geom"
	"github.com/gogpu/wallpreview/internal/parallel"
	"github.com/gogpu/wallpreview/internal/shade"
	"github.com/gogpu/wallpreview/internal/warp"
)

// Compositor renders a pattern tile onto the walls of a photo.
//
// A Compositor is safe for concurrent use. Call Close to release its
// worker goroutines.
type Compositor struct {
	cfg  Config
	pool *parallel.WorkerPool
}

// NewCompositor creates a Compositor with the given options.
//
// Example:
//
//	c := wallpreview.NewCompositor(wallpreview.WithWorkers(0))
//	defer c.Close()
func NewCompositor(opts ...Option) *Compositor {
	c := &Compositor{cfg: newConfig(opts)}
	if c.cfg.Workers != 1 {
		c.pool = parallel.NewWorkerPool(c.cfg.Workers)
	}
	return c
}

// Config returns the configuration in use.
func (c *Compositor) Config() Config {
	return c.cfg
}

// Close stops the worker goroutines. Close is safe to call multiple times.
func (c *Compositor) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

// Render holds the result of compositing together with its intermediate
// buffers.
type Render struct {
	// Image is the photo with wall pixels replaced by shaded pattern.
	Image *image.RGBA

	// Wallpaper holds the shaded pattern at wall pixels and is transparent
	// elsewhere.
	Wallpaper *image.NRGBA

	// Warped holds the projected pattern before shading, transparent
	// outside the wall polygons.
	Warped *image.NRGBA

	// Atlas is the tiled pattern the strips are cut from.
	Atlas *image.NRGBA

	// Scale is the upscaling ratio applied to the photo, 1 when none.
	Scale float64

	// Polygons are the wall polygons at the working resolution.
	Polygons []WallPolygon

	// Shares are the fractions of the atlas width given to each polygon.
	Shares []float64

	// Baselines are the mean photo brightness of each wall, in [0, 1].
	// Walls without an invertible warp or any wall pixel report the
	// global wall baseline, or 0 when the mask is empty.
	Baselines []float64
}

// Composite renders tile onto the walls of photo and returns the result,
// which has the size of the (possibly upscaled) photo.
//
// mask marks wall pixels with any non-zero value and must have the same
// size as photo. polygons are expressed at the configured reference
// resolution and must number one to three.
func (c *Compositor) Composite(photo image.Image, mask *image.Gray, tile image.Image, polygons []WallPolygon) (*image.RGBA, error) {
	r, err := c.Render(photo, mask, tile, polygons)
	if err != nil {
		return nil, err
	}
	return r.Image, nil
}

// Render is like Composite but also returns the intermediate buffers.
// The inputs are not modified.
func (c *Compositor) Render(photo image.Image, mask *image.Gray, tile image.Image, polygons []WallPolygon) (*Render, error) {
	if err := c.validate(photo, mask, tile, polygons); err != nil {
		return nil, err
	}
	log := Logger()

	img, wall, scale := c.prepare(photo, mask)
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	sx := float64(w) / float64(c.cfg.ReferenceWidth)
	sy := float64(h) / float64(c.cfg.ReferenceHeight)
	working := make([]WallPolygon, len(polygons))
	for i, p := range polygons {
		working[i] = p.Scale(sx, sy)
	}

	shares := atlas.WidthShares(working, c.cfg.VisibleWalls)
	patternWidth := c.cfg.WallWidth
	if len(working) > 1 {
		patternWidth *= float64(c.cfg.VisibleWalls)
	}
	m, n := atlas.Repeats(patternWidth, c.cfg.WallHeight, c.cfg.TileWidth, c.cfg.TileHeight)
	pattern := atlas.Assemble(tile, m, n)
	log.Debug("wallpreview: atlas assembled",
		"polygons", len(working), "shares", shares,
		"repeat_x", m, "repeat_y", n,
		"atlas_width", pattern.Bounds().Dx(), "atlas_height", pattern.Bounds().Dy())

	out := &Render{
		Image:     img,
		Wallpaper: image.NewNRGBA(bounds),
		Warped:    image.NewNRGBA(bounds),
		Atlas:     pattern,
		Scale:     scale,
		Polygons:  working,
		Shares:    shares,
		Baselines: make([]float64, len(working)),
	}

	j := &job{
		c:      c,
		render: out,
		mask:   wall,
		owner:  make([]uint8, w*h),
		width:  w,
	}
	j.global = wallMean(img, wall)
	aw := float64(pattern.Bounds().Dx())
	offsets := atlas.Offsets(shares)
	for i, p := range working {
		strip := warp.Strip{X0: offsets[i] * aw, X1: (offsets[i] + shares[i]) * aw}
		if err := j.composeWall(i, p, strip); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *Compositor) validate(photo image.Image, mask *image.Gray, tile image.Image, polygons []WallPolygon) error {
	if n := len(polygons); n < 1 || n > 3 {
		return fmt.Errorf("%w: %d (want 1..3)", ErrInvalidPolygonCount, n)
	}
	if photo == nil || photo.Bounds().Empty() {
		return fmt.Errorf("%w: empty photo", ErrInputShapeMismatch)
	}
	if tile == nil || tile.Bounds().Empty() {
		return fmt.Errorf("%w: empty tile", ErrInputShapeMismatch)
	}
	if mask == nil || mask.Bounds().Empty() {
		return fmt.Errorf("%w: empty mask", ErrInputShapeMismatch)
	}
	if pb, mb := photo.Bounds(), mask.Bounds(); pb.Dx() != mb.Dx() || pb.Dy() != mb.Dy() {
		return fmt.Errorf("%w: photo is %dx%d, mask is %dx%d",
			ErrInputShapeMismatch, pb.Dx(), pb.Dy(), mb.Dx(), mb.Dy())
	}
	return nil
}

// prepare copies the photo and mask to origin-based buffers, upscaling both
// when the shorter side is below MinResolution.
func (c *Compositor) prepare(photo image.Image, mask *image.Gray) (*image.RGBA, *image.Gray, float64) {
	pb := photo.Bounds()
	w, h := pb.Dx(), pb.Dy()

	scale := 1.0
	if short := min(w, h); c.cfg.MinResolution > 0 && short < c.cfg.MinResolution {
		scale = float64(c.cfg.MinResolution) / float64(short)
	}
	if scale == 1 {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(img, img.Bounds(), photo, pb.Min, xdraw.Src)
		wall := image.NewGray(image.Rect(0, 0, w, h))
		xdraw.Draw(wall, wall.Bounds(), mask, mask.Bounds().Min, xdraw.Src)
		return img, wall, 1
	}

	sw := int(math.Round(float64(w) * scale))
	sh := int(math.Round(float64(h) * scale))
	Logger().Debug("wallpreview: upscaling photo",
		"from_width", w, "from_height", h, "to_width", sw, "to_height", sh)

	img := image.NewRGBA(image.Rect(0, 0, sw, sh))
	xdraw.CatmullRom.Scale(img, img.Bounds(), photo, pb, xdraw.Src, nil)
	wall := image.NewGray(image.Rect(0, 0, sw, sh))
	xdraw.NearestNeighbor.Scale(wall, wall.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
	return img, wall, scale
}

// rows runs fn over [0, height) on the pool, or inline without one.
func (c *Compositor) rows(height int, fn func(y0, y1 int)) {
	if c.pool == nil {
		fn(0, height)
		return
	}
	c.pool.Rows(height, fn)
}

// job is the per-call state shared by the per-wall passes.
type job struct {
	c      *Compositor
	render *Render
	mask   *image.Gray

	// owner records, per pixel, 1 + the index of the wall that claimed it,
	// or 0.
	owner []uint8
	width int

	// global is the mean brightness of the photo under the whole wall
	// mask, taken before any wall is shaded.
	global shade.Mean
}

// composeWall warps, masks and shades wall i.
func (j *job) composeWall(i int, p geom.Polygon, strip warp.Strip) error {
	log := Logger()
	img := j.render.Image
	h := img.Bounds().Dy()

	corners := p.Corners()
	var quad [4]geom.Vec
	for k, pt := range corners {
		quad[k] = pt.Vec()
	}
	wp, err := warp.New(j.render.Atlas, strip, quad)
	if err != nil {
		log.Warn("wallpreview: skipping wall", "index", i, "polygon", p, "error", err)
		j.render.Baselines[i] = j.globalBaseline()
		return nil
	}
	j.c.rows(h, func(y0, y1 int) { wp.Rows(j.render.Warped, y0, y1) })

	mean, err := j.claim(i, p)
	if err != nil {
		return err
	}

	baseline, ok := mean.Value()
	if !ok {
		log.Warn("wallpreview: wall has no mask pixels, using global baseline", "index", i)
		baseline = j.globalBaseline()
	}
	j.render.Baselines[i] = baseline
	log.Debug("wallpreview: wall baseline", "index", i, "pixels", mean.Count(), "baseline", baseline)

	j.c.rows(h, func(y0, y1 int) { j.shadeRows(i, baseline, y0, y1) })
	return nil
}

// claim marks the wall mask pixels strictly inside p as owned by wall i and
// returns their mean brightness.
func (j *job) claim(i int, p geom.Polygon) (shade.Mean, error) {
	img := j.render.Image
	r := p.Bounds().Intersect(img.Bounds())
	if r.Empty() {
		return shade.Mean{}, nil
	}

	bands := parallel.Bands(img.Bounds().Dy(), 1)
	if j.c.pool != nil {
		bands = parallel.Bands(img.Bounds().Dy(), j.c.pool.Workers())
	}
	means := make([]shade.Mean, len(bands))
	errs := make([]error, len(bands))

	work := func(b int) {
		y0, y1 := max(bands[b][0], r.Min.Y), min(bands[b][1], r.Max.Y)
		for y := y0; y < y1; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if j.mask.Pix[j.mask.PixOffset(x, y)] == 0 {
					continue
				}
				if !p.Contains(float64(x)+0.5, float64(y)+0.5) {
					continue
				}
				k := y*j.width + x
				if prev := j.owner[k]; prev != 0 {
					errs[b] = fmt.Errorf("%w: walls %d and %d both cover pixel (%d, %d)",
						ErrOverlappingWalls, prev-1, i, x, y)
					return
				}
				j.owner[k] = uint8(i + 1)
				means[b].Add(rgb(img, x, y))
			}
		}
	}
	if j.c.pool == nil {
		for b := range bands {
			work(b)
		}
	} else {
		tasks := make([]func(), len(bands))
		for b := range bands {
			tasks[b] = func() { work(b) }
		}
		j.c.pool.ExecuteAll(tasks)
	}

	var total shade.Mean
	for b := range bands {
		if errs[b] != nil {
			return shade.Mean{}, errs[b]
		}
		total.Merge(means[b])
	}
	return total, nil
}

// shadeRows writes the shaded pattern for wall i into the wallpaper and
// the output image for rows [y0, y1).
func (j *job) shadeRows(i int, baseline float64, y0, y1 int) {
	img := j.render.Image
	id := uint8(i + 1)
	for y := y0; y < y1; y++ {
		for x := 0; x < j.width; x++ {
			if j.owner[y*j.width+x] != id {
				continue
			}
			wc := j.render.Warped.NRGBAAt(x, y)
			if wc.A == 0 {
				continue
			}
			pr, pg, pb := rgb(img, x, y)
			delta := shade.Value(pr, pg, pb) - baseline
			sc := shade.Shift(wc, delta)

			j.render.Wallpaper.SetNRGBA(x, y, sc)
			off := img.PixOffset(x, y)
			a := img.Pix[off+3]
			if a == 0xff {
				img.Pix[off+0] = sc.R
				img.Pix[off+1] = sc.G
				img.Pix[off+2] = sc.B
			} else {
				img.SetRGBA(x, y, color.RGBAModel.Convert(color.NRGBA{R: sc.R, G: sc.G, B: sc.B, A: a}).(color.RGBA))
			}
		}
	}
}

// globalBaseline returns the mean photo brightness over the whole wall
// mask, or 0 when the mask is empty.
func (j *job) globalBaseline() float64 {
	v, ok := j.global.Value()
	if !ok {
		Logger().Warn("wallpreview: wall mask is empty")
	}
	return v
}

// wallMean returns the brightness of the photo pixels under mask.
func wallMean(img *image.RGBA, mask *image.Gray) shade.Mean {
	var m shade.Mean
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.Pix[mask.PixOffset(x, y)] != 0 {
				m.Add(rgb(img, x, y))
			}
		}
	}
	return m
}

// rgb returns the straight (non-premultiplied) colour of a photo pixel.
func rgb(img *image.RGBA, x, y int) (r, g, b uint8) {
	off := img.PixOffset(x, y)
	p := img.Pix[off : off+4 : off+4]
	if p[3] == 0xff || p[3] == 0 {
		return p[0], p[1], p[2]
	}
	c := color.NRGBAModel.Convert(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}).(color.NRGBA)
	return c.R, c.G, c.B
}
