package raycast3d

import (
	"context"
	"image"
	"image/color"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// RenderOptions tunes a render pass. The zero value renders on all CPUs with
// facing-ratio shading over an opaque black background.
type RenderOptions struct {
	Workers    int // <= 0 means runtime.NumCPU(); 1 is a single sequential pass
	Shading    ShadingMode
	Background color.RGBA // color of missed pixels; the zero value means opaque black
	Metrics    *Metrics
	// Progress is called after each finished row, possibly from several workers at once.
	Progress func(done, total int)
}

// Frame is a finished render pass.
type Frame struct {
	Image   *image.RGBA
	Hits    int // pixels whose ray hit a primitive
	Elapsed time.Duration
}

// Render casts one ray per pixel and returns a Width×Height RGBA8 image in row-major
// order. See RenderFrame.
func Render(ctx context.Context, scene *Scene, opts RenderOptions) (*image.RGBA, error) {
	f, err := RenderFrame(ctx, scene, opts)
	if err != nil {
		return nil, err
	}
	return f.Image, nil
}

// RenderFrame renders scene and reports how many pixels were hit. Workers claim whole
// rows, so no two goroutines write the same pixel and the scene is only read. ctx is
// checked between rows.
func RenderFrame(ctx context.Context, scene *Scene, opts RenderOptions) (*Frame, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	w, h := int(scene.Width), int(scene.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := opts.Background
	if bg == (color.RGBA{}) {
		bg = color.RGBA{A: 255}
	}
	fillRGBA(img, bg)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}
	DebugLog("Rendering %dx%d, %d primitives, %d workers, shading=%s", w, h, len(scene.Primitives), workers, opts.Shading)

	cam := NewCamera(scene)
	start := time.Now()
	var nextRow, doneRows, hitPixels atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				y := int(nextRow.Add(1) - 1)
				if y >= h {
					return nil
				}
				hits := renderRow(scene, cam, img, y, opts.Shading)
				hitPixels.Add(int64(hits))
				opts.Metrics.observeRow(w, hits, w*len(scene.Primitives))
				n := doneRows.Add(1)
				if opts.Progress != nil {
					opts.Progress(int(n), h)
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		opts.Metrics.observeRender("cancelled", 0)
		return nil, err
	}
	elapsed := time.Since(start)
	opts.Metrics.observeRender("ok", elapsed.Seconds())
	DebugLog("Rendered %dx%d in %s, %d pixels hit", w, h, elapsed, hitPixels.Load())
	return &Frame{Image: img, Hits: int(hitPixels.Load()), Elapsed: elapsed}, nil
}

// renderRow shades row y in place and returns the number of pixels that hit something.
func renderRow(scene *Scene, cam Camera, img *image.RGBA, y int, mode ShadingMode) int {
	hits := 0
	row := img.Pix[y*img.Stride:]
	for x := 0; x < int(scene.Width); x++ {
		c, ok := ShadePixel(scene, cam, uint32(x), uint32(y), mode)
		if !ok {
			continue
		}
		hits++
		p := x * 4
		row[p+0] = c.R
		row[p+1] = c.G
		row[p+2] = c.B
		row[p+3] = c.A
	}
	return hits
}

// ShadePixel runs the per-pixel pipeline: camera ray, nearest hit, shading.
// It reports false when the ray hits nothing.
func ShadePixel(scene *Scene, cam Camera, x, y uint32, mode ShadingMode) (color.RGBA, bool) {
	r := cam.Ray(x, y)
	hit, ok := scene.Trace(r)
	if !ok {
		return color.RGBA{}, false
	}
	return Shade(r, hit, mode).RGBA(), true
}

func fillRGBA(img *image.RGBA, c color.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}
