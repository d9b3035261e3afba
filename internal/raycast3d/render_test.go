package raycast3d

import (
	"bytes"
	"context"
	"image/color"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func sphereScene(t *testing.T) *Scene {
	sp, err := NewSphere(Point3{0, 0, -5}, 2, Color{255, 0, 0})
	require.NoError(t, err)
	return mustScene(t, 4, 4, 90, sp)
}

func TestRenderSphereCoverage(t *testing.T) {
	img, err := Render(context.Background(), sphereScene(t), RenderOptions{Workers: 1, Shading: ShadeFlat})
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 4, img.Bounds().Dy())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := img.RGBAAt(x, y)
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				require.Equal(t, color.RGBA{255, 0, 0, 255}, got, "pixel %d,%d", x, y)
			} else {
				require.Equal(t, color.RGBA{0, 0, 0, 255}, got, "pixel %d,%d", x, y)
			}
		}
	}
}

func TestRenderFacingRatioDarkensRim(t *testing.T) {
	img, err := Render(context.Background(), sphereScene(t), RenderOptions{Workers: 1})
	require.NoError(t, err)
	c := img.RGBAAt(1, 1)
	require.Equal(t, uint8(255), c.A)
	// the normal at this pixel is about 56° off the view ray
	require.Greater(t, c.R, uint8(120))
	require.Less(t, c.R, uint8(160))
	require.Zero(t, c.G)
}

// pointInTriangle2D is a barycentric test in the z = const plane.
func pointInTriangle2D(px, py Real, a, b, c Point3) (inside bool, margin Real) {
	d := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	l1 := ((b.Y-c.Y)*(px-c.X) + (c.X-b.X)*(py-c.Y)) / d
	l2 := ((c.Y-a.Y)*(px-c.X) + (a.X-c.X)*(py-c.Y)) / d
	l3 := 1 - l1 - l2
	m := min(l1, l2, l3)
	return m >= 0, m
}

func TestRenderTriangleCoverage(t *testing.T) {
	p1, p2, p3 := Point3{1, 0, -5}, Point3{4, 0, -5}, Point3{0, 1, -5}
	tr, err := NewTriangle(p1, p2, p3, Color{0, 0, 255})
	require.NoError(t, err)
	s := mustScene(t, 100, 100, 90, tr)

	img, err := Render(context.Background(), s, RenderOptions{Workers: 3, Shading: ShadeFlat})
	require.NoError(t, err)
	require.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(66, 46))
	require.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(50, 50))

	cam := NewCamera(s)
	checked := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			d := cam.Ray(uint32(x), uint32(y)).Direction
			// the ray meets z = -5 at 5/|dz| along it
			k := 5 / -d.Z
			inside, m := pointInTriangle2D(d.X*k, d.Y*k, p1, p2, p3)
			if m > -1e-3 && m < 1e-3 {
				continue
			}
			checked++
			hit := img.RGBAAt(x, y).B != 0
			require.Equal(t, inside, hit, "pixel %d,%d", x, y)
		}
	}
	require.Greater(t, checked, 9000)
}

func TestRenderWorkersAgree(t *testing.T) {
	s := sceneFromExample(t, 64, 48)
	one, err := Render(context.Background(), s, RenderOptions{Workers: 1})
	require.NoError(t, err)
	for _, w := range []int{0, 2, 7, 1000} {
		many, err := Render(context.Background(), s, RenderOptions{Workers: w})
		require.NoError(t, err)
		require.True(t, bytes.Equal(one.Pix, many.Pix), "workers=%d", w)
	}
}

func TestRenderBackground(t *testing.T) {
	bg := color.RGBA{1, 2, 3, 255}
	img, err := Render(context.Background(), sphereScene(t), RenderOptions{Workers: 2, Shading: ShadeFlat, Background: bg})
	require.NoError(t, err)
	require.Equal(t, bg, img.RGBAAt(0, 0))
	require.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 1))
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img, err := Render(ctx, sphereScene(t), RenderOptions{})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, img)
}

func TestRenderInvalidScene(t *testing.T) {
	_, err := Render(context.Background(), &Scene{Width: 0, Height: 4, FOV: 90}, RenderOptions{})
	require.ErrorIs(t, err, ErrInvalidScene)
}

func TestRenderEmptySceneIsOpaqueBlack(t *testing.T) {
	f, err := RenderFrame(context.Background(), mustScene(t, 8, 2, 90), RenderOptions{})
	require.NoError(t, err)
	require.Zero(t, f.Hits)
	for i := 0; i < len(f.Image.Pix); i += 4 {
		require.Equal(t, []byte{0, 0, 0, 255}, f.Image.Pix[i:i+4], "byte %d", i)
	}
}

func TestRenderFrameCountsHits(t *testing.T) {
	f, err := RenderFrame(context.Background(), sphereScene(t), RenderOptions{Workers: 3})
	require.NoError(t, err)
	require.Equal(t, 4, f.Hits)

	st := f.Stats()
	require.Equal(t, 16, st.Pixels)
	require.Equal(t, 4, st.Written)
	require.InDelta(t, 0.25, st.Coverage, 1e-12)
	require.Greater(t, st.MeanLuma, 0.0)
}

func TestRenderProgress(t *testing.T) {
	var calls, maxDone, badTotal atomic.Int64
	_, err := Render(context.Background(), sphereScene(t), RenderOptions{
		Workers: 2,
		Progress: func(done, total int) {
			calls.Add(1)
			if total != 4 {
				badTotal.Add(1)
			}
			for {
				cur := maxDone.Load()
				if int64(done) <= cur || maxDone.CompareAndSwap(cur, int64(done)) {
					break
				}
			}
		},
	})
	require.NoError(t, err)
	require.EqualValues(t, 4, calls.Load())
	require.EqualValues(t, 4, maxDone.Load())
	require.Zero(t, badTotal.Load())
}
