package raycast3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line from Origin along Direction (expected unit length).
type Ray struct {
	Origin    Point3
	Direction Vector3
}

func (r Ray) At(t Real) Point3 { return r.Origin.Add(r.Direction.Scale(t)) }

// Camera caches the per-scene constants of the pinhole camera at the origin looking down -Z.
type Camera struct {
	invWidth, invHeight Real
	aspect              Real
	fovAdjustment       Real
}

// NewCamera expects a validated scene (non-zero width and height).
func NewCamera(scene *Scene) Camera {
	w, h := Real(scene.Width), Real(scene.Height)
	return Camera{
		invWidth:      1 / w,
		invHeight:     1 / h,
		aspect:        w / h,
		fovAdjustment: math.Tan(mgl64.DegToRad(scene.FOV) / 2),
	}
}

// Ray maps the center of pixel (x, y) to a unit direction; row 0 is the top of the image.
func (c Camera) Ray(x, y uint32) Ray {
	sensorX := ((Real(x)+0.5)*c.invWidth*2 - 1) * c.aspect * c.fovAdjustment
	sensorY := (1 - (Real(y)+0.5)*c.invHeight*2) * c.fovAdjustment
	return Ray{
		Origin:    Origin(),
		Direction: Vector3{sensorX, sensorY, -1}.Norm(),
	}
}

// PrimeRay generates the camera ray through pixel (x, y) of scene.
func PrimeRay(x, y uint32, scene *Scene) Ray {
	return NewCamera(scene).Ray(x, y)
}
