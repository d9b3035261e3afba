package raycast3d

// Primitive is a renderable shape. The set is closed: Sphere, Plane and Triangle;
// ColorOf, NormalAt and Kind switch over exactly those three.
type Primitive interface {
	// Intersect returns the distance along r to the nearest surface hit in front of the
	// ray origin, or false when there is none.
	Intersect(r Ray) (Real, bool)

	validate() error
}

// ColorOf returns the surface color of p.
func ColorOf(p Primitive) Color {
	switch s := p.(type) {
	case *Sphere:
		return s.Color
	case *Plane:
		return s.Color
	case *Triangle:
		return s.Color
	}
	return Color{}
}

// NormalAt returns the surface normal of p at the hit point hit. It is not
// necessarily unit length: shading normalizes it.
func NormalAt(p Primitive, hit Point3) Vector3 {
	switch s := p.(type) {
	case *Sphere:
		return hit.Sub(s.Center)
	case *Plane:
		return s.Normal
	case *Triangle:
		return s.FaceNormal()
	}
	return Vector3{}
}

// Kind names the primitive variant, for logs and errors.
func Kind(p Primitive) string {
	switch p.(type) {
	case *Sphere:
		return "sphere"
	case *Plane:
		return "plane"
	case *Triangle:
		return "triangle"
	}
	return "unknown"
}
