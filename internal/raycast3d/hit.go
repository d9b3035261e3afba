package raycast3d

// Hit is the nearest primitive along a ray and its distance.
type Hit struct {
	Primitive Primitive
	T         Real
}

// Point returns the hit position on r.
func (h Hit) Point(r Ray) Point3 { return r.At(h.T) }

// Trace scans every primitive and returns the nearest hit.
// Equal distances resolve to the primitive that comes first in scene order.
func (s *Scene) Trace(r Ray) (Hit, bool) {
	best := Hit{T: MaxDistance}
	okAny := false
	for _, p := range s.Primitives {
		if t, ok := p.Intersect(r); ok && t < best.T {
			best, okAny = Hit{Primitive: p, T: t}, true
		}
	}
	return best, okAny
}
