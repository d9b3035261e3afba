package raycast3d

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

type Sphere struct {
	Center Point3
	Radius Real
	Color  Color
}

func NewSphere(center Point3, radius Real, color Color) (*Sphere, error) {
	s := &Sphere{Center: center, Radius: radius, Color: color}
	if err := s.validate(); err != nil {
		return nil, err
	}
	DebugLog("Created sphere: %+v", s)
	return s, nil
}

func (s *Sphere) validate() error {
	if !(s.Radius > 0) || !isFinite(s.Radius) {
		return errorsmod.Wrapf(ErrDegenerateGeometry, "sphere radius must be > 0, got %g", s.Radius)
	}
	return nil
}

// Intersect uses the geometric closest-approach test; it assumes a unit direction.
// A zero direction never hits.
func (s *Sphere) Intersect(r Ray) (Real, bool) {
	if r.Direction.IsZero() {
		return 0, false
	}
	L := s.Center.Sub(r.Origin)
	tca := L.Dot(r.Direction)
	// squared distance from the center to the ray line
	d2 := L.Dot(L) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}
	thc := math.Sqrt(r2 - d2)
	t0, t1 := tca-thc, tca+thc
	if t0 < 0 && t1 < 0 {
		return 0, false
	}
	if t0 >= 0 {
		return t0, true
	}
	// origin inside the sphere: the exit point is the only hit ahead
	return t1, true
}
