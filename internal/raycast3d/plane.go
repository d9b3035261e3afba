package raycast3d

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// Plane is the infinite plane through Origin perpendicular to Normal.
type Plane struct {
	Origin Point3
	Normal Vector3
	Color  Color
}

// NewPlane normalizes the normal; a zero normal is degenerate.
func NewPlane(origin Point3, normal Vector3, color Color) (*Plane, error) {
	n, err := normal.Unit()
	if err != nil {
		return nil, errorsmod.Wrap(err, "plane normal")
	}
	p := &Plane{Origin: origin, Normal: n, Color: color}
	DebugLog("Created plane: %+v", p)
	return p, nil
}

func (p *Plane) validate() error {
	if p.Normal.IsZero() || !isFinite(p.Normal.Len()) {
		return errorsmod.Wrapf(ErrDegenerateGeometry, "plane normal %+v", p.Normal)
	}
	return nil
}

// Intersect returns the ray parameter t of the line-plane intersection.
// Rays within ParallelEpsilon of the plane are misses, so are hits at t <= 0.
func (p *Plane) Intersect(r Ray) (Real, bool) {
	if r.Direction.IsZero() {
		return 0, false
	}
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < ParallelEpsilon {
		return 0, false
	}
	t := p.Origin.Sub(r.Origin).Dot(p.Normal) / denom
	if t <= 0 {
		return 0, false
	}
	return t, true
}
