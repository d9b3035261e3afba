package raycast3d

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

type Triangle struct {
	Point1, Point2, Point3 Point3
	Color                  Color
}

// NewTriangle rejects collinear (zero-area) triangles.
func NewTriangle(p1, p2, p3 Point3, color Color) (*Triangle, error) {
	t := &Triangle{Point1: p1, Point2: p2, Point3: p3, Color: color}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Triangle) validate() error {
	n := t.FaceNormal()
	l := n.Len()
	if l == 0 || !isFinite(l) {
		return errorsmod.Wrapf(ErrDegenerateGeometry, "triangle %+v %+v %+v has no area", t.Point1, t.Point2, t.Point3)
	}
	return nil
}

// FaceNormal is AB × AC, not normalized. Counter-clockwise winding seen from
// the viewer gives a normal pointing at the viewer.
func (t *Triangle) FaceNormal() Vector3 {
	return t.Point2.Sub(t.Point1).Cross(t.Point3.Sub(t.Point1))
}

// Intersect solves the ray against the triangle's plane, then runs the three edge
// inside-outside tests. It returns the true ray parameter t of the hit.
func (t *Triangle) Intersect(r Ray) (Real, bool) {
	if r.Direction.IsZero() {
		return 0, false
	}
	N := t.FaceNormal().Norm()
	denom := N.Dot(r.Direction)
	if math.Abs(denom) < ParallelEpsilon {
		return 0, false
	}
	// plane: N·X = dist
	dist := N.Dot(t.Point1.Vector())
	tHit := (dist - N.Dot(r.Origin.Vector())) / denom
	if tHit < 0 {
		return 0, false
	}
	P := r.At(tHit)

	if t.Point2.Sub(t.Point1).Cross(P.Sub(t.Point1)).Dot(N) < 0 {
		return 0, false
	}
	if t.Point3.Sub(t.Point2).Cross(P.Sub(t.Point2)).Dot(N) < 0 {
		return 0, false
	}
	if t.Point1.Sub(t.Point3).Cross(P.Sub(t.Point3)).Dot(N) < 0 {
		return 0, false
	}
	return tHit, true
}
