package raycast3d

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// Vector3 represents a direction or displacement (not a position) in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vector3) Mul(b Vector3) Vector3 { return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (v Vector3) Scale(s Real) Vector3  { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product between two vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// A zero vector is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Unit is Norm with the zero/non-finite case reported as ErrDegenerateGeometry.
func (v Vector3) Unit() (Vector3, error) {
	l := v.Len()
	if l == 0 || !isFinite(l) {
		return Vector3{}, errorsmod.Wrapf(ErrDegenerateGeometry, "cannot normalize %+v", v)
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}, nil
}

func (v Vector3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }
