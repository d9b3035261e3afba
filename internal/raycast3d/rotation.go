package raycast3d

import (
	"math"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Axis selects a coordinate axis to rotate about.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// ParseAxis accepts "x", "y", "z" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, errorsmod.Wrapf(ErrInvalidConfig, "unknown rotation axis %q", s)
}

// Rotation is a single axis rotation, angle in radians.
type Rotation struct {
	Axis  Axis
	Angle Real
}

// RotationMatrix builds the right-handed rotation by angle (radians) about axis.
func RotationMatrix(axis Axis, angle Real) Matrix3 {
	c, s := math.Cos(angle), math.Sin(angle)
	switch axis {
	case AxisX:
		return Matrix3{
			Row1: Vector3{1, 0, 0},
			Row2: Vector3{0, c, -s},
			Row3: Vector3{0, s, c},
		}
	case AxisY:
		return Matrix3{
			Row1: Vector3{c, 0, s},
			Row2: Vector3{0, 1, 0},
			Row3: Vector3{-s, 0, c},
		}
	case AxisZ:
		return Matrix3{
			Row1: Vector3{c, -s, 0},
			Row2: Vector3{s, c, 0},
			Row3: Vector3{0, 0, 1},
		}
	}
	return Identity3()
}

// ComposeRotations returns one matrix applying rs in order (rs[0] first).
func ComposeRotations(rs []Rotation) Matrix3 {
	R := Identity3()
	for _, r := range rs {
		R = RotationMatrix(r.Axis, r.Angle).Mul(R)
	}
	return R
}

// RotatePoints rotates every point about axis through the origin.
// The input slice is not modified.
func RotatePoints(points []Point3, axis Axis, angle Real) []Point3 {
	return transformPoints(points, RotationMatrix(axis, angle))
}

func transformPoints(points []Point3, m Matrix3) []Point3 {
	out := make([]Point3, len(points))
	for i, p := range points {
		out[i] = p.Transform(m)
	}
	return out
}
