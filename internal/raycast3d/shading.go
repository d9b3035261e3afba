package raycast3d

import (
	"math"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

type ShadingMode uint8

const (
	// ShadeFacingRatio scales the primitive color by the facing ratio at the hit.
	ShadeFacingRatio ShadingMode = iota
	// ShadeFlat writes the primitive color as is.
	ShadeFlat
)

func (m ShadingMode) String() string {
	if m == ShadeFlat {
		return "flat"
	}
	return "facing"
}

func ParseShadingMode(s string) (ShadingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "facing", "facing-ratio":
		return ShadeFacingRatio, nil
	case "flat":
		return ShadeFlat, nil
	}
	return 0, errorsmod.Wrapf(ErrInvalidConfig, "unknown shading mode %q", s)
}

// FacingRatio is |cos| of the angle between normal and the ray direction.
// Neither needs to be unit length.
func FacingRatio(r Ray, normal Vector3) Real {
	ratio := math.Abs(normal.Norm().Dot(r.Direction.Norm()))
	return math.Max(ratio, 0)
}

// Shade returns the pixel color for hit h of ray r.
func Shade(r Ray, h Hit, mode ShadingMode) Color {
	c := ColorOf(h.Primitive)
	if mode == ShadeFlat {
		return c
	}
	return c.Scale(FacingRatio(r, NormalAt(h.Primitive, h.Point(r))))
}
