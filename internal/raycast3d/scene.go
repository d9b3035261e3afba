package raycast3d

import (
	errorsmod "cosmossdk.io/errors"
)

// Scene holds the raster size, the field of view and the ordered primitive list.
// It is read-only while a render is running.
type Scene struct {
	Width, Height uint32
	FOV           Real // degrees
	Primitives    []Primitive
}

// NewScene validates the camera parameters; primitives are added with Add.
func NewScene(width, height uint32, fov Real) (*Scene, error) {
	s := &Scene{Width: width, Height: height, FOV: fov}
	if err := s.validateCamera(); err != nil {
		return nil, err
	}
	DebugLog("Created scene %dx%d fov=%.2f", width, height, fov)
	return s, nil
}

func (s *Scene) Add(p ...Primitive) {
	s.Primitives = append(s.Primitives, p...)
}

func (s *Scene) validateCamera() error {
	if s.Width == 0 || s.Height == 0 {
		return errorsmod.Wrapf(ErrInvalidScene, "resolution must be positive, got %dx%d", s.Width, s.Height)
	}
	if !(s.FOV > 0 && s.FOV < 180) {
		return errorsmod.Wrapf(ErrInvalidScene, "fov must be in (0, 180) degrees, got %g", s.FOV)
	}
	return nil
}

// Validate checks the camera parameters and every primitive, so scenes built as
// literals get the same checks as the constructors.
func (s *Scene) Validate() error {
	if err := s.validateCamera(); err != nil {
		return err
	}
	for i, p := range s.Primitives {
		if p == nil {
			return errorsmod.Wrapf(ErrInvalidScene, "primitive #%d is nil", i)
		}
		if err := p.validate(); err != nil {
			return errorsmod.Wrapf(err, "%s #%d", Kind(p), i)
		}
	}
	return nil
}
