package raycast3d

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace groups the renderer's registered errors.
const Codespace = "raycast3d"

var (
	// ErrDegenerateGeometry: zero-length direction, collinear triangle, non-positive radius...
	ErrDegenerateGeometry = errorsmod.Register(Codespace, 2, "degenerate geometry")
	// ErrInvalidScene: zero raster dimensions or a field of view outside (0, 180) degrees.
	ErrInvalidScene  = errorsmod.Register(Codespace, 3, "invalid scene")
	ErrInvalidConfig = errorsmod.Register(Codespace, 4, "invalid config")
	ErrMeshFormat    = errorsmod.Register(Codespace, 5, "malformed mesh")
)
