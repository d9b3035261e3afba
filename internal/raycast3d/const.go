package raycast3d

type Real = float64

const (
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultFOV     = 90.0
	DefaultOut     = "out.png"
	DefaultShading = "facing"
	// MaxDistance is the nearest-hit sentinel, larger than any realistic scene extent.
	MaxDistance = 1e7
	// maxChannel is the top of the 8-bit output range.
	maxChannel = 255
)
