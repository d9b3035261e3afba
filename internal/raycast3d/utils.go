package raycast3d

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clampChannel(x Real) uint8 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	}
	if x >= maxChannel {
		return maxChannel
	}
	return uint8(x)
}
