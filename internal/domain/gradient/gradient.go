// Package gradient renders match percentages as CSS colors.
package gradient

import (
	"fmt"
	"math"
)

// RGB is a 24-bit color split into channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// String renders the color as a CSS rgb() triple.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Interpolate blends low and high channel-wise at the given factor.
// The factor is clamped to [0, 1]; each channel is rounded to the
// nearest integer. Interpolate(low, high, 0) == low and
// Interpolate(low, high, 1) == high exactly.
func Interpolate(low, high RGB, factor float64) RGB {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return RGB{
		R: blend(low.R, high.R, factor),
		G: blend(low.G, high.G, factor),
		B: blend(low.B, high.B, factor),
	}
}

func blend(low, high uint8, factor float64) uint8 {
	v := float64(low) + factor*(float64(high)-float64(low))
	return uint8(math.Round(v))
}
