// Package motion contains the page's animation maths: the scroll-linked glow,
// one-shot mount transitions and the looping float of the decorative blob.
// Nothing here schedules work; hosts drive these values from their own clocks.
package motion

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Glow output range.
const (
	GlowMin = 0.2
	GlowMax = 0.6
)

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Glow maps scroll progress to the opacity of the hero glow.
// Progress outside [0,1] (elastic overscroll) is clamped, so the result always
// stays within [GlowMin, GlowMax].
func Glow(progress float64) float64 {
	return GlowUnclamped(Clamp01(progress))
}

// GlowUnclamped is Glow without the input clamp; out-of-range progress extrapolates.
func GlowUnclamped(progress float64) float64 {
	return Lerp(GlowMin, GlowMax, progress)
}

// Blend composites over onto base with the given alpha and returns a hex colour.
// Terminals have no opacity, so the glow is rendered as a pre-mixed colour.
func Blend(base, over string, alpha float64) (string, error) {
	b, err := colorful.Hex(base)
	if err != nil {
		return "", fmt.Errorf("parse base colour %q: %w", base, err)
	}
	o, err := colorful.Hex(over)
	if err != nil {
		return "", fmt.Errorf("parse overlay colour %q: %w", over, err)
	}
	return b.BlendRgb(o, Clamp01(alpha)).Clamped().Hex(), nil
}
