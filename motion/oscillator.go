package motion

import (
	"math"
	"time"
)

// Oscillator loops through vertical offset keyframes forever.
type Oscillator struct {
	Keyframes []float64
	Period    time.Duration
}

// Float is the background blob's drift: 0 -> -10 -> 0 every 8 seconds.
var Float = Oscillator{
	Keyframes: []float64{0, -10, 0},
	Period:    8 * time.Second,
}

// Offset returns the offset at elapsed time since the loop began.
// Keyframes are spaced evenly over the period.
func (o Oscillator) Offset(elapsed time.Duration) float64 {
	n := len(o.Keyframes)
	switch {
	case n == 0:
		return 0
	case n == 1 || o.Period <= 0:
		return o.Keyframes[0]
	}

	phase := math.Mod(float64(elapsed), float64(o.Period)) / float64(o.Period)
	if phase < 0 {
		phase++
	}
	segments := float64(n - 1)
	pos := phase * segments
	i := int(pos)
	if i >= n-1 {
		return o.Keyframes[n-1]
	}
	return Lerp(o.Keyframes[i], o.Keyframes[i+1], EaseInOut(pos-float64(i)))
}
