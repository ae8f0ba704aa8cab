package motion

import (
	"testing"
	"time"
)

func TestFloatKeyframes(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{4 * time.Second, -10},
		{8 * time.Second, 0},
		{12 * time.Second, -10},
		{80 * time.Second, 0},
	}
	for _, tt := range tests {
		if got := Float.Offset(tt.elapsed); !near(got, tt.want) {
			t.Fatalf("Offset(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestFloatStaysInRange(t *testing.T) {
	for ms := 0; ms < 20000; ms += 37 {
		got := Float.Offset(time.Duration(ms) * time.Millisecond)
		if got > 0 || got < -10 {
			t.Fatalf("offset %v out of range at %dms", got, ms)
		}
	}
}

func TestFloatPeriodic(t *testing.T) {
	for ms := 0; ms < 8000; ms += 250 {
		d := time.Duration(ms) * time.Millisecond
		if a, b := Float.Offset(d), Float.Offset(d+Float.Period); !near(a, b) {
			t.Fatalf("not periodic at %v: %v vs %v", d, a, b)
		}
	}
}

func TestOscillatorDegenerate(t *testing.T) {
	if got := (Oscillator{}).Offset(time.Second); got != 0 {
		t.Fatalf("empty oscillator = %v", got)
	}
	if got := (Oscillator{Keyframes: []float64{3}, Period: time.Second}).Offset(time.Second); got != 3 {
		t.Fatalf("single keyframe = %v", got)
	}
}
