package motion

import (
	"testing"
	"time"
)

func TestTransitionLifecycle(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTransition(Mount)

	if tr.State() != NotStarted {
		t.Fatalf("expected not-started, got %s", tr.State())
	}
	if f := tr.Sample(now); f != (Frame{Opacity: 0, Offset: 20}) {
		t.Fatalf("unexpected initial frame %+v", f)
	}
	if tr.Settle() {
		t.Fatal("settle before start should be rejected")
	}

	if !tr.Start(now) {
		t.Fatal("expected first start to succeed")
	}
	if tr.State() != Animating {
		t.Fatalf("expected animating, got %s", tr.State())
	}
	if f := tr.Sample(now); f != (Frame{Opacity: 0, Offset: 20}) {
		t.Fatalf("expected start frame at t=0, got %+v", f)
	}

	mid := tr.Sample(now.Add(400 * time.Millisecond))
	if !near(mid.Opacity, 0.5) || !near(mid.Offset, 10) {
		t.Fatalf("expected halfway frame, got %+v", mid)
	}

	end := tr.Sample(now.Add(800 * time.Millisecond))
	if !near(end.Opacity, 1) || !near(end.Offset, 0) {
		t.Fatalf("expected final frame at duration, got %+v", end)
	}

	if !tr.Settle() {
		t.Fatal("expected settle to succeed")
	}
	if tr.State() != Settled {
		t.Fatalf("expected settled, got %s", tr.State())
	}
	if f := tr.Sample(now); f != (Frame{Opacity: 1, Offset: 0}) {
		t.Fatalf("settled transition should stay at final frame, got %+v", f)
	}
}

func TestTransitionRunsOnce(t *testing.T) {
	now := time.Now()
	tr := NewTransition(Mount)
	tr.Start(now)
	if tr.Start(now.Add(time.Second)) {
		t.Fatal("restart while animating should be rejected")
	}
	tr.Settle()
	if tr.Start(now.Add(2 * time.Second)) {
		t.Fatal("restart after settle should be rejected")
	}
	if tr.Settle() {
		t.Fatal("second settle should be rejected")
	}
	if tr.State() != Settled {
		t.Fatalf("expected settled, got %s", tr.State())
	}

	fresh := NewTransition(Mount)
	if fresh.State() != NotStarted {
		t.Fatal("a new transition should start fresh")
	}
}

func TestTransitionDelay(t *testing.T) {
	now := time.Now()
	tr := NewTransition(Badge)
	tr.Start(now)

	if f := tr.Sample(now.Add(500 * time.Millisecond)); f != Badge.From {
		t.Fatalf("expected from frame during delay, got %+v", f)
	}
	if got := Badge.Total(); got != 900*time.Millisecond {
		t.Fatalf("unexpected total %v", got)
	}
	f := tr.Sample(now.Add(Badge.Total()))
	if !near(f.Opacity, 1) || !near(f.Offset, 0) {
		t.Fatalf("expected final frame after total, got %+v", f)
	}
}

func TestMountSpec(t *testing.T) {
	if Mount.Duration != 800*time.Millisecond {
		t.Fatalf("unexpected mount duration %v", Mount.Duration)
	}
	if ShowreelMount.Delay != 100*time.Millisecond {
		t.Fatalf("unexpected showreel delay %v", ShowreelMount.Delay)
	}
}

func TestEaseInOut(t *testing.T) {
	if EaseInOut(0) != 0 || EaseInOut(1) != 1 {
		t.Fatal("ease must pin its endpoints")
	}
	if !near(EaseInOut(0.5), 0.5) {
		t.Fatalf("ease midpoint = %v", EaseInOut(0.5))
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("ease not monotonic at %d", i)
		}
		prev = v
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		NotStarted: "not-started",
		Animating:  "animating",
		Settled:    "settled",
		State(9):   "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Fatalf("%d: got %q want %q", s, s.String(), want)
		}
	}
}
