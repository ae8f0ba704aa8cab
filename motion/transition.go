package motion

import "time"

// State is the lifecycle of a one-shot transition.
type State int

const (
	NotStarted State = iota
	Animating
	Settled
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Frame is a sampled animation value: element opacity and vertical offset in
// logical units (terminal rows or CSS pixels, depending on the host).
type Frame struct {
	Opacity float64
	Offset  float64
}

// Spec describes a one-shot transition.
type Spec struct {
	From     Frame
	To       Frame
	Delay    time.Duration
	Duration time.Duration
}

// Total is how long after Start the transition settles.
func (s Spec) Total() time.Duration {
	return s.Delay + s.Duration
}

var (
	// Mount fades the hero copy in on first render.
	Mount = Spec{
		From:     Frame{Opacity: 0, Offset: 20},
		To:       Frame{Opacity: 1, Offset: 0},
		Duration: 800 * time.Millisecond,
	}

	// ShowreelMount is Mount staggered for the hero image.
	ShowreelMount = Spec{
		From:     Mount.From,
		To:       Mount.To,
		Delay:    100 * time.Millisecond,
		Duration: Mount.Duration,
	}

	// Badge pops the caption under the showreel in after the hero has mostly settled.
	Badge = Spec{
		From:     Frame{Opacity: 0, Offset: 12},
		To:       Frame{Opacity: 1, Offset: 0},
		Delay:    600 * time.Millisecond,
		Duration: 300 * time.Millisecond,
	}

	// CardReveal runs once per project card the first time it scrolls into view.
	CardReveal = Spec{
		From:     Frame{Opacity: 0, Offset: 16},
		To:       Frame{Opacity: 1, Offset: 0},
		Duration: 400 * time.Millisecond,
	}
)

// Transition is a one-shot animation: NotStarted -> Animating -> Settled.
// It never moves backwards; a re-mount needs a fresh Transition.
type Transition struct {
	spec    Spec
	state   State
	started time.Time
}

// NewTransition returns a transition in the NotStarted state.
func NewTransition(spec Spec) *Transition {
	return &Transition{spec: spec}
}

func (t *Transition) Spec() Spec {
	return t.spec
}

func (t *Transition) State() State {
	return t.state
}

// Start begins the transition. It reports false if the transition already ran.
func (t *Transition) Start(now time.Time) bool {
	if t.state != NotStarted {
		return false
	}
	t.state = Animating
	t.started = now
	return true
}

// Settle completes the transition. It is called by the host's completion timer
// and reports false unless the transition was animating.
func (t *Transition) Settle() bool {
	if t.state != Animating {
		return false
	}
	t.state = Settled
	return true
}

// Sample returns the frame to draw at now.
func (t *Transition) Sample(now time.Time) Frame {
	switch t.state {
	case NotStarted:
		return t.spec.From
	case Settled:
		return t.spec.To
	}

	elapsed := now.Sub(t.started) - t.spec.Delay
	if elapsed <= 0 {
		return t.spec.From
	}
	progress := 1.0
	if t.spec.Duration > 0 {
		progress = Clamp01(float64(elapsed) / float64(t.spec.Duration))
	}
	e := EaseInOut(progress)
	return Frame{
		Opacity: Lerp(t.spec.From.Opacity, t.spec.To.Opacity, e),
		Offset:  Lerp(t.spec.From.Offset, t.spec.To.Offset, e),
	}
}

// EaseInOut is a cubic ease-in-out curve on [0,1].
func EaseInOut(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
