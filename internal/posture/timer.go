package posture

import "time"

// Timer accumulates sitting and standing time. It is not safe for concurrent
// use; callers deliver events one at a time.
type Timer struct {
	clock      Clock
	thresholds Thresholds
	state      State
	sitting    time.Duration
	standing   time.Duration
}

// Snapshot is a read-only copy of a Timer's observable values.
type Snapshot struct {
	Posture  Posture
	Sitting  time.Duration
	Standing time.Duration
	Warning  bool
}

// New returns a Timer sitting since clock.Now() with both accumulators at
// zero. Zero thresholds fall back to the defaults.
func New(clock Clock, thresholds Thresholds) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{
		clock:      clock,
		thresholds: thresholds.withDefaults(),
		state:      stateAt(PostureSitting, clock.Now()),
	}
}

// Handle applies a single event.
func (t *Timer) Handle(event Event) {
	switch e := event.(type) {
	case Toggle:
		t.Toggle()
	case Reset:
		t.Reset()
	case Tick:
		t.Tick(e.Now)
	}
}

// Toggle switches posture. The accumulator of the posture being left is
// zeroed; the one being entered keeps its previous value.
func (t *Timer) Toggle() {
	left := t.state.Posture()
	*t.accumulator(left) = 0
	t.state = stateAt(left.Other(), t.clock.Now())
}

// Tick adds now - LastTick to the active posture. A timestamp earlier than
// LastTick is ignored.
func (t *Timer) Tick(now time.Time) {
	last := t.state.Stamp()
	if now.Before(last) {
		return
	}
	active := t.state.Posture()
	*t.accumulator(active) += now.Sub(last)
	t.state = stateAt(active, now)
}

func (t *Timer) accumulator(p Posture) *time.Duration {
	if p == PostureStanding {
		return &t.standing
	}
	return &t.sitting
}

func stateAt(p Posture, at time.Time) State {
	if p == PostureStanding {
		return Standing{LastTick: at}
	}
	return Sitting{LastTick: at}
}

// Reset zeroes both accumulators and forces the sitting posture.
func (t *Timer) Reset() {
	t.sitting = 0
	t.standing = 0
	t.state = stateAt(PostureSitting, t.clock.Now())
}

// State returns the active state variant.
func (t *Timer) State() State { return t.state }

// CurrentPosture returns the active posture.
func (t *Timer) CurrentPosture() Posture { return t.state.Posture() }

// SittingElapsed returns the sitting accumulator.
func (t *Timer) SittingElapsed() time.Duration { return t.sitting }

// StandingElapsed returns the standing accumulator.
func (t *Timer) StandingElapsed() time.Duration { return t.standing }

// Elapsed returns the accumulator for p.
func (t *Timer) Elapsed(p Posture) time.Duration {
	if p == PostureStanding {
		return t.standing
	}
	return t.sitting
}

// Thresholds returns the limits the Timer was built with.
func (t *Timer) Thresholds() Thresholds { return t.thresholds }

// SittingWarningExceeded reports whether sitting time is strictly above
// MaxSitting. Standing time never raises a warning.
func (t *Timer) SittingWarningExceeded() bool {
	return t.sitting > t.thresholds.MaxSitting
}

// Progress returns the accumulator for p as a fraction of its threshold,
// clamped to [0, 1].
func (t *Timer) Progress(p Posture) float64 {
	limit := t.thresholds.For(p)
	if limit <= 0 {
		return 0
	}
	ratio := float64(t.Elapsed(p)) / float64(limit)
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Snapshot copies the current observable values.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		Posture:  t.CurrentPosture(),
		Sitting:  t.sitting,
		Standing: t.standing,
		Warning:  t.SittingWarningExceeded(),
	}
}
