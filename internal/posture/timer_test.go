package posture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newTestTimer(th Thresholds) (*Timer, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	return New(clock, th), clock
}

func TestNew(t *testing.T) {
	timer, clock := newTestTimer(Thresholds{})

	assert.Equal(t, PostureSitting, timer.CurrentPosture())
	assert.Zero(t, timer.SittingElapsed())
	assert.Zero(t, timer.StandingElapsed())
	assert.False(t, timer.SittingWarningExceeded())
	assert.Equal(t, Sitting{LastTick: clock.now}, timer.State())
	assert.Equal(t, DefaultThresholds(), timer.Thresholds())
}

func TestNewNilClock(t *testing.T) {
	timer := New(nil, DefaultThresholds())
	require.NotNil(t, timer)
	assert.False(t, timer.State().Stamp().IsZero())
}

func TestTickWhileSitting(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())

	timer.Tick(clock.Advance(5 * time.Second))

	assert.Equal(t, 5*time.Second, timer.SittingElapsed())
	assert.Zero(t, timer.StandingElapsed())
	assert.Equal(t, clock.now, timer.State().Stamp())
}

func TestTickIsIndependentOfGranularity(t *testing.T) {
	tests := []struct {
		name  string
		steps []time.Duration
	}{
		{name: "single tick", steps: []time.Duration{90 * time.Second}},
		{name: "two ticks", steps: []time.Duration{30 * time.Second, 60 * time.Second}},
		{name: "uneven ticks", steps: []time.Duration{time.Millisecond, 10 * time.Millisecond, 0, 89*time.Second + 989*time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, clock := newTestTimer(DefaultThresholds())
			for _, step := range tt.steps {
				timer.Tick(clock.Advance(step))
			}
			assert.Equal(t, 90*time.Second, timer.SittingElapsed())
		})
	}
}

func TestTenMillisecondTicks(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())
	for i := 0; i < 1000; i++ {
		timer.Tick(clock.Advance(DefaultTickInterval))
	}
	assert.Equal(t, 10*time.Second, timer.SittingElapsed())
}

func TestTickOnlyTouchesActivePosture(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())
	timer.Tick(clock.Advance(time.Minute))
	timer.Toggle()
	timer.Tick(clock.Advance(2 * time.Minute))
	timer.Toggle()

	sittingStamp := timer.State().Stamp()
	timer.Tick(clock.Advance(3 * time.Minute))

	assert.Equal(t, 3*time.Minute, timer.SittingElapsed())
	assert.Zero(t, timer.StandingElapsed())
	assert.True(t, timer.State().Stamp().After(sittingStamp))
}

func TestTickBackwardsIsIgnored(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())
	timer.Tick(clock.Advance(10 * time.Second))
	stamp := timer.State().Stamp()

	timer.Tick(stamp.Add(-3 * time.Second))

	assert.Equal(t, 10*time.Second, timer.SittingElapsed())
	assert.Equal(t, stamp, timer.State().Stamp())

	timer.Tick(clock.Advance(time.Second))
	assert.Equal(t, 11*time.Second, timer.SittingElapsed())
}

func TestTickBackwardsWhileStanding(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())
	timer.Toggle()
	timer.Tick(clock.Advance(4 * time.Second))

	timer.Tick(clock.now.Add(-time.Hour))

	assert.Equal(t, 4*time.Second, timer.StandingElapsed())
}

func TestToggle(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())
	timer.Tick(clock.Advance(5 * time.Second))

	timer.Toggle()

	assert.Equal(t, PostureStanding, timer.CurrentPosture())
	assert.Zero(t, timer.SittingElapsed(), "posture just left is zeroed")
	assert.Zero(t, timer.StandingElapsed())
	assert.Equal(t, Standing{LastTick: clock.now}, timer.State())
}

func TestToggleSequence(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())
	timer.Toggle()
	timer.Tick(clock.Advance(7 * time.Second))
	timer.Toggle()
	timer.Tick(clock.Advance(2 * time.Second))

	// standing was left, so it restarted
	assert.Zero(t, timer.StandingElapsed())
	assert.Equal(t, 2*time.Second, timer.SittingElapsed())

	timer.Toggle()
	timer.Tick(clock.Advance(3 * time.Second))
	assert.Zero(t, timer.SittingElapsed())
	assert.Equal(t, 3*time.Second, timer.StandingElapsed())
}

func TestToggleDoesNotCountTimeBeforeSwitch(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())
	clock.Advance(time.Minute)
	timer.Toggle()
	timer.Tick(clock.Advance(time.Second))

	assert.Equal(t, time.Second, timer.StandingElapsed())
}

func TestReset(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Timer, *fakeClock)
	}{
		{
			name: "while sitting",
			setup: func(timer *Timer, clock *fakeClock) {
				timer.Tick(clock.Advance(2 * time.Hour))
			},
		},
		{
			name: "while standing with ten minutes",
			setup: func(timer *Timer, clock *fakeClock) {
				timer.Toggle()
				timer.Tick(clock.Advance(10 * time.Minute))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, clock := newTestTimer(DefaultThresholds())
			tt.setup(timer, clock)
			clock.Advance(time.Second)

			timer.Reset()

			assert.Equal(t, PostureSitting, timer.CurrentPosture())
			assert.Zero(t, timer.SittingElapsed())
			assert.Zero(t, timer.StandingElapsed())
			assert.False(t, timer.SittingWarningExceeded())
			assert.Equal(t, Sitting{LastTick: clock.now}, timer.State())
		})
	}
}

func TestSittingWarning(t *testing.T) {
	th := Thresholds{MaxSitting: 60 * time.Second, MaxStanding: 30 * time.Minute}
	timer, clock := newTestTimer(th)

	timer.Tick(clock.Advance(60 * time.Second))
	assert.False(t, timer.SittingWarningExceeded(), "equal to threshold is not over it")

	timer.Tick(clock.Advance(time.Second))
	assert.True(t, timer.SittingWarningExceeded())
}

func TestSittingWarningFlipsOnCrossingTick(t *testing.T) {
	th := Thresholds{MaxSitting: time.Second, MaxStanding: time.Second}
	timer, clock := newTestTimer(th)

	crossed := 0
	for i := 1; i <= 200; i++ {
		timer.Tick(clock.Advance(DefaultTickInterval))
		if timer.SittingWarningExceeded() {
			crossed = i
			break
		}
	}
	assert.Equal(t, 101, crossed)
}

func TestNoWarningWhileStanding(t *testing.T) {
	th := Thresholds{MaxSitting: 60 * time.Second, MaxStanding: 30 * time.Minute}
	timer, clock := newTestTimer(th)
	timer.Toggle()

	timer.Tick(clock.Advance(40 * time.Minute))

	assert.Equal(t, PostureStanding, timer.CurrentPosture())
	assert.False(t, timer.SittingWarningExceeded())
}

func TestSittingFrozenWhileStanding(t *testing.T) {
	th := Thresholds{MaxSitting: 60 * time.Second, MaxStanding: 30 * time.Minute}
	timer, clock := newTestTimer(th)
	timer.Tick(clock.Advance(61 * time.Second))
	require.True(t, timer.SittingWarningExceeded())

	timer.Toggle()
	assert.False(t, timer.SittingWarningExceeded())
	timer.Tick(clock.Advance(time.Hour))
	assert.False(t, timer.SittingWarningExceeded())
}

func TestHandle(t *testing.T) {
	timer, clock := newTestTimer(DefaultThresholds())

	timer.Handle(Tick{Now: clock.Advance(5 * time.Second)})
	assert.Equal(t, 5*time.Second, timer.SittingElapsed())

	timer.Handle(Toggle{})
	assert.Equal(t, PostureStanding, timer.CurrentPosture())

	timer.Handle(Tick{Now: clock.Advance(time.Second)})
	assert.Equal(t, time.Second, timer.StandingElapsed())

	timer.Handle(Reset{})
	assert.Equal(t, Snapshot{Posture: PostureSitting}, timer.Snapshot())
}

func TestProgress(t *testing.T) {
	th := Thresholds{MaxSitting: 10 * time.Second, MaxStanding: 20 * time.Second}
	timer, clock := newTestTimer(th)

	timer.Tick(clock.Advance(5 * time.Second))
	assert.InDelta(t, 0.5, timer.Progress(PostureSitting), 1e-9)
	assert.Zero(t, timer.Progress(PostureStanding))

	timer.Tick(clock.Advance(time.Minute))
	assert.Equal(t, 1.0, timer.Progress(PostureSitting))
}

func TestPostureString(t *testing.T) {
	assert.Equal(t, "SITTING", PostureSitting.String())
	assert.Equal(t, "STANDING", PostureStanding.String())
	assert.Equal(t, "UNKNOWN", Posture(7).String())
	assert.Equal(t, PostureStanding, PostureSitting.Other())
	assert.Equal(t, PostureSitting, PostureStanding.Other())
}
