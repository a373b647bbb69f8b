package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/sitwatch/internal/posture"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type harness struct {
	runner  *Runner
	timer   *posture.Timer
	clock   *fixedClock
	ticks   chan time.Time
	reports chan time.Time
	out     chan Report
}

func newHarness(t *testing.T, th posture.Thresholds) *harness {
	t.Helper()
	h := &harness{
		clock:   &fixedClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		ticks:   make(chan time.Time),
		reports: make(chan time.Time),
		out:     make(chan Report, 64),
	}
	h.timer = posture.New(h.clock, th)
	h.runner = New(h.timer, Options{
		Ticks:    h.ticks,
		Reports:  h.reports,
		OnReport: func(r Report) { h.out <- r },
	})
	require.NoError(t, h.runner.Start(context.Background()))
	t.Cleanup(func() { _ = h.runner.Stop() })

	first := h.next(t)
	require.Equal(t, ReasonStart, first.Reason)
	return h
}

func (h *harness) next(t *testing.T) Report {
	t.Helper()
	select {
	case r := <-h.out:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for report")
		return Report{}
	}
}

func (h *harness) tick(d time.Duration) {
	h.clock.now = h.clock.now.Add(d)
	h.ticks <- h.clock.now
}

func TestStartStop(t *testing.T) {
	h := newHarness(t, posture.DefaultThresholds())
	assert.True(t, h.runner.IsRunning())

	err := h.runner.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, h.runner.Stop())
	assert.False(t, h.runner.IsRunning())
	assert.Equal(t, ReasonStop, h.next(t).Reason)

	assert.NoError(t, h.runner.Stop(), "stopping twice is a no-op")
	assert.ErrorIs(t, h.runner.Send(context.Background(), posture.Toggle{}), ErrNotRunning)
}

func TestTicksAccumulate(t *testing.T) {
	h := newHarness(t, posture.DefaultThresholds())

	for i := 0; i < 500; i++ {
		h.tick(posture.DefaultTickInterval)
	}
	require.NoError(t, h.runner.Stop())
	<-h.runner.Done()

	assert.Equal(t, 5*time.Second, h.timer.SittingElapsed())
}

func TestSendToggleAndReset(t *testing.T) {
	h := newHarness(t, posture.DefaultThresholds())
	ctx := context.Background()

	h.tick(3 * time.Second)
	require.NoError(t, h.runner.Send(ctx, posture.Toggle{}))
	r := h.next(t)
	assert.Equal(t, ReasonToggle, r.Reason)
	assert.Equal(t, posture.PostureStanding, r.Posture)
	assert.Zero(t, r.Sitting)

	h.tick(2 * time.Second)
	require.NoError(t, h.runner.Send(ctx, posture.Reset{}))
	r = h.next(t)
	assert.Equal(t, ReasonReset, r.Reason)
	assert.Equal(t, posture.Snapshot{Posture: posture.PostureSitting}, r.Snapshot)
}

func TestWarningReportedOnce(t *testing.T) {
	h := newHarness(t, posture.Thresholds{MaxSitting: time.Second, MaxStanding: time.Minute})

	h.tick(900 * time.Millisecond)
	h.tick(200 * time.Millisecond)
	r := h.next(t)
	assert.Equal(t, ReasonWarning, r.Reason)
	assert.True(t, r.Warning)

	h.tick(time.Second)
	h.reports <- h.clock.now
	r = h.next(t)
	assert.Equal(t, ReasonPeriodic, r.Reason, "no second warning report")
	assert.Equal(t, 2100*time.Millisecond, r.Sitting)
}

func TestWarningRearmsAfterReset(t *testing.T) {
	h := newHarness(t, posture.Thresholds{MaxSitting: time.Second, MaxStanding: time.Minute})
	ctx := context.Background()

	h.tick(2 * time.Second)
	assert.Equal(t, ReasonWarning, h.next(t).Reason)

	require.NoError(t, h.runner.Send(ctx, posture.Reset{}))
	assert.Equal(t, ReasonReset, h.next(t).Reason)

	h.tick(2 * time.Second)
	assert.Equal(t, ReasonWarning, h.next(t).Reason)
}

func TestParentContextStopsLoop(t *testing.T) {
	timer := posture.New(&fixedClock{now: time.Now()}, posture.DefaultThresholds())
	r := New(timer, Options{TickInterval: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, r.Start(ctx))
	cancel()

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after context cancel")
	}
	assert.False(t, r.IsRunning())
}

func TestSendHonorsContext(t *testing.T) {
	h := newHarness(t, posture.DefaultThresholds())

	// block the loop inside OnReport by filling the report buffer
	for i := 0; i < cap(h.out); i++ {
		h.out <- Report{}
	}
	h.reports <- h.clock.now

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := h.runner.Send(ctx, posture.Toggle{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// drain so Cleanup can stop the loop
	go func() {
		for range h.out {
		}
	}()
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "toggle", ReasonToggle.String())
	assert.Equal(t, "warning", ReasonWarning.String())
	assert.Equal(t, "unknown", Reason(42).String())
}
