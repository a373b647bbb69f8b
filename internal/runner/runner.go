// Package runner drives a posture.Timer without a terminal UI. A single loop
// goroutine owns the timer: interval ticks and user events are applied in
// the order they are received, one at a time.
package runner

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/stigoleg/sitwatch/internal/posture"
)

var (
	// ErrAlreadyRunning is returned by Start on a running Runner.
	ErrAlreadyRunning = errors.New("runner already running")
	// ErrNotRunning is returned by Send when the loop is not accepting events.
	ErrNotRunning = errors.New("runner not running")
)

// Reason says why a Report was published.
type Reason int

const (
	ReasonStart Reason = iota
	ReasonPeriodic
	ReasonToggle
	ReasonReset
	ReasonWarning
	ReasonStop
)

func (r Reason) String() string {
	switch r {
	case ReasonStart:
		return "start"
	case ReasonPeriodic:
		return "periodic"
	case ReasonToggle:
		return "toggle"
	case ReasonReset:
		return "reset"
	case ReasonWarning:
		return "warning"
	case ReasonStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Report is a snapshot of the timer published from the loop goroutine.
type Report struct {
	At     time.Time
	Reason Reason
	posture.Snapshot
}

// Options configures a Runner.
type Options struct {
	// TickInterval spaces Tick events when Ticks is nil.
	TickInterval time.Duration

	// ReportInterval spaces periodic reports when Reports is nil. Zero
	// disables periodic reports.
	ReportInterval time.Duration

	// Ticks and Reports replace the internal tickers.
	Ticks   <-chan time.Time
	Reports <-chan time.Time

	// OnReport is called from the loop goroutine and must not block.
	OnReport func(Report)
}

// Runner serializes events into a posture.Timer.
type Runner struct {
	mu      sync.Mutex
	running bool
	timer   *posture.Timer
	opts    Options
	events  chan posture.Event
	cancel  context.CancelFunc
	done    chan struct{}
	warned  bool
}

// New returns a stopped Runner for timer.
func New(timer *posture.Timer, opts Options) *Runner {
	if opts.TickInterval <= 0 {
		opts.TickInterval = posture.DefaultTickInterval
	}
	return &Runner{
		timer: timer,
		opts:  opts,
	}
}

// IsRunning reports whether the loop is active.
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Start launches the loop. It runs until ctx is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrAlreadyRunning
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.events = make(chan posture.Event)
	r.done = make(chan struct{})
	r.running = true

	ticks, stopTicks := r.opts.Ticks, func() {}
	if ticks == nil {
		ticker := time.NewTicker(r.opts.TickInterval)
		ticks, stopTicks = ticker.C, ticker.Stop
	}
	reports, stopReports := r.opts.Reports, func() {}
	if reports == nil && r.opts.ReportInterval > 0 {
		ticker := time.NewTicker(r.opts.ReportInterval)
		reports, stopReports = ticker.C, ticker.Stop
	}

	go func() {
		defer stopTicks()
		defer stopReports()
		r.loop(ctx, ticks, reports)
	}()

	log.Printf("runner: started (tick=%s)", r.opts.TickInterval)
	return nil
}

func (r *Runner) loop(ctx context.Context, ticks, reports <-chan time.Time) {
	done := r.done
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		r.publish(time.Now(), ReasonStop)
		close(done)
	}()

	r.warned = r.timer.SittingWarningExceeded()
	r.publish(time.Now(), ReasonStart)

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticks:
			r.timer.Handle(posture.Tick{Now: now})
			if warning := r.timer.SittingWarningExceeded(); warning != r.warned {
				r.warned = warning
				if warning {
					log.Printf("runner: sitting warning")
					r.publish(now, ReasonWarning)
				}
			}
		case now := <-reports:
			r.publish(now, ReasonPeriodic)
		case event := <-r.events:
			r.timer.Handle(event)
			r.warned = r.timer.SittingWarningExceeded()
			switch event.(type) {
			case posture.Toggle:
				r.publish(time.Now(), ReasonToggle)
			case posture.Reset:
				r.publish(time.Now(), ReasonReset)
			}
		}
	}
}

func (r *Runner) publish(at time.Time, reason Reason) {
	if r.opts.OnReport == nil {
		return
	}
	r.opts.OnReport(Report{
		At:       at,
		Reason:   reason,
		Snapshot: r.timer.Snapshot(),
	})
}

// Send delivers an event to the loop and waits until the loop has taken it.
func (r *Runner) Send(ctx context.Context, event posture.Event) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return ErrNotRunning
	}
	events, done := r.events, r.done
	r.mu.Unlock()

	select {
	case events <- event:
		return nil
	case <-done:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when the loop exits. It is nil before the first Start.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// Stop stops the loop
func (r *Runner) Stop() error {
	return r.StopWithTimeout(0)
}

// StopWithTimeout stops the loop and waits up to timeout for it to exit.
func (r *Runner) StopWithTimeout(timeout time.Duration) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}

	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	done := r.done
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case <-done:
		log.Printf("runner: stopped")
		return nil
	case <-ctx.Done():
		log.Printf("runner: stop timeout exceeded after %v", timeout)
		return ctx.Err()
	}
}
