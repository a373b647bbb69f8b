package posture

import "time"

const (
	// DefaultMaxSittingTime is how long the user may sit before the warning fires.
	DefaultMaxSittingTime = 30 * time.Minute

	// DefaultMaxStandingTime bounds the standing progress bar. It does not
	// drive any warning.
	DefaultMaxStandingTime = 30 * time.Minute

	// DefaultTickInterval is the nominal spacing of Tick events.
	DefaultTickInterval = 10 * time.Millisecond
)

// Thresholds holds the posture limits. They are fixed for the life of a Timer.
type Thresholds struct {
	MaxSitting  time.Duration
	MaxStanding time.Duration
}

// DefaultThresholds returns the built-in limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxSitting:  DefaultMaxSittingTime,
		MaxStanding: DefaultMaxStandingTime,
	}
}

// For returns the limit that applies to p.
func (th Thresholds) For(p Posture) time.Duration {
	if p == PostureStanding {
		return th.MaxStanding
	}
	return th.MaxSitting
}

func (th Thresholds) withDefaults() Thresholds {
	if th.MaxSitting <= 0 {
		th.MaxSitting = DefaultMaxSittingTime
	}
	if th.MaxStanding <= 0 {
		th.MaxStanding = DefaultMaxStandingTime
	}
	return th
}
