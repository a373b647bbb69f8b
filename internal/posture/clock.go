package posture

import "time"

// Clock provides the current time; tests substitute a fixed one.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, including its monotonic reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
