package posture

import "time"

// Event is a message the presentation layer feeds into a Timer.
type Event interface {
	isEvent()
}

// Toggle switches to the other posture.
type Toggle struct{}

// Reset zeroes both accumulators and returns to sitting.
type Reset struct{}

// Tick integrates elapsed time up to Now into the active posture.
type Tick struct {
	Now time.Time
}

func (Toggle) isEvent() {}

func (Reset) isEvent() {}

func (Tick) isEvent() {}
