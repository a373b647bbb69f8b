// Package posture tracks time spent sitting versus standing.
package posture

import "time"

// Posture identifies which of the two postures is active.
type Posture int

const (
	PostureSitting Posture = iota
	PostureStanding
)

func (p Posture) String() string {
	switch p {
	case PostureSitting:
		return "SITTING"
	case PostureStanding:
		return "STANDING"
	default:
		return "UNKNOWN"
	}
}

// Other returns the opposite posture.
func (p Posture) Other() Posture {
	if p == PostureSitting {
		return PostureStanding
	}
	return PostureSitting
}

// State is the active posture together with the moment its elapsed time was
// last folded into the accumulator. Sitting and Standing are the only
// implementations.
type State interface {
	Posture() Posture
	Stamp() time.Time
	isState()
}

// Sitting is the active state while the user sits.
type Sitting struct {
	LastTick time.Time
}

// Standing is the active state while the user stands.
type Standing struct {
	LastTick time.Time
}

func (Sitting) Posture() Posture { return PostureSitting }

func (s Sitting) Stamp() time.Time { return s.LastTick }

func (Sitting) isState() {}

func (Standing) Posture() Posture { return PostureStanding }

func (s Standing) Stamp() time.Time { return s.LastTick }

func (Standing) isState() {}
