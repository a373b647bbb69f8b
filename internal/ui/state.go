package ui

// state identifies which screen the TUI is showing.
type state int

const (
	stateTracking state = iota
	stateHelp
)

func (s state) String() string {
	switch s {
	case stateTracking:
		return "Tracking"
	case stateHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
