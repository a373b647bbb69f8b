package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/sitwatch/internal/posture"
)

const defaultBarWidth = 30

// Options configures a Model.
type Options struct {
	TickInterval time.Duration
	Version      string

	// Usage is the flag listing shown on the help screen.
	Usage string
}

// Model is the bubbletea model rendering a posture.Timer. It feeds the timer
// its Toggle, Reset and Tick events and never changes it otherwise.
type Model struct {
	State        state
	Timer        *posture.Timer
	Keys         KeyMap
	Help         help.Model
	TickInterval time.Duration
	Version      string
	Usage        string
	Width        int

	// warned remembers the last observed warning so its onset is logged once.
	warned      bool
	sittingBar  progress.Model
	standingBar progress.Model
}

// InitialModel returns the initial model for the TUI.
func InitialModel(timer *posture.Timer, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = posture.DefaultTickInterval
	}
	return Model{
		State:        stateTracking,
		Timer:        timer,
		Keys:         DefaultKeys(),
		Help:         NewHelpModel(),
		TickInterval: opts.TickInterval,
		Version:      opts.Version,
		Usage:        opts.Usage,
		sittingBar:   newBar(),
		standingBar:  newBar(),
	}
}

func newBar() progress.Model {
	bar := progress.New(
		progress.WithGradient(Current.BarGradientA, Current.BarGradientB),
		progress.WithoutPercentage(),
	)
	bar.Width = defaultBarWidth
	return bar
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick(m.TickInterval)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}
