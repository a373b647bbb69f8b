package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/sitwatch/internal/posture"
	"github.com/stigoleg/sitwatch/internal/util"
)

// tickMsg is sent by the interval scheduler
type tickMsg time.Time

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.Timer.Handle(posture.Tick{Now: time.Time(msg)})
		m = m.observeWarning()
		return m, tick(m.TickInterval)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Help.Width = msg.Width
		width := barWidth(msg.Width)
		m.sittingBar.Width = width
		m.standingBar.Width = width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.Keys.ToggleHelp) {
			if m.State == stateHelp {
				m.State = stateTracking
			} else {
				m.State = stateHelp
			}
			return m, nil
		}

		switch m.State {
		case stateHelp:
			if key.Matches(msg, m.Keys.Back) {
				m.State = stateTracking
			}
		case stateTracking:
			switch {
			case key.Matches(msg, m.Keys.Toggle):
				m.Timer.Handle(posture.Toggle{})
				log.Printf("ui: now %s", m.Timer.CurrentPosture())
				m = m.observeWarning()
			case key.Matches(msg, m.Keys.Reset):
				m.Timer.Handle(posture.Reset{})
				log.Printf("ui: reset")
				m = m.observeWarning()
			}
		}
		return m, nil
	}

	return m, nil
}

// observeWarning logs the first tick on which the sitting warning turns on.
func (m Model) observeWarning() Model {
	warning := m.Timer.SittingWarningExceeded()
	if warning && !m.warned {
		log.Printf("ui: sitting warning after %s (limit %s)",
			util.FormatClock(m.Timer.SittingElapsed()),
			util.FormatLimit(m.Timer.Thresholds().MaxSitting))
	}
	m.warned = warning
	return m
}

func barWidth(termWidth int) int {
	width := termWidth - 40
	if width > defaultBarWidth {
		return defaultBarWidth
	}
	if width < 10 {
		return 10
	}
	return width
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
