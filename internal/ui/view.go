package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/sitwatch/internal/posture"
	"github.com/stigoleg/sitwatch/internal/util"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	switch m.State {
	case stateHelp:
		return helpView(m)
	default:
		return trackingView(m)
	}
}

func trackingView(m Model) string {
	var b strings.Builder
	current := m.Timer.CurrentPosture()

	b.WriteString(Current.Title.Render("Don't sit"))
	b.WriteString("\n\n")

	b.WriteString(Current.Status.Render(fmt.Sprintf("You are currently: %s", current)))
	b.WriteString("\n\n")

	b.WriteString(postureRow(m, posture.PostureSitting, "Sitting", m.sittingBar))
	b.WriteString("\n")
	b.WriteString(postureRow(m, posture.PostureStanding, "Standing", m.standingBar))
	b.WriteString("\n\n")

	b.WriteString(controls(current))
	b.WriteString("\n")

	if m.Timer.SittingWarningExceeded() {
		b.WriteString("\n" + Current.Warning.Render(WarningMessage(m.Timer.Thresholds().MaxSitting)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.Help.View(m.Keys.ForState(m.State)))
	return b.String()
}

func postureRow(m Model, p posture.Posture, label string, bar progress.Model) string {
	labelStyle := Current.IdleLabel
	if m.Timer.CurrentPosture() == p {
		labelStyle = Current.ActiveLabel
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render(label),
		Current.Clock.Render(util.FormatClock(m.Timer.Elapsed(p))),
		" ",
		bar.ViewAs(m.Timer.Progress(p)),
	)
}

// controls renders the button row. Both posture buttons toggle; their labels
// follow the active posture.
func controls(current posture.Posture) string {
	sittingLabel, standingLabel := "Stop sitting", "Start standing"
	if current == posture.PostureStanding {
		sittingLabel, standingLabel = "Start sitting", "Stop standing"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		Current.Button.Render(sittingLabel),
		" ",
		Current.Button.Render(standingLabel),
		" ",
		Current.ResetButton.Render("Reset"),
	)
}

// WarningMessage is the text shown once sitting time exceeds limit.
func WarningMessage(limit time.Duration) string {
	return fmt.Sprintf("You have been sitting for over %s! Get up, lazy!", util.FormatLimit(limit))
}

func helpView(m Model) string {
	help := `Sitwatch Help

Usage:
  sitwatch [flags]
  sitwatch watch [flags]

Keys:
  space/t  : Switch posture (resets the posture you leave)
  r        : Reset both timers and sit
  h/?      : Toggle this help
  q        : Quit

Press 'esc' or 'h' to close help`

	if m.Usage != "" {
		help += "\n\nFlags:\n" + strings.TrimRight(m.Usage, "\n")
	}
	if m.Version != "" {
		help += "\n\nVersion: " + m.Version
	}
	return Current.Help.Render(help)
}
