// Package ui provides the terminal user interface for sitwatch.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Warning:   lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title        lipgloss.Style
	Status       lipgloss.Style
	ActiveLabel  lipgloss.Style
	IdleLabel    lipgloss.Style
	Clock        lipgloss.Style
	Button       lipgloss.Style
	ResetButton  lipgloss.Style
	Warning      lipgloss.Style
	Help         lipgloss.Style
	HelpKey      lipgloss.Style
	Error        lipgloss.Style
	BarGradientA string
	BarGradientB string
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	button := base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(defaultColors.Highlight).
		Padding(0, 2)

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Status: base.
			Bold(true).
			Foreground(defaultColors.Special),

		ActiveLabel: base.
			Bold(true).
			Width(12).
			Foreground(defaultColors.Highlight),

		IdleLabel: base.
			Width(12).
			Foreground(defaultColors.Subtle),

		Clock: base.
			Bold(true),

		Button: button,

		ResetButton: button.
			BorderForeground(defaultColors.Error).
			Foreground(defaultColors.Error),

		Warning: base.
			Bold(true).
			Foreground(defaultColors.Warning),

		Help: base.
			Foreground(defaultColors.Subtle),

		HelpKey: lipgloss.NewStyle().
			Foreground(defaultColors.Highlight),

		Error: base.
			Foreground(defaultColors.Error),

		BarGradientA: "#7D56F4",
		BarGradientB: "#43BF6D",
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
