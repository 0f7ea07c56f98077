package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptport/internal/prompt"
)

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorRaise     = lipgloss.Color("#10B981")
	colorLower     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")

	// Title style
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Result box
	styleResultBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Segment chips, keyed on weight vs 1.0
	styleTagRaised = lipgloss.NewStyle().Foreground(colorRaise)
	styleTagLower  = lipgloss.NewStyle().Foreground(colorLower)
	styleTagPlain  = lipgloss.NewStyle().Foreground(colorMuted)
)

// segmentStyle picks the chip style for a segment: raised weights read
// green, lowered (or negative) weights red, plain ones muted.
func segmentStyle(s prompt.Segment) lipgloss.Style {
	switch {
	case s.Weight > 1:
		return styleTagRaised
	case s.Weight < 1:
		return styleTagLower
	default:
		return styleTagPlain
	}
}
