package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Value = lipgloss.NewStyle()

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Danger levels
var (
	DangerHigh = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	DangerMedium = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	DangerLow = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

// DangerStyle picks the style for a decoded danger label. Labels the palette
// doesn't know render unstyled.
func DangerStyle(level string) lipgloss.Style {
	switch strings.ToLower(level) {
	case "high", "severe", "critical", "yes":
		return DangerHigh
	case "medium", "moderate":
		return DangerMedium
	case "low", "mild", "no":
		return DangerLow
	default:
		return Value
	}
}
