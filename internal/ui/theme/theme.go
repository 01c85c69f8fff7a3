// Package theme holds the colors and text styles shared by all screens.
package theme

import "charm.land/lipgloss/v2"

// Palette. Warm accents on slate, easy on the eyes over a long session.
var (
	Primary   = lipgloss.Color("#D97706") // amber
	Secondary = lipgloss.Color("#0EA5E9") // sky
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Warning   = lipgloss.Color("#FACC15")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title    = lipgloss.NewStyle().Foreground(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Notice   = lipgloss.NewStyle().Foreground(Warning)

	Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(1, 2)
)

// Answer and menu states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Meter cells.
var (
	MeterFilled = lipgloss.NewStyle().Background(Secondary)
	MeterEmpty  = lipgloss.NewStyle().Background(Border)
)
