package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/ui/theme"
)

// Meter is a labelled horizontal gauge, used for test progress and the
// timed quiz countdown.
type Meter struct {
	Label    string
	Fraction float64 // clamped to [0, 1] when drawn
	Width    int
}

// NewMeter creates a meter spanning width cells including the label.
func NewMeter(label string, fraction float64, width int) Meter {
	return Meter{Label: label, Fraction: fraction, Width: width}
}

// View renders the label followed by the gauge. The gauge is at least four
// cells wide.
func (m Meter) View() string {
	var label string
	if m.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label) + "  "
	}

	cells := max(m.Width-lipgloss.Width(label), 4)
	filled := int(float64(cells)*min(max(m.Fraction, 0), 1) + 0.5)

	return label +
		theme.MeterFilled.Render(strings.Repeat(" ", filled)) +
		theme.MeterEmpty.Render(strings.Repeat(" ", cells-filled))
}
