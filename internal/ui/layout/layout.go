// Package layout draws the chrome around every screen: a header bar, the
// key hint footer and the too-small warning.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/ui/theme"
)

// Smallest terminal the screens are laid out for.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Frame describes the chrome for one render.
type Frame struct {
	Trail  string // breadcrumb of open screens
	Status string // right-aligned, e.g. whether the LLM is on
	Hints  []KeyHint
}

// IsTooSmall reports whether a width x height terminal is below the minimum.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// TooSmall fills the terminal with a resize request.
func TooSmall(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nPlease resize to at least %d x %d\n(currently %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

func (f Frame) header(width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("StudyHub")
	if f.Trail != "" {
		brand += lipgloss.NewStyle().Foreground(theme.Text).Render("  ›  " + f.Trail)
	}
	status := lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.Status)

	inner := max(width-bar.GetHorizontalFrameSize(), 0)
	gap := max(inner-lipgloss.Width(brand)-lipgloss.Width(status), 1)
	return bar.Width(width).Render(brand + strings.Repeat(" ", gap) + status)
}

func (f Frame) footer(width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, h := range f.Hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(key.Render(h.Key) + " " + desc.Render(h.Description))
	}
	return bar.Width(width).Render(b.String())
}

// Render draws the header and footer and gives body whatever height is
// left between them.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	top, bottom := f.header(width), f.footer(width)
	h := max(height-lipgloss.Height(top)-lipgloss.Height(bottom), 0)
	middle := lipgloss.NewStyle().Width(width).Height(h).MaxHeight(h).Render(body(width, h))
	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}
