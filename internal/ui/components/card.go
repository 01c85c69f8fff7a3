package components

import "github.com/abhisek/studyhub/internal/ui/theme"

// ContentWidth returns the reading width used by every screen, capped so
// prose does not stretch across wide terminals.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-8, 20), 90)
}

// Card wraps content in a rounded border at the given outer width.
func Card(content string, width int) string {
	return theme.Card.Width(width).Render(content)
}

// Banner renders a one-line notice, or "" for an empty message.
func Banner(msg string, width int) string {
	if msg == "" {
		return ""
	}
	return theme.Notice.Width(width).Render("! " + msg)
}
