// Package screen defines what the router stacks and the per-process study
// session the screens share.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/ui/layout"
)

// Screen is one page of the TUI. View draws only the body; the frame
// around it belongs to the app.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens holding work that must stop when the
// screen leaves the stack.
type Closer interface {
	Close()
}
