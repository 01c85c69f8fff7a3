package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens/home"
	"github.com/abhisek/studyhub/internal/screens/welcome"
	"github.com/abhisek/studyhub/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *screen.Session
	width  int
	height int
}

// NewAppModel creates the root model, starting on the welcome screen.
func NewAppModel(sess *screen.Session) AppModel {
	topic := sess.Controller().Library().Topic
	homeFactory := func() screen.Screen { return home.New(sess) }
	return AppModel{
		router: router.New(welcome.New(topic, homeFactory)),
		sess:   sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.TooSmall(m.width, m.height))
		return v
	}

	status := "LLM: off"
	if m.sess.Controller().ExternalAvailable() {
		status = "LLM: on"
	}
	frame := layout.Frame{
		Trail:  m.router.Trail(),
		Status: status,
		Hints:  m.footerHints(m.router.Active()),
	}
	v.SetContent(frame.Render(m.width, m.height, m.router.View))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	} else if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navigate"},
			layout.KeyHint{Key: "Enter", Description: "Select"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program.
func Run(sess *screen.Session) error {
	p := tea.NewProgram(NewAppModel(sess))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
