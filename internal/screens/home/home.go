package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens/flashcards"
	"github.com/abhisek/studyhub/internal/screens/guide"
	"github.com/abhisek/studyhub/internal/screens/practice"
	"github.com/abhisek/studyhub/internal/screens/practicetest"
	"github.com/abhisek/studyhub/internal/screens/timed"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// HomeScreen is the mode menu.
type HomeScreen struct {
	sess *screen.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sess *screen.Session) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{Label: "Study Guide", Action: push(func() screen.Screen { return guide.New(sess) })},
		{Label: "Flashcards", Action: push(func() screen.Screen { return flashcards.New(sess) })},
		{Label: "Practice Questions", Action: push(func() screen.Screen { return practice.New(sess) })},
		{Label: "Practice Test", Action: push(func() screen.Screen { return practicetest.New(sess) })},
		{Label: "Timed Quiz", Action: push(func() screen.Screen { return timed.New(sess) })},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{sess: sess, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(components.ContentWidth(width), 60)
	lib := h.sess.Controller().Library()
	v := h.sess.View()

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render(lib.Topic))
	sections = append(sections, theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("%d flashcards  ·  %d bank questions", lib.Deck.Size(), lib.Bank.Size())))

	if !v.ExternalAvailable {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(
			components.Banner("No LLM key configured: practice uses the question bank only.", cw)))
	}

	sections = append(sections, components.Card(h.menu.View(), cw))

	if s := progressLine(v.Test.Phase, v.Test.Position, v.Test.Total, v.Timed.Started, v.Timed.Score); s != "" {
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(s))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
}

// progressLine summarizes unfinished work in the session.
func progressLine(testPhase string, pos, total int, timedStarted bool, timedScore int) string {
	var parts []string
	if testPhase == "in_progress" {
		parts = append(parts, fmt.Sprintf("Practice test: question %d of %d", pos, total))
	}
	if timedStarted {
		parts = append(parts, fmt.Sprintf("Timed quiz score: %d", timedScore))
	}
	return strings.Join(parts, "  ·  ")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
