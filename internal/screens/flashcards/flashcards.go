package flashcards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// FlashcardScreen steps through the deck one card at a time.
type FlashcardScreen struct {
	sess *screen.Session
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

func New(sess *screen.Session) *FlashcardScreen {
	return &FlashcardScreen{sess: sess}
}

func (f *FlashcardScreen) Init() tea.Cmd {
	f.sess.Do(navigation.Action{Kind: navigation.SelectPage, Page: session.PageFlashcards})
	return nil
}

func (f *FlashcardScreen) Title() string {
	return "Flashcards"
}

func (f *FlashcardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Prev/Next"},
		{Key: "Space", Description: "Flip"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}
	switch kmsg.String() {
	case "right", "l", "n":
		f.sess.Do(navigation.Action{Kind: navigation.NextCard})
	case "left", "h", "p":
		f.sess.Do(navigation.Action{Kind: navigation.PrevCard})
	case "space", " ", "enter", "f":
		f.sess.Do(navigation.Action{Kind: navigation.ToggleReveal})
	}
	return f, nil
}

func (f *FlashcardScreen) View(width, height int) string {
	card := f.sess.View().Flashcard
	cw := min(components.ContentWidth(width), 70)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(cw).Render(fmt.Sprintf("Card %d of %d", card.Position, card.Total)))
	b.WriteString("\n\n")

	term := lipgloss.NewStyle().Width(cw - 6).Align(lipgloss.Center).Bold(true).Foreground(theme.Primary).Render(card.Term)
	back := theme.Hint.Width(cw - 6).Align(lipgloss.Center).Render("press space to reveal")
	if card.Revealed {
		back = lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Render(card.Definition)
	}
	b.WriteString(components.Card(term+"\n\n"+back, cw))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
