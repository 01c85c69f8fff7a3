package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// ResultsScreen shows the score and a question-by-question review of a
// finished practice test.
type ResultsScreen struct {
	result    navigation.ResultView
	ok        bool
	retry     func() screen.Screen
	vp        viewport.Model
	wrapWidth int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New snapshots the result of the session's test. retry builds the screen
// shown when the user asks for another test.
func New(sess *screen.Session, retry func() screen.Screen) *ResultsScreen {
	res, ok := sess.Controller().Result(sess.State())
	return &ResultsScreen{result: res, ok: ok, retry: retry, vp: viewport.New()}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Test Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll review"},
		{Key: "R", Description: "New test"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "r" {
		next := s.retry()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	if !s.ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No finished test to review."))
	}

	cw := min(width-8, 90)
	header := s.renderScore(cw)

	s.vp.SetWidth(cw)
	s.vp.SetHeight(max(height-lipgloss.Height(header)-2, 1))
	if cw != s.wrapWidth {
		s.wrapWidth = cw
		s.vp.SetContent(renderReview(s.result.Review, cw))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, header+"\n\n"+s.vp.View())
}

func (s *ResultsScreen) renderScore(width int) string {
	r := s.result
	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!")

	stats := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Score: %d / %d        %d%%", r.Score, r.Total, r.Percent))

	return title + "\n" + stats
}

func renderReview(rows []navigation.ReviewRow, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width))

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("%d. %s", row.Number, row.Prompt)))
		b.WriteString("\n")

		mark := theme.Correct.Render("✓ correct")
		if !row.Match {
			mark = theme.Incorrect.Render("✗ incorrect")
		}
		b.WriteString(fmt.Sprintf("   Your answer: %s   Correct: %s   %s\n", row.Chosen, row.Correct, mark))
		b.WriteString(lipgloss.NewStyle().Width(width).PaddingLeft(3).Foreground(theme.TextDim).Render(row.Explanation))
		b.WriteString("\n")
		b.WriteString(divider)
		b.WriteString("\n")
	}
	return b.String()
}
