package practicetest

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens/results"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

type startMsg struct{ size int }

// TestScreen runs a fixed-length practice test. Answers are not revealed
// until the results screen.
type TestScreen struct {
	sess     *screen.Session
	sizes    components.Menu
	mc       components.MultiChoice
	running  bool
	lastNote string
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

func New(sess *screen.Session) *TestScreen {
	items := make([]components.MenuItem, 0, len(navigation.TestSizes))
	for _, n := range navigation.TestSizes {
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d questions", n),
			Action: func() tea.Cmd {
				return func() tea.Msg { return startMsg{size: n} }
			},
		})
	}
	return &TestScreen{sess: sess, sizes: components.NewMenu(items)}
}

func (t *TestScreen) Init() tea.Cmd {
	t.sess.Do(navigation.Action{Kind: navigation.SelectPage, Page: session.PageTest})
	if t.sess.View().Test.Phase == session.TestInProgress.String() {
		t.running = true
		t.syncQuestion()
	}
	return nil
}

func (t *TestScreen) Title() string {
	return "Practice Test"
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	if !t.running {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose length"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Pause"},
	}
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		out := t.sess.Do(navigation.Action{Kind: navigation.StartTest, Count: msg.size})
		t.lastNote = out.Message
		return t, t.afterMove()

	case tea.KeyMsg:
		if !t.running {
			var cmd tea.Cmd
			t.sizes, cmd = t.sizes.Update(msg)
			return t, cmd
		}
		var picked int
		t.mc, picked = t.mc.Update(msg)
		if picked < 0 {
			return t, nil
		}
		out := t.sess.Do(navigation.Action{Kind: navigation.AnswerTest, Option: picked})
		t.lastNote = out.Message
		if out.Verdict != nil {
			t.lastNote = fmt.Sprintf("Answer %s recorded.", out.Verdict.Chosen)
		}
		return t, t.afterMove()
	}
	return t, nil
}

// afterMove shows the next question, or the results once the run ends.
func (t *TestScreen) afterMove() tea.Cmd {
	switch t.sess.View().Test.Phase {
	case session.TestInProgress.String():
		t.running = true
		t.syncQuestion()
		return nil
	case session.TestComplete.String():
		t.running = false
		sess := t.sess
		next := results.New(sess, func() screen.Screen { return New(sess) })
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	t.running = false
	return nil
}

func (t *TestScreen) syncQuestion() {
	q := t.sess.View().Test.Question
	if q == nil {
		return
	}
	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = o.Text
	}
	t.mc = components.NewMultiChoice(q.Prompt, opts)
}

func (t *TestScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	v := t.sess.View().Test

	if !t.running {
		body := theme.Title.Width(40).Render("How long a test?") + "\n\n" + components.Card(t.sizes.View(), 40)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	var sections []string
	progress := components.NewMeter(
		fmt.Sprintf("Question %d of %d", v.Position, v.Total),
		float64(v.Position-1)/float64(max(v.Total, 1)),
		cw,
	)
	sections = append(sections, progress.View())
	sections = append(sections, t.mc.View(cw))
	if t.lastNote != "" {
		sections = append(sections, theme.Hint.Render(t.lastNote))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
}
