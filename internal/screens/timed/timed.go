package timed

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// tickMsg refreshes the countdown. gen ties a tick to the run that
// scheduled it so a restart does not double the tick rate.
type tickMsg struct {
	gen int
}

// TimedScreen runs the one-minute quiz.
type TimedScreen struct {
	sess     *screen.Session
	mc       components.MultiChoice
	gen      int
	lastNote string
}

var _ screen.Screen = (*TimedScreen)(nil)
var _ screen.KeyHintProvider = (*TimedScreen)(nil)

func New(sess *screen.Session) *TimedScreen {
	return &TimedScreen{sess: sess}
}

func (t *TimedScreen) Init() tea.Cmd {
	t.sess.Do(navigation.Action{Kind: navigation.SelectPage, Page: session.PageTimed})
	v := t.sess.View().Timed
	if v.Started && !v.Expired {
		t.syncQuestion()
		return t.tick()
	}
	return nil
}

func (t *TimedScreen) Title() string {
	return "Timed Quiz"
}

func (t *TimedScreen) KeyHints() []layout.KeyHint {
	v := t.sess.View().Timed
	if !v.Started || v.Expired {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TimedScreen) tick() tea.Cmd {
	gen := t.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (t *TimedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != t.gen || t.sess.View().Timed.Expired {
			return t, nil
		}
		return t, t.tick()

	case tea.KeyMsg:
		v := t.sess.View().Timed
		if !v.Started || v.Expired {
			if k := msg.String(); k == "enter" || k == "r" || k == "s" {
				return t, t.start()
			}
			return t, nil
		}
		var picked int
		t.mc, picked = t.mc.Update(msg)
		if picked < 0 {
			return t, nil
		}
		out := t.sess.Do(navigation.Action{Kind: navigation.AnswerTimed, Option: picked})
		t.lastNote = out.Message
		if out.Status == navigation.StatusOK {
			t.syncQuestion()
		}
	}
	return t, nil
}

func (t *TimedScreen) start() tea.Cmd {
	t.sess.Do(navigation.Action{Kind: navigation.StartTimed})
	t.gen++
	t.lastNote = ""
	t.syncQuestion()
	return t.tick()
}

func (t *TimedScreen) syncQuestion() {
	q := t.sess.View().Timed.Question
	if q == nil {
		return
	}
	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = o.Text
	}
	t.mc = components.NewMultiChoice(q.Prompt, opts)
}

func (t *TimedScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	v := t.sess.View().Timed

	var sections []string
	switch {
	case !v.Started:
		sections = append(sections,
			theme.Title.Width(cw).Render("Answer as many as you can in one minute."),
			theme.Hint.Width(cw).Align(lipgloss.Center).Render("press Enter to start"))

	case v.Expired:
		sections = append(sections,
			theme.Title.Width(cw).Render("Time is up!"),
			theme.Body.Width(cw).Align(lipgloss.Center).Render(
				fmt.Sprintf("Final score: %d correct out of %d answered", v.Score, v.Answered)),
			theme.Hint.Width(cw).Align(lipgloss.Center).Render("press Enter to play again"))

	default:
		window := max(t.sess.State().Timed.Window.Seconds(), 1)
		clock := components.NewMeter(
			fmt.Sprintf("%2ds left   score %d", v.RemainingSeconds, v.Score),
			float64(v.RemainingSeconds)/window,
			cw,
		)
		sections = append(sections, clock.View(), t.mc.View(cw))
		if t.lastNote != "" {
			sections = append(sections, theme.Hint.Width(cw).Render(t.lastNote))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
}
