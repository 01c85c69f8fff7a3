package practice

import (
	"context"
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

// PracticeScreen asks one question at a time, from the bank or generated.
type PracticeScreen struct {
	sess     *screen.Session
	mc       components.MultiChoice
	feedback navigation.Outcome
	loading  bool

	reqID  uint64
	cancel context.CancelFunc
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.Closer = (*PracticeScreen)(nil)

func New(sess *screen.Session) *PracticeScreen {
	return &PracticeScreen{sess: sess}
}

func (p *PracticeScreen) Init() tea.Cmd {
	p.sess.Do(navigation.Action{Kind: navigation.SelectPage, Page: session.PagePractice})
	p.syncQuestion()
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "N", Description: "Bank question"}}
	if p.sess.View().ExternalAvailable {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "Generated question"})
	}
	if p.sess.View().Practice.Question != nil {
		hints = append(hints, layout.KeyHint{Key: "A-D", Description: "Answer"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.QuestionReadyMsg:
		if _, ok := p.sess.CommitQuestion(msg); ok {
			p.syncQuestion()
		}
		if msg.ID == p.reqID {
			p.stopRequest()
		}
		return p, nil

	case tea.KeyMsg:
		if p.loading {
			return p, nil
		}
		switch msg.String() {
		case "n":
			p.sess.Do(navigation.Action{Kind: navigation.NewQuestion})
			p.syncQuestion()
			return p, nil
		case "g":
			ctx, cancel := context.WithCancel(context.Background())
			id, cmd := p.sess.RequestQuestion(ctx, true)
			p.loading, p.reqID, p.cancel = true, id, cancel
			return p, cmd
		}
		if p.sess.View().Practice.Question == nil {
			return p, nil
		}
		var picked int
		p.mc, picked = p.mc.Update(msg)
		if picked >= 0 {
			p.answer(picked)
		}
	}
	return p, nil
}

// Close abandons an outstanding generation request.
func (p *PracticeScreen) Close() {
	if p.reqID != 0 {
		p.sess.Cancel(p.reqID)
	}
	p.stopRequest()
}

func (p *PracticeScreen) stopRequest() {
	if p.cancel != nil {
		p.cancel()
	}
	p.loading, p.reqID, p.cancel = false, 0, nil
}

func (p *PracticeScreen) answer(option int) {
	out := p.sess.Do(navigation.Action{Kind: navigation.AnswerPractice, Option: option})
	p.feedback = out
	if out.Verdict != nil {
		p.mc = p.mc.Judge(option, out.Verdict.Correct.Index())
	}
}

// syncQuestion rebuilds the selector for the question in the session.
func (p *PracticeScreen) syncQuestion() {
	p.feedback = navigation.Outcome{}
	q := p.sess.View().Practice.Question
	if q == nil {
		return
	}
	p.mc = components.NewMultiChoice(q.Prompt, optionTexts(q))
}

func optionTexts(q *navigation.QuestionView) []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Text
	}
	return out
}

func (p *PracticeScreen) View(width, height int) string {
	v := p.sess.View().Practice
	cw := components.ContentWidth(width)

	var sections []string
	if !p.sess.View().ExternalAvailable {
		sections = append(sections, components.Banner("Generated questions are off: set an LLM API key to enable them.", cw))
	}

	switch {
	case p.loading:
		sections = append(sections, theme.Hint.Render("Generating a question..."))
	case v.Question == nil:
		sections = append(sections, theme.Subtitle.Width(cw).Render("Press N for a question from the bank."))
	default:
		if v.Notice != "" {
			sections = append(sections, theme.Notice.Width(cw).Render(v.Notice))
		}
		sections = append(sections, p.mc.View(cw))
		if fb := renderFeedback(p.feedback, cw); fb != "" {
			sections = append(sections, fb)
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
}

func renderFeedback(out navigation.Outcome, width int) string {
	if out.Verdict == nil {
		if out.Message == "" {
			return ""
		}
		return theme.Notice.Width(width).Render(out.Message)
	}
	style := theme.Correct
	if !out.Verdict.IsCorrect {
		style = theme.Incorrect
	}
	return style.Width(width).Render(out.Message) + "\n\n" +
		theme.Body.Width(width).Render(out.Verdict.Explanation)
}
