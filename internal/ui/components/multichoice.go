package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/ui/theme"
)

var optionLabels = [...]string{"A", "B", "C", "D"}

// OptionKey maps a key to an option index: a-d, A-D or 1-4.
func OptionKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch c := key[0]; {
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'D':
		return int(c - 'A'), true
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	}
	return 0, false
}

// MultiChoice is a four-option selector. It only tracks the cursor and how
// to paint a judged answer; judging is done by the caller.
type MultiChoice struct {
	Prompt   string
	Options  []string
	Selected int

	// Judged options are painted after an answer; -1 means none.
	Chosen  int
	Correct int
}

// NewMultiChoice creates a selector with nothing judged.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{Prompt: prompt, Options: options, Chosen: -1, Correct: -1}
}

// Update moves the cursor and reports a picked option: Enter picks the
// cursor, a letter or digit picks directly. picked is -1 otherwise.
func (m MultiChoice) Update(msg tea.Msg) (updated MultiChoice, picked int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, -1
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, -1
	case "enter":
		return m, m.Selected
	}
	if i, ok := OptionKey(key); ok && i < len(m.Options) {
		m.Selected = i
		return m, i
	}
	return m, -1
}

// Judge marks chosen and correct for painting.
func (m MultiChoice) Judge(chosen, correct int) MultiChoice {
	m.Chosen = chosen
	m.Correct = correct
	return m
}

// View renders the prompt and options wrapped to width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	judged := m.Correct >= 0
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !judged {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i], opt)

		style := theme.Unselected
		switch {
		case judged && i == m.Correct:
			style = theme.Correct
		case judged && i == m.Chosen:
			style = theme.Incorrect
		case judged:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
