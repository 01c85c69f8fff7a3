package guide

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// GuideScreen shows the unit study guide in a scrollable pane.
type GuideScreen struct {
	sess      *screen.Session
	vp        viewport.Model
	wrapWidth int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)

func New(sess *screen.Session) *GuideScreen {
	return &GuideScreen{sess: sess, vp: viewport.New()}
}

func (g *GuideScreen) Init() tea.Cmd {
	g.sess.Do(navigation.Action{Kind: navigation.SelectPage, Page: session.PageGuide})
	return nil
}

func (g *GuideScreen) Title() string {
	return "Study Guide"
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	g.vp, cmd = g.vp.Update(msg)
	return g, cmd
}

// View sizes the pane lazily; the guide is only re-wrapped when the width
// changes.
func (g *GuideScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	g.vp.SetWidth(cw)
	g.vp.SetHeight(max(height-2, 1))
	if cw != g.wrapWidth {
		g.wrapWidth = cw
		guide := g.sess.Controller().Library().Guide
		g.vp.SetContent(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(guide))
	}

	footer := theme.Hint.Render(fmt.Sprintf("%3.0f%%", g.vp.ScrollPercent()*100))
	body := lipgloss.JoinVertical(lipgloss.Right, g.vp.View(), footer)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
