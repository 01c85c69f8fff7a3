package guide

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/session"
)

func newGuide(t *testing.T) (*GuideScreen, *screen.Session) {
	t.Helper()
	lib, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	sess := screen.NewSession(navigation.New(lib, nil))
	sess.Do(navigation.Action{Kind: navigation.SelectPage, Page: session.PagePractice})
	return New(sess), sess
}

func TestInitSelectsGuidePage(t *testing.T) {
	g, sess := newGuide(t)
	g.Init()
	if sess.State().Page != session.PageGuide {
		t.Errorf("page = %q, want guide", sess.State().Page)
	}
}

func TestViewRendersGuide(t *testing.T) {
	g, _ := newGuide(t)
	g.Init()
	out := g.View(80, 20)
	if !strings.Contains(out, "Unit 5") {
		t.Errorf("view should show the guide heading:\n%s", out)
	}
	if !strings.Contains(out, "0%") {
		t.Errorf("view should show the scroll position:\n%s", out)
	}
}

func TestPageDownScrolls(t *testing.T) {
	g, _ := newGuide(t)
	g.Init()
	g.View(80, 12)
	if !g.vp.AtTop() {
		t.Fatal("guide should open at the top")
	}

	g.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	if g.vp.YOffset() == 0 {
		t.Fatal("page down should scroll the guide")
	}
	down := g.vp.YOffset()

	g.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if g.vp.YOffset() != down-1 {
		t.Errorf("offset after k = %d, want %d", g.vp.YOffset(), down-1)
	}
}

func TestResizeKeepsContent(t *testing.T) {
	g, _ := newGuide(t)
	g.Init()
	g.View(80, 20)
	out := g.View(50, 20)
	if !strings.Contains(out, "Unit 5") {
		t.Errorf("narrow view should still show the guide:\n%s", out)
	}
}
