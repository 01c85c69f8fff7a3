package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/screen"
)

type stubScreen struct {
	title string
	inits int
	seen  []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	test := &stubScreen{title: "Practice Test"}
	r.Update(PushScreenMsg{Screen: test})
	if r.Depth() != 2 || r.Active() != test {
		t.Fatalf("after push: depth %d active %q", r.Depth(), r.Active().Title())
	}
	if test.inits != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", test.inits)
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Fatalf("after pop: depth %d active %q", r.Depth(), r.Active().Title())
	}
	if home.inits != 0 {
		t.Error("popping back should not re-run the root's Init")
	}
}

func TestPopKeepsRoot(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Pop()
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want the root to stay", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Practice Test"})

	results := &stubScreen{title: "Results"}
	r.Update(ReplaceScreenMsg{Screen: results})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != results || results.inits != 1 {
		t.Errorf("active %q inits %d", r.Active().Title(), results.inits)
	}
}

func TestUpdateReachesOnlyActive(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)
	top := &stubScreen{title: "Flashcards"}
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if len(top.seen) != 1 || len(home.seen) != 0 {
		t.Errorf("top saw %d msgs, root saw %d", len(top.seen), len(home.seen))
	}
	if got := r.View(80, 24); got != "Flashcards" {
		t.Errorf("View = %q", got)
	}
}

func TestTrail(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	if r.Trail() != "" {
		t.Errorf("root trail = %q, want empty", r.Trail())
	}
	r.Push(&stubScreen{title: "Practice Test"})
	r.Push(&stubScreen{title: "Results"})
	if got := r.Trail(); got != "Practice Test › Results" {
		t.Errorf("Trail = %q", got)
	}
}

type closingScreen struct {
	stubScreen
	closed int
}

func (c *closingScreen) Close() { c.closed++ }

func TestPopAndReplaceCloseScreens(t *testing.T) {
	r := New(&stubScreen{title: "Home"})

	popped := &closingScreen{stubScreen: stubScreen{title: "Practice"}}
	r.Push(popped)
	r.Pop()
	if popped.closed != 1 {
		t.Errorf("popped screen closed %d times, want 1", popped.closed)
	}

	replaced := &closingScreen{stubScreen: stubScreen{title: "Practice Test"}}
	r.Push(replaced)
	r.Replace(&stubScreen{title: "Results"})
	if replaced.closed != 1 {
		t.Errorf("replaced screen closed %d times, want 1", replaced.closed)
	}
}
