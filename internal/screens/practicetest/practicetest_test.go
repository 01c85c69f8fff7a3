package practicetest

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screen"
	"github.com/abhisek/studyhub/internal/screens/results"
	"github.com/abhisek/studyhub/internal/session"
)

func newSession(t *testing.T) *screen.Session {
	t.Helper()
	lib, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	return screen.NewSession(navigation.New(lib, nil, navigation.WithRand(rand.New(rand.NewPCG(1, 2)))))
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func start(t *testing.T, ts *TestScreen) {
	t.Helper()
	_, cmd := ts.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on size menu should start a test")
	}
	ts.Update(cmd())
}

func TestStartFromSizeMenu(t *testing.T) {
	sess := newSession(t)
	ts := New(sess)
	ts.Init()

	if ts.running {
		t.Fatal("should open on the size menu")
	}
	start(t, ts)

	v := sess.View().Test
	if v.Phase != session.TestInProgress.String() || v.Total != navigation.TestSizes[0] {
		t.Errorf("after start: phase=%s total=%d", v.Phase, v.Total)
	}
	if !ts.running {
		t.Error("screen should be running")
	}
}

func TestCompleteRunShowsResults(t *testing.T) {
	sess := newSession(t)
	ts := New(sess)
	ts.Init()
	start(t, ts)

	total := sess.View().Test.Total
	var cmd tea.Cmd
	for i := 0; i < total; i++ {
		correct := sess.State().Test.Questions[sess.State().Test.Index].Correct
		_, cmd = ts.Update(keyPress(rune('a' + correct.Index())))
		if i < total-1 && cmd != nil {
			t.Fatalf("answer %d: unexpected command", i)
		}
	}
	if cmd == nil {
		t.Fatal("last answer should move to the results screen")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", msg.Screen)
	}

	res, ok := sess.Controller().Result(sess.State())
	if !ok || res.Percent != 100 {
		t.Errorf("result = %+v, want 100%%", res)
	}
}

func TestResumeInProgress(t *testing.T) {
	sess := newSession(t)
	sess.Do(navigation.Action{Kind: navigation.StartTest, Count: 5})
	sess.Do(navigation.Action{Kind: navigation.AnswerTest, Option: 0})

	ts := New(sess)
	ts.Init()
	if !ts.running {
		t.Fatal("an unfinished test should resume")
	}
	if got := sess.View().Test.Position; got != 2 {
		t.Errorf("position = %d, want 2", got)
	}
}
