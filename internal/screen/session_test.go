package screen

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/navigation"
	"github.com/abhisek/studyhub/internal/session"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	lib, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	return NewSession(navigation.New(lib, nil, navigation.WithRand(rand.New(rand.NewPCG(1, 2)))))
}

func TestSessionDo(t *testing.T) {
	s := newSession(t)
	out := s.Do(navigation.Action{Kind: navigation.SelectPage, Page: session.PageTest})
	if out.Status != navigation.StatusOK {
		t.Fatalf("status = %s", out.Status)
	}
	if s.State().Page != session.PageTest {
		t.Errorf("page = %s, want test", s.State().Page)
	}
}

func TestQuestionCommitKeepsLaterProgress(t *testing.T) {
	s := newSession(t)
	_, cmd := s.RequestQuestion(context.Background(), true)

	// Progress made while the question is being prepared.
	s.Do(navigation.Action{Kind: navigation.NextCard})
	s.Do(navigation.Action{Kind: navigation.NextCard})
	s.Do(navigation.Action{Kind: navigation.StartTest, Count: 5})
	s.Do(navigation.Action{Kind: navigation.AnswerTest, Option: 0})
	s.Do(navigation.Action{Kind: navigation.AnswerTest, Option: 1})
	before := s.State()

	msg, ok := cmd().(QuestionReadyMsg)
	if !ok {
		t.Fatalf("expected QuestionReadyMsg, got %T", msg)
	}
	if s.View().Practice.Question != nil {
		t.Fatal("state changed before commit")
	}
	out, committed := s.CommitQuestion(msg)
	if !committed {
		t.Fatal("latest request should commit")
	}
	if out.Status != navigation.StatusInfo {
		t.Errorf("offline generation should fall back with a notice, got %s", out.Status)
	}

	after := s.State()
	if after.Practice.Current == nil {
		t.Error("question missing after commit")
	}
	if after.Flashcards.Index != 2 {
		t.Errorf("card = %d, want 2", after.Flashcards.Index)
	}
	if !after.Test.Started || after.Test.Index != 2 || after.Test.Score != before.Test.Score {
		t.Errorf("test = started %v index %d score %d, want the run in progress kept",
			after.Test.Started, after.Test.Index, after.Test.Score)
	}
	if s.Pending() {
		t.Error("no request should be pending after commit")
	}
}

func TestQuestionCommitDropsStaleReplies(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	first, cmd := s.RequestQuestion(ctx, true)
	s.Cancel(first)
	if _, ok := s.CommitQuestion(cmd().(QuestionReadyMsg)); ok {
		t.Error("cancelled request should not commit")
	}

	_, older := s.RequestQuestion(ctx, false)
	_, newer := s.RequestQuestion(ctx, false)
	if _, ok := s.CommitQuestion(older().(QuestionReadyMsg)); ok {
		t.Error("a superseded request should not commit")
	}
	if s.State().Practice.Current != nil {
		t.Error("stale replies must leave the state alone")
	}
	if _, ok := s.CommitQuestion(newer().(QuestionReadyMsg)); !ok {
		t.Error("newest request should commit")
	}
}
