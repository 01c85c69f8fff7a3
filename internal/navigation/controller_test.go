package navigation

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/llm"
	"github.com/abhisek/studyhub/internal/questiongen"
	"github.com/abhisek/studyhub/internal/session"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func loadLibrary(t *testing.T) *content.Library {
	t.Helper()
	lib, err := content.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return lib
}

func newController(t *testing.T, src questiongen.Source, opts ...Option) (*Controller, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	opts = append([]Option{
		WithRand(rand.New(rand.NewPCG(7, 7))),
		WithClock(clock.now),
	}, opts...)
	return New(loadLibrary(t), src, opts...), clock
}

func dispatch(t *testing.T, c *Controller, st session.State, a Action) (session.State, Outcome) {
	t.Helper()
	return c.Dispatch(context.Background(), st, a)
}

func TestSelectPage(t *testing.T) {
	c, _ := newController(t, nil)
	st := session.New()

	st, out := dispatch(t, c, st, Action{Kind: SelectPage, Page: session.PageTimed})
	if out.Status != StatusOK || st.Page != session.PageTimed {
		t.Fatalf("select timed: status=%s page=%s", out.Status, st.Page)
	}

	st, out = dispatch(t, c, st, Action{Kind: SelectPage, Page: "quiz"})
	if out.Status != StatusRejected || !errors.Is(out.Err, session.ErrInvalidSelection) {
		t.Errorf("unknown page: status=%s err=%v", out.Status, out.Err)
	}
	if st.Page != session.PageTimed {
		t.Errorf("page changed to %s on rejected action", st.Page)
	}
}

func TestUnknownActionRejected(t *testing.T) {
	c, _ := newController(t, nil)
	_, out := dispatch(t, c, session.New(), Action{Kind: "dance"})
	if out.Status != StatusRejected {
		t.Errorf("status = %s, want rejected", out.Status)
	}
}

func TestFlashcardsWrapAndReveal(t *testing.T) {
	c, _ := newController(t, nil)
	st := session.New()
	total := c.Library().Deck.Size()

	st, _ = dispatch(t, c, st, Action{Kind: PrevCard})
	v := c.View(st)
	if v.Flashcard.Position != total || v.Flashcard.Total != total {
		t.Fatalf("prev from first: position %d of %d, want %d", v.Flashcard.Position, v.Flashcard.Total, total)
	}
	if v.Flashcard.Definition != "" {
		t.Error("definition shown before reveal")
	}

	st, _ = dispatch(t, c, st, Action{Kind: ToggleReveal})
	v = c.View(st)
	last, _ := c.Library().Deck.CardAt(total - 1)
	if !v.Flashcard.Revealed || v.Flashcard.Definition != last.Definition {
		t.Errorf("after reveal: revealed=%v definition=%q", v.Flashcard.Revealed, v.Flashcard.Definition)
	}

	st, _ = dispatch(t, c, st, Action{Kind: NextCard})
	v = c.View(st)
	if v.Flashcard.Position != 1 || v.Flashcard.Revealed {
		t.Errorf("next from last: position=%d revealed=%v", v.Flashcard.Position, v.Flashcard.Revealed)
	}
}

func TestPracticeFromBank(t *testing.T) {
	c, _ := newController(t, nil)
	st := session.New()

	_, out := dispatch(t, c, st, Action{Kind: AnswerPractice, Option: 0})
	if out.Status != StatusRejected {
		t.Errorf("answer with no question: status = %s", out.Status)
	}

	st, out = dispatch(t, c, st, Action{Kind: NewQuestion})
	if out.Status != StatusOK || out.Message != "" {
		t.Errorf("bank question: status=%s message=%q", out.Status, out.Message)
	}
	if st.Practice.Current == nil || st.Practice.Origin != session.OriginBank {
		t.Fatalf("practice = %+v", st.Practice)
	}

	want := st.Practice.Current.Correct
	st2, out := dispatch(t, c, st, Action{Kind: AnswerPractice, Option: want.Index()})
	if out.Verdict == nil || !out.Verdict.IsCorrect {
		t.Errorf("correct answer judged %+v", out.Verdict)
	}
	if st2.Practice.Current != st.Practice.Current {
		t.Error("answering should keep the same question")
	}

	wrong := (want.Index() + 1) % content.OptionCount
	_, out = dispatch(t, c, st, Action{Kind: AnswerPractice, Option: wrong})
	if out.Verdict == nil || out.Verdict.IsCorrect || out.Verdict.Correct != want {
		t.Errorf("wrong answer judged %+v", out.Verdict)
	}

	_, out = dispatch(t, c, st, Action{Kind: AnswerPractice, Option: 4})
	if !errors.Is(out.Err, session.ErrInvalidSelection) {
		t.Errorf("option 4: err = %v", out.Err)
	}
}

func TestPracticeExternalUnconfigured(t *testing.T) {
	c, _ := newController(t, questiongen.NullSource{})
	st, out := dispatch(t, c, session.New(), Action{Kind: NewQuestion, UseExternal: true})

	if out.Status != StatusInfo {
		t.Errorf("status = %s, want info", out.Status)
	}
	if st.Practice.Origin != session.OriginBank || st.Practice.Notice == "" {
		t.Errorf("practice = %+v, want bank question with notice", st.Practice)
	}
	if c.View(st).ExternalAvailable {
		t.Error("external reported available")
	}
}

func generated(prompt string) llm.MockResponse {
	return llm.MockJSON(map[string]any{
		"question":    prompt,
		"options":     []string{"Simon Bolivar", "Toussaint Louverture", "Miguel Hidalgo", "Jose de San Martin"},
		"answer":      "B",
		"explanation": "Louverture led the revolt in Saint-Domingue.",
	})
}

func TestPracticeExternalSuccess(t *testing.T) {
	mock := llm.NewMockProvider(
		generated("Who led the Haitian Revolution?"),
		generated("Which leader freed Saint-Domingue?"),
	)
	c, _ := newController(t, questiongen.NewRemote(mock, questiongen.DefaultConfig()))

	st, out := dispatch(t, c, session.New(), Action{Kind: NewQuestion, UseExternal: true})
	if out.Status != StatusOK {
		t.Fatalf("status = %s (%s)", out.Status, out.Message)
	}
	if st.Practice.Origin != session.OriginExternal {
		t.Errorf("origin = %s, want external", st.Practice.Origin)
	}
	if len(st.Generated) != 1 || st.Generated[0] != "Who led the Haitian Revolution?" {
		t.Errorf("generated = %v", st.Generated)
	}

	st, _ = dispatch(t, c, st, Action{Kind: NewQuestion, UseExternal: true})
	if len(st.Generated) != 2 {
		t.Errorf("generated = %v, want two prompts", st.Generated)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	last := mock.Calls[1].Messages[len(mock.Calls[1].Messages)-1].Content
	if !strings.Contains(last, "Who led the Haitian Revolution?") {
		t.Error("second request should list the earlier question as already asked")
	}

	v := c.View(st)
	if v.Practice.Question == nil || len(v.Practice.Question.Options) != content.OptionCount {
		t.Errorf("practice view = %+v", v.Practice)
	}
}

func TestPracticeExternalFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")}})
	c, _ := newController(t, questiongen.NewRemote(mock, questiongen.DefaultConfig()))

	st, out := dispatch(t, c, session.New(), Action{Kind: NewQuestion, UseExternal: true})
	if out.Status != StatusInfo {
		t.Errorf("status = %s, want info", out.Status)
	}
	if st.Practice.Current == nil || st.Practice.Origin != session.OriginBank {
		t.Errorf("practice = %+v, want bank fallback", st.Practice)
	}
	if len(st.Generated) != 0 {
		t.Errorf("generated = %v, want none", st.Generated)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want a single attempt", mock.CallCount())
	}
}

func TestPracticeTestRun(t *testing.T) {
	c, _ := newController(t, nil)
	st := session.New()

	_, out := dispatch(t, c, st, Action{Kind: AnswerTest, Option: 0})
	if !errors.Is(out.Err, session.ErrTestNotInProgress) {
		t.Errorf("answer before start: err = %v", out.Err)
	}

	st, _ = dispatch(t, c, st, Action{Kind: StartTest, Count: 15})
	bankSize := c.Library().Bank.Size()
	if got := len(st.Test.Questions); got != bankSize {
		t.Fatalf("questions = %d, want clamp to %d", got, bankSize)
	}

	for i := 0; i < bankSize; i++ {
		v := c.View(st)
		if v.Test.Position != i+1 || v.Test.Question == nil {
			t.Fatalf("step %d: view %+v", i, v.Test)
		}
		var out Outcome
		correct := st.Test.Questions[st.Test.Index].Correct
		st, out = dispatch(t, c, st, Action{Kind: AnswerTest, Option: correct.Index()})
		if out.Verdict == nil || !out.Verdict.IsCorrect {
			t.Fatalf("step %d: verdict %+v", i, out.Verdict)
		}
	}

	res, ok := c.Result(st)
	if !ok {
		t.Fatal("result not available after last answer")
	}
	if res.Score != bankSize || res.Total != bankSize || res.Percent != 100 {
		t.Errorf("result = %d/%d (%d%%)", res.Score, res.Total, res.Percent)
	}
	if res.Review[0].Number != 1 || !res.Review[0].Match {
		t.Errorf("review row = %+v", res.Review[0])
	}

	_, out = dispatch(t, c, st, Action{Kind: AnswerTest, Option: 0})
	if !errors.Is(out.Err, session.ErrTestNotInProgress) {
		t.Errorf("answer after completion: err = %v", out.Err)
	}
}

func TestStartTestDefaultSize(t *testing.T) {
	c, _ := newController(t, nil, WithDefaultTestSize(5))
	st, _ := dispatch(t, c, session.New(), Action{Kind: StartTest})
	if len(st.Test.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(st.Test.Questions))
	}
}

func TestTimedQuiz(t *testing.T) {
	c, clock := newController(t, nil, WithTimedWindow(time.Minute))
	st := session.New()

	_, out := dispatch(t, c, st, Action{Kind: AnswerTimed, Option: 0})
	if !errors.Is(out.Err, session.ErrTimedNotStarted) {
		t.Errorf("answer before start: err = %v", out.Err)
	}

	st, _ = dispatch(t, c, st, Action{Kind: StartTimed})
	v := c.View(st)
	if !v.Timed.Started || v.Timed.RemainingSeconds != 60 || v.Timed.Question == nil {
		t.Fatalf("after start: %+v", v.Timed)
	}

	clock.advance(10 * time.Second)
	correct := st.Timed.Current.Correct
	st, out = dispatch(t, c, st, Action{Kind: AnswerTimed, Option: correct.Index()})
	if out.Verdict == nil || !out.Verdict.IsCorrect {
		t.Fatalf("verdict = %+v", out.Verdict)
	}
	if st.Timed.Score != 1 || st.Timed.Answered != 1 {
		t.Errorf("score=%d answered=%d", st.Timed.Score, st.Timed.Answered)
	}
	if got := c.View(st).Timed.RemainingSeconds; got != 50 {
		t.Errorf("remaining = %d, want 50", got)
	}

	clock.advance(50 * time.Second)
	before := *st.Timed
	st, out = dispatch(t, c, st, Action{Kind: AnswerTimed, Option: 0})
	if out.Status != StatusExpired || !errors.Is(out.Err, session.ErrQuizExpired) {
		t.Errorf("after deadline: status=%s err=%v", out.Status, out.Err)
	}
	if st.Timed.Score != before.Score || st.Timed.Answered != before.Answered {
		t.Error("expired answer changed the score")
	}
	v = c.View(st)
	if !v.Timed.Expired || v.Timed.RemainingSeconds != 0 || v.Timed.Question != nil {
		t.Errorf("expired view = %+v", v.Timed)
	}

	st, _ = dispatch(t, c, st, Action{Kind: StartTimed})
	if st.Timed.Score != 0 || c.View(st).Timed.Expired {
		t.Errorf("restart did not reset: %+v", st.Timed)
	}
}

func TestViewHidesOpenAnswers(t *testing.T) {
	c, _ := newController(t, nil)
	st, _ := dispatch(t, c, session.New(), Action{Kind: StartTest, Count: 3})
	v := c.View(st)
	if v.Test.Result != nil {
		t.Error("result present while test in progress")
	}
	if v.Test.Phase != session.TestInProgress.String() {
		t.Errorf("phase = %s", v.Test.Phase)
	}
}

func TestOutcomeCode(t *testing.T) {
	tests := []struct {
		out  Outcome
		want string
	}{
		{Outcome{Status: StatusOK}, "ok"},
		{Outcome{Status: StatusInfo}, "info"},
		{reject(session.ErrInvalidSelection), "invalid_selection"},
		{reject(session.ErrTestNotInProgress), "test_not_in_progress"},
		{reject(session.ErrTimedNotStarted), "timed_not_started"},
		{Outcome{Status: StatusExpired, Err: session.ErrQuizExpired}, "quiz_expired"},
		{reject(errors.New("other")), "rejected"},
	}
	for _, tt := range tests {
		if got := tt.out.Code(); got != tt.want {
			t.Errorf("Code() = %q, want %q", got, tt.want)
		}
	}
}

func TestApplyQuestionTouchesOnlyPractice(t *testing.T) {
	mock := llm.NewMockProvider(generated("Who led the Haitian Revolution?"))
	c, _ := newController(t, questiongen.NewRemote(mock, questiongen.DefaultConfig()))

	snapshot := session.New()
	q := c.PrepareQuestion(context.Background(), snapshot, true)
	if q.Outcome.Status != StatusOK || q.Practice.Origin != session.OriginExternal {
		t.Fatalf("prepared = %+v", q)
	}

	// The live state moved on after the snapshot was taken.
	live, _ := dispatch(t, c, snapshot, Action{Kind: StartTest, Count: 5})
	live, _ = dispatch(t, c, live, Action{Kind: AnswerTest, Option: 0})
	live, _ = dispatch(t, c, live, Action{Kind: NextCard})

	got := ApplyQuestion(live, q)
	if got.Test.Index != 1 || !got.Test.Started || got.Flashcards.Index != 1 {
		t.Errorf("test index %d started %v card %d, want live progress kept",
			got.Test.Index, got.Test.Started, got.Flashcards.Index)
	}
	if got.Practice.Current == nil || got.Practice.Current.Prompt != "Who led the Haitian Revolution?" {
		t.Errorf("practice = %+v", got.Practice)
	}
	if len(got.Generated) != 1 {
		t.Errorf("generated = %v", got.Generated)
	}
	if snapshot.Practice.Current != nil {
		t.Error("PrepareQuestion must not change its input")
	}
}
