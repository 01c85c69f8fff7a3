package session

import (
	"errors"
	"testing"

	"github.com/abhisek/studyhub/internal/content"
)

func answerAll(t *testing.T, ts TestState, pick func(content.QuizItem) int) TestState {
	t.Helper()
	for ts.Phase() == TestInProgress {
		q, _ := ts.Current()
		var err error
		ts, _, err = SubmitTestAnswer(ts, pick(q))
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	return ts
}

func correctOption(q content.QuizItem) int { return q.Correct.Index() }

func wrongOption(q content.QuizItem) int { return (q.Correct.Index() + 1) % content.OptionCount }

func TestStartTestClamps(t *testing.T) {
	b := testBank(t, 10)
	r := testRand()
	tests := []struct{ n, want int }{{5, 5}, {10, 10}, {15, 10}, {0, 0}, {-1, 0}}
	for _, tt := range tests {
		ts := StartTest(b, r, tt.n)
		if len(ts.Questions) != tt.want {
			t.Errorf("StartTest(%d) = %d questions, want %d", tt.n, len(ts.Questions), tt.want)
		}
		if ts.Index != 0 || ts.Score != 0 || len(ts.Answers) != 0 {
			t.Errorf("StartTest(%d) not reset: %+v", tt.n, ts)
		}
	}
}

func TestFullTestAllCorrect(t *testing.T) {
	b := testBank(t, 10)
	ts := StartTest(b, testRand(), 15)
	if len(ts.Questions) != 10 {
		t.Fatalf("questions = %d, want 10", len(ts.Questions))
	}
	ts = answerAll(t, ts, correctOption)

	res, ok := TestResult(ts)
	if !ok {
		t.Fatal("expected complete test")
	}
	if res.Score != 10 || res.Total != 10 || res.Percent != 100 {
		t.Fatalf("result = %d/%d %d%%", res.Score, res.Total, res.Percent)
	}
	for _, row := range res.Review {
		if !row.Match {
			t.Errorf("row %d does not match", row.Index)
		}
	}
}

func TestSubmitAdvancesOnWrongAnswer(t *testing.T) {
	b := testBank(t, 3)
	ts := StartTest(b, testRand(), 3)
	q, _ := ts.Current()

	next, v, err := SubmitTestAnswer(ts, wrongOption(q))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsCorrect {
		t.Fatal("verdict should be wrong")
	}
	if next.Index != 1 || next.Score != 0 {
		t.Fatalf("index=%d score=%d, want 1/0", next.Index, next.Score)
	}
	if len(ts.Answers) != 0 {
		t.Fatal("previous state's answers were mutated")
	}
}

func TestScoreMatchesAnswers(t *testing.T) {
	b := testBank(t, 8)
	ts := StartTest(b, testRand(), 8)
	i := 0
	ts = answerAll(t, ts, func(q content.QuizItem) int {
		i++
		if i%2 == 0 {
			return correctOption(q)
		}
		return wrongOption(q)
	})

	matches := 0
	for idx, a := range ts.Answers {
		if a == ts.Questions[idx].Correct {
			matches++
		}
	}
	if ts.Score != matches || ts.Score != 4 {
		t.Fatalf("score = %d, matches = %d, want 4", ts.Score, matches)
	}
}

func TestSubmitRejections(t *testing.T) {
	b := testBank(t, 2)

	if _, _, err := SubmitTestAnswer(TestState{}, 0); !errors.Is(err, ErrTestNotInProgress) {
		t.Fatalf("not started: err = %v", err)
	}

	ts := StartTest(b, testRand(), 2)
	same, _, err := SubmitTestAnswer(ts, 7)
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("bad option: err = %v", err)
	}
	if same.Index != 0 || len(same.Answers) != 0 {
		t.Fatal("state changed on invalid selection")
	}

	ts = answerAll(t, ts, correctOption)
	after, _, err := SubmitTestAnswer(ts, 0)
	if !errors.Is(err, ErrTestNotInProgress) {
		t.Fatalf("complete: err = %v", err)
	}
	if after.Score != 2 || after.Index != 2 {
		t.Fatal("complete state changed")
	}
}

func TestRestartDiscardsRun(t *testing.T) {
	b := testBank(t, 5)
	r := testRand()
	ts := StartTest(b, r, 5)
	ts, _, _ = SubmitTestAnswer(ts, 0)
	ts = StartTest(b, r, 3)
	if ts.Index != 0 || ts.Score != 0 || len(ts.Answers) != 0 || len(ts.Questions) != 3 {
		t.Fatalf("restart state = %+v", ts)
	}
}

func TestEmptyTestIsComplete(t *testing.T) {
	ts := StartTest(testBank(t, 3), testRand(), 0)
	res, ok := TestResult(ts)
	if !ok || res.Total != 0 || res.Percent != 0 {
		t.Fatalf("empty result = %+v, %v", res, ok)
	}
}

func TestResultUnavailableBeforeComplete(t *testing.T) {
	ts := StartTest(testBank(t, 3), testRand(), 3)
	if _, ok := TestResult(ts); ok {
		t.Fatal("result should not be available mid-test")
	}
	if _, ok := TestResult(TestState{}); ok {
		t.Fatal("result should not be available before start")
	}
}

func TestReviewMarksMissingAnswers(t *testing.T) {
	b := testBank(t, 2)
	ts := StartTest(b, testRand(), 2)
	ts.Index = 2 // both skipped
	res, ok := TestResult(ts)
	if !ok {
		t.Fatal("expected complete")
	}
	for _, row := range res.Review {
		if row.Chosen != NoAnswer || row.Match {
			t.Errorf("row %d = %+v", row.Index, row)
		}
	}
}

func TestPercentRounding(t *testing.T) {
	tests := []struct{ s, n, want int }{
		{2, 3, 67}, {1, 3, 33}, {1, 2, 50}, {0, 5, 0}, {5, 5, 100}, {1, 8, 13}, {7, 10, 70},
	}
	for _, tt := range tests {
		if got := Percent(tt.s, tt.n); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if TestInProgress.String() != "in_progress" || TestComplete.String() != "complete" || TestNotStarted.String() != "not_started" {
		t.Fatal("unexpected phase names")
	}
}
