package session

import (
	"maps"

	"github.com/abhisek/studyhub/internal/content"
)

// NoAnswer marks a review row whose question was never answered.
const NoAnswer = "none"

// TestPhase is derived from the test fields.
type TestPhase int

const (
	TestNotStarted TestPhase = iota
	TestInProgress
	TestComplete
)

func (p TestPhase) String() string {
	switch p {
	case TestInProgress:
		return "in_progress"
	case TestComplete:
		return "complete"
	default:
		return "not_started"
	}
}

// TestState is a practice test run. Index is in [0, len(Questions)]; Score
// always equals the number of Answers matching their question.
type TestState struct {
	Started   bool
	Questions []content.QuizItem
	Index     int
	Score     int
	Answers   map[int]content.Letter
}

// Phase reports where the run is.
func (t TestState) Phase() TestPhase {
	switch {
	case !t.Started:
		return TestNotStarted
	case t.Index < len(t.Questions):
		return TestInProgress
	default:
		return TestComplete
	}
}

// Current returns the question being asked while in progress.
func (t TestState) Current() (content.QuizItem, bool) {
	if t.Phase() != TestInProgress {
		return content.QuizItem{}, false
	}
	return t.Questions[t.Index], true
}

// StartTest samples min(n, bank size) distinct questions and resets the
// run. Any earlier run is discarded. Negative n yields an empty test.
func StartTest(bank *content.Bank, r content.Rand, n int) TestState {
	return TestState{
		Started:   true,
		Questions: bank.Sample(r, max(n, 0)),
		Answers:   map[int]content.Letter{},
	}
}

// SubmitTestAnswer records option for the current question, scores it and
// advances by one whether or not it was correct.
func SubmitTestAnswer(t TestState, option int) (TestState, Verdict, error) {
	item, ok := t.Current()
	if !ok {
		return t, Verdict{}, ErrTestNotInProgress
	}
	v, err := judge(item, option)
	if err != nil {
		return t, Verdict{}, err
	}

	next := t
	next.Answers = maps.Clone(t.Answers)
	if next.Answers == nil {
		next.Answers = map[int]content.Letter{}
	}
	next.Answers[t.Index] = v.Chosen
	if v.IsCorrect {
		next.Score++
	}
	next.Index++
	return next, v, nil
}

// ReviewRow is one line of the post-test review.
type ReviewRow struct {
	Index       int
	Prompt      string
	Chosen      string // a letter, or NoAnswer
	Correct     content.Letter
	Match       bool
	Explanation string
}

// Result summarizes a completed test.
type Result struct {
	Score   int
	Total   int
	Percent int
	Review  []ReviewRow
}

// Percent returns 100*score/total rounded half up. Zero total gives 0.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}

// TestResult returns the summary once the test is complete.
func TestResult(t TestState) (Result, bool) {
	if t.Phase() != TestComplete {
		return Result{}, false
	}
	res := Result{
		Score:   t.Score,
		Total:   len(t.Questions),
		Percent: Percent(t.Score, len(t.Questions)),
		Review:  make([]ReviewRow, len(t.Questions)),
	}
	for i, q := range t.Questions {
		row := ReviewRow{
			Index:       i,
			Prompt:      q.Prompt,
			Chosen:      NoAnswer,
			Correct:     q.Correct,
			Explanation: q.Explanation,
		}
		if a, ok := t.Answers[i]; ok {
			row.Chosen = string(a)
			row.Match = a == q.Correct
		}
		res.Review[i] = row
	}
	return res, true
}
