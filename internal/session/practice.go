package session

import "github.com/abhisek/studyhub/internal/content"

// PracticeState is the ad-hoc practice question on screen.
type PracticeState struct {
	// Current is nil until the first question is requested.
	Current *content.QuizItem
	Origin  Origin

	// Notice explains how Current was obtained, e.g. a fallback to the
	// bank. Empty when there is nothing to say.
	Notice string
}

// ShowQuestion replaces any previous practice question entirely.
func ShowQuestion(item content.QuizItem, origin Origin, notice string) PracticeState {
	return PracticeState{Current: &item, Origin: origin, Notice: notice}
}

// CheckPracticeAnswer judges option against the current question. It does
// not change the state; the user may keep trying.
func CheckPracticeAnswer(p PracticeState, option int) (Verdict, error) {
	if p.Current == nil {
		return Verdict{}, ErrInvalidSelection
	}
	return judge(*p.Current, option)
}
