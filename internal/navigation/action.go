package navigation

import (
	"errors"

	"github.com/abhisek/studyhub/internal/session"
)

// Kind names a user action.
type Kind string

const (
	SelectPage     Kind = "select_page"
	NextCard       Kind = "next_card"
	PrevCard       Kind = "prev_card"
	ToggleReveal   Kind = "toggle_reveal"
	NewQuestion    Kind = "new_question"
	AnswerPractice Kind = "answer_practice"
	StartTest      Kind = "start_test"
	AnswerTest     Kind = "answer_test"
	StartTimed     Kind = "start_timed"
	AnswerTimed    Kind = "answer_timed"
)

// Action is one user input, already decoded by a surface.
type Action struct {
	Kind Kind

	Page        session.Page // SelectPage
	Option      int          // Answer* (0=A .. 3=D)
	Count       int          // StartTest; zero uses the default size
	UseExternal bool         // NewQuestion
}

// Status classifies an Outcome.
type Status string

const (
	StatusOK       Status = "ok"
	StatusInfo     Status = "info"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Outcome is the user-visible result of an action.
type Outcome struct {
	Status  Status
	Message string

	// Verdict is set when an answer was judged.
	Verdict *session.Verdict

	// Err is the underlying error for rejected or expired actions.
	Err error `json:"-"`
}

// Code is a stable machine-readable name for the outcome's error, or the
// status itself when there is none.
func (o Outcome) Code() string {
	switch {
	case o.Err == nil:
		return string(o.Status)
	case errors.Is(o.Err, session.ErrQuizExpired):
		return "quiz_expired"
	case errors.Is(o.Err, session.ErrTestNotInProgress):
		return "test_not_in_progress"
	case errors.Is(o.Err, session.ErrTimedNotStarted):
		return "timed_not_started"
	case errors.Is(o.Err, session.ErrInvalidSelection):
		return "invalid_selection"
	}
	return "rejected"
}
