package session

import "errors"

var (
	// ErrInvalidSelection is returned for an option outside 0..3 or an
	// answer with no question on screen. State is unchanged.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrQuizExpired is returned when a timed quiz answer arrives after
	// the deadline. The score is unchanged.
	ErrQuizExpired = errors.New("time is up")

	// ErrTestNotInProgress is returned for a test answer before the test
	// was started or after its last question.
	ErrTestNotInProgress = errors.New("practice test is not in progress")

	// ErrTimedNotStarted is returned for a timed answer before the timed
	// quiz was started.
	ErrTimedNotStarted = errors.New("timed quiz has not been started")
)
