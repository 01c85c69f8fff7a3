package session

import (
	"time"

	"github.com/abhisek/studyhub/internal/content"
)

// DefaultTimedWindow is the length of a timed quiz.
const DefaultTimedWindow = 60 * time.Second

// TimedState is a running or finished timed quiz. Remaining time is never
// stored; it is recomputed from Deadline on every observation.
type TimedState struct {
	Deadline time.Time
	Window   time.Duration
	Score    int
	Answered int
	Current  content.QuizItem
}

// StartTimed begins a new quiz at now, discarding any earlier one.
func StartTimed(bank *content.Bank, r content.Rand, now time.Time, window time.Duration) TimedState {
	if window <= 0 {
		window = DefaultTimedWindow
	}
	return TimedState{
		Deadline: now.Add(window),
		Window:   window,
		Current:  bank.RandomItem(r),
	}
}

// Remaining returns max(0, Deadline-now).
func (t TimedState) Remaining(now time.Time) time.Duration {
	if d := t.Deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Expired reports whether no time is left.
func (t TimedState) Expired(now time.Time) bool {
	return t.Remaining(now) == 0
}

// SubmitTimedAnswer scores option against the current item and always
// draws a fresh one. After the deadline it fails with ErrQuizExpired.
func SubmitTimedAnswer(t TimedState, bank *content.Bank, r content.Rand, option int, now time.Time) (TimedState, Verdict, error) {
	if t.Expired(now) {
		return t, Verdict{}, ErrQuizExpired
	}
	v, err := judge(t.Current, option)
	if err != nil {
		return t, Verdict{}, err
	}
	next := t
	next.Answered++
	if v.IsCorrect {
		next.Score++
	}
	next.Current = bank.RandomItem(r)
	return next, v, nil
}
