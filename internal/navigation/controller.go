// Package navigation applies user actions to session state. It owns the
// question bank, flashcard deck, question source and random generator and
// turns every domain error into a user-visible Outcome.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/questiongen"
	"github.com/abhisek/studyhub/internal/session"
)

// DefaultTestSize is used when StartTest carries no count.
const DefaultTestSize = 10

// TestSizes are the sizes offered by the interactive surfaces.
var TestSizes = []int{5, 10, 15}

// Controller dispatches actions. It is safe for concurrent use; callers
// serialize actions per session through session.Store.
type Controller struct {
	lib         *content.Library
	source      questiongen.Source
	rng         *lockedRand
	now         func() time.Time
	logger      *zap.Logger
	timedWindow time.Duration
	testSize    int
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random generator. Tests pass a fixed seed.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = &lockedRand{r: r} }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithTimedWindow sets the timed quiz length.
func WithTimedWindow(d time.Duration) Option {
	return func(c *Controller) { c.timedWindow = d }
}

// WithDefaultTestSize sets the size used when StartTest has no count.
func WithDefaultTestSize(n int) Option {
	return func(c *Controller) { c.testSize = n }
}

// New creates a Controller. A nil source means offline.
func New(lib *content.Library, source questiongen.Source, opts ...Option) *Controller {
	if source == nil {
		source = questiongen.NullSource{}
	}
	c := &Controller{
		lib:         lib,
		source:      source,
		rng:         &lockedRand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))},
		now:         time.Now,
		logger:      zap.NewNop(),
		timedWindow: session.DefaultTimedWindow,
		testSize:    DefaultTestSize,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Library returns the loaded course material.
func (c *Controller) Library() *content.Library { return c.lib }

// ExternalAvailable reports whether generated questions can be requested.
func (c *Controller) ExternalAvailable() bool { return c.source.Available() }

// Dispatch applies a to st and returns the next state. Rejected actions
// return st unchanged.
func (c *Controller) Dispatch(ctx context.Context, st session.State, a Action) (session.State, Outcome) {
	switch a.Kind {
	case SelectPage:
		if !a.Page.Valid() {
			return st, reject(fmt.Errorf("unknown page %q: %w", a.Page, session.ErrInvalidSelection))
		}
		st.Page = a.Page
		return st, ok("")

	case NextCard:
		st.Flashcards = session.NextCard(st.Flashcards, c.lib.Deck.Size())
		return st, ok("")
	case PrevCard:
		st.Flashcards = session.PrevCard(st.Flashcards, c.lib.Deck.Size())
		return st, ok("")
	case ToggleReveal:
		st.Flashcards = session.ToggleReveal(st.Flashcards)
		return st, ok("")

	case NewQuestion:
		return c.newPracticeQuestion(ctx, st, a.UseExternal)
	case AnswerPractice:
		v, err := session.CheckPracticeAnswer(st.Practice, a.Option)
		if err != nil {
			return st, reject(err)
		}
		return st, judged(v)

	case StartTest:
		n := a.Count
		if n == 0 {
			n = c.testSize
		}
		st.Test = session.StartTest(c.lib.Bank, c.rng, n)
		return st, ok(fmt.Sprintf("Test started with %d questions.", len(st.Test.Questions)))
	case AnswerTest:
		next, v, err := session.SubmitTestAnswer(st.Test, a.Option)
		if err != nil {
			return st, reject(err)
		}
		st.Test = next
		return st, judged(v)

	case StartTimed:
		t := session.StartTimed(c.lib.Bank, c.rng, c.now(), c.timedWindow)
		st.Timed = &t
		return st, ok(fmt.Sprintf("Timed quiz started: %d seconds on the clock.", int(t.Window.Seconds())))
	case AnswerTimed:
		if st.Timed == nil {
			return st, reject(session.ErrTimedNotStarted)
		}
		next, v, err := session.SubmitTimedAnswer(*st.Timed, c.lib.Bank, c.rng, a.Option, c.now())
		if errors.Is(err, session.ErrQuizExpired) {
			return st, Outcome{
				Status:  StatusExpired,
				Message: fmt.Sprintf("Time is up! Final score: %d. Restart to play again.", st.Timed.Score),
				Err:     err,
			}
		}
		if err != nil {
			return st, reject(err)
		}
		st.Timed = &next
		return st, judged(v)
	}

	return st, reject(fmt.Errorf("unknown action %q: %w", a.Kind, session.ErrInvalidSelection))
}

func (c *Controller) newPracticeQuestion(ctx context.Context, st session.State, useExternal bool) (session.State, Outcome) {
	q := c.PrepareQuestion(ctx, st, useExternal)
	return ApplyQuestion(st, q), q.Outcome
}

// PreparedQuestion is a practice question that has been picked or generated
// but not yet installed in a state.
type PreparedQuestion struct {
	Practice session.PracticeState
	Outcome  Outcome
}

// PrepareQuestion picks a bank question or asks the external source for
// one, falling back to the bank on any failure. st is only read, so the
// call may run off the update loop against a snapshot.
func (c *Controller) PrepareQuestion(ctx context.Context, st session.State, useExternal bool) PreparedQuestion {
	fromBank := func(notice string, out Outcome) PreparedQuestion {
		return PreparedQuestion{
			Practice: session.ShowQuestion(c.lib.Bank.RandomItem(c.rng), session.OriginBank, notice),
			Outcome:  out,
		}
	}

	if !useExternal {
		return fromBank("", ok(""))
	}
	if !c.source.Available() {
		msg := "Question generation is not configured; showing a question from the bank."
		return fromBank(msg, info(msg))
	}

	item, err := c.source.Generate(ctx, questiongen.Request{
		Topic:   c.lib.Topic,
		Context: c.lib.Guide,
		Prior:   st.Generated,
	})
	if err != nil {
		c.logger.Warn("question generation failed, using bank", zap.Error(err))
		msg := "Couldn't generate a question right now; showing one from the bank."
		return fromBank(msg, info(msg))
	}

	msg := "Generated a fresh question."
	return PreparedQuestion{
		Practice: session.ShowQuestion(item, session.OriginExternal, msg),
		Outcome:  ok(msg),
	}
}

// ApplyQuestion installs q as the practice question of st. Only the
// practice fields change; everything else in st is kept as is.
func ApplyQuestion(st session.State, q PreparedQuestion) session.State {
	st.Practice = q.Practice
	if cur := q.Practice.Current; cur != nil && q.Practice.Origin == session.OriginExternal {
		st.Generated = session.RememberGenerated(st.Generated, cur.Prompt)
	}
	return st
}

func ok(msg string) Outcome { return Outcome{Status: StatusOK, Message: msg} }

func info(msg string) Outcome { return Outcome{Status: StatusInfo, Message: msg} }

func judged(v session.Verdict) Outcome {
	msg := fmt.Sprintf("Correct! The answer is %s.", v.Correct)
	if !v.IsCorrect {
		msg = fmt.Sprintf("Not quite. You chose %s; the correct answer is %s.", v.Chosen, v.Correct)
	}
	return Outcome{Status: StatusOK, Message: msg, Verdict: &v}
}

func reject(err error) Outcome {
	msg := "That action isn't available right now."
	switch {
	case errors.Is(err, session.ErrInvalidSelection):
		msg = "Pick one of the options A, B, C or D."
	case errors.Is(err, session.ErrTestNotInProgress):
		msg = "Start a practice test first."
	case errors.Is(err, session.ErrTimedNotStarted):
		msg = "Start the timed quiz first."
	case errors.Is(err, content.ErrInvalidIndex):
		msg = "That item does not exist."
	}
	return Outcome{Status: StatusRejected, Message: msg, Err: err}
}

// lockedRand serializes access to a *rand.Rand, which is not safe for
// concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
