// Package session holds the per-user study session state and its
// transition rules. All transitions take a state value and return the next
// one; nothing here keeps ambient globals.
package session

import (
	"github.com/abhisek/studyhub/internal/content"
)

// Page identifies the mode the user is in.
type Page string

const (
	PageGuide      Page = "guide"
	PageFlashcards Page = "flashcards"
	PagePractice   Page = "practice"
	PageTest       Page = "test"
	PageTimed      Page = "timed"
)

// Pages lists every page in menu order.
var Pages = []Page{PageGuide, PageFlashcards, PagePractice, PageTest, PageTimed}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	for _, q := range Pages {
		if q == p {
			return true
		}
	}
	return false
}

// Origin records where a practice question came from.
type Origin string

const (
	OriginBank     Origin = "bank"
	OriginExternal Origin = "external"
)

// State is everything remembered for one user session.
type State struct {
	Page       Page
	Flashcards FlashcardState
	Practice   PracticeState
	Test       TestState

	// Timed is nil until the timed quiz is first started.
	Timed *TimedState

	// Generated holds prompts of externally generated questions already
	// shown in this session, oldest first.
	Generated []string
}

// New returns the initial state: guide page, card 0 hidden, no question,
// no test run, no timed quiz.
func New() State {
	return State{Page: PageGuide}
}

// MaxGenerated caps State.Generated.
const MaxGenerated = 32

// RememberGenerated returns gen with prompt appended, keeping the most
// recent MaxGenerated entries. The input slice is not modified.
func RememberGenerated(gen []string, prompt string) []string {
	out := make([]string, 0, min(len(gen)+1, MaxGenerated))
	if len(gen)+1 > MaxGenerated {
		gen = gen[len(gen)+1-MaxGenerated:]
	}
	out = append(out, gen...)
	return append(out, prompt)
}

// Verdict is the outcome of checking one answer.
type Verdict struct {
	Chosen      content.Letter
	Correct     content.Letter
	IsCorrect   bool
	Explanation string
}

func judge(item content.QuizItem, option int) (Verdict, error) {
	chosen, ok := content.LetterFor(option)
	if !ok {
		return Verdict{}, ErrInvalidSelection
	}
	return Verdict{
		Chosen:      chosen,
		Correct:     item.Correct,
		IsCorrect:   chosen == item.Correct,
		Explanation: item.Explanation,
	}, nil
}
