package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIndex is returned when an item is requested outside [0, size).
var ErrInvalidIndex = errors.New("index out of range")

// OptionCount is the number of answer options every quiz item carries.
const OptionCount = 4

// Letter labels an answer option. A is option 0, B is 1, C is 2, D is 3.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

var letters = [OptionCount]Letter{LetterA, LetterB, LetterC, LetterD}

// LetterFor returns the letter for option index i.
func LetterFor(i int) (Letter, bool) {
	if i < 0 || i >= OptionCount {
		return "", false
	}
	return letters[i], true
}

// ParseLetter accepts "a", " B ", "C. text" and similar, keyed on the first
// non-space character.
func ParseLetter(s string) (Letter, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	l := Letter(s[:1])
	return l, l.Valid()
}

// Index returns the option index for the letter, or -1 when invalid.
func (l Letter) Index() int {
	for i, c := range letters {
		if c == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of A-D.
func (l Letter) Valid() bool { return l.Index() >= 0 }

// QuizItem is a single multiple-choice question.
type QuizItem struct {
	Prompt      string
	Options     [OptionCount]string
	Correct     Letter
	Explanation string
}

// OptionText returns the text of the option labelled l.
func (q QuizItem) OptionText(l Letter) string {
	i := l.Index()
	if i < 0 {
		return ""
	}
	return q.Options[i]
}

// Validate checks that the item has a prompt, four non-empty options and a
// correct letter in A-D.
func (q QuizItem) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return errors.New("empty prompt")
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("option %s is empty", letters[i])
		}
	}
	if !q.Correct.Valid() {
		return fmt.Errorf("correct letter %q not in A-D", q.Correct)
	}
	return nil
}

// Flashcard pairs a term with its definition.
type Flashcard struct {
	Term       string
	Definition string
}
