package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/studyhub/internal/content"
)

// Validator checks a generated item. Implementations are stateless.
type Validator interface {
	// Name is a short identifier used in error messages, e.g. "structural".
	Name() string

	// Validate returns nil when the item passes.
	Validate(item content.QuizItem, req Request) *ValidationError
}

// ValidationError describes why an item was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks required fields and length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(item content.QuizItem, _ Request) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	switch {
	case strings.TrimSpace(item.Prompt) == "":
		return fail("question is empty")
	case len(item.Prompt) > 600:
		return fail("question exceeds 600 characters")
	case strings.TrimSpace(item.Explanation) == "":
		return fail("explanation is empty")
	case len(item.Explanation) > 1200:
		return fail("explanation exceeds 1200 characters")
	case !item.Correct.Valid():
		return fail(fmt.Sprintf("answer %q is not one of A-D", item.Correct))
	}
	for i, o := range item.Options {
		if strings.TrimSpace(o) == "" {
			l, _ := content.LetterFor(i)
			return fail(fmt.Sprintf("option %s is empty", l))
		}
	}
	return nil
}

// DistinctOptionsValidator rejects items with duplicate options.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(item content.QuizItem, _ Request) *ValidationError {
	seen := make(map[string]bool, content.OptionCount)
	for _, o := range item.Options {
		key := strings.ToLower(strings.TrimSpace(o))
		if seen[key] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate option %q", o)}
		}
		seen[key] = true
	}
	return nil
}

// NoRepeatValidator rejects a question already asked in the session.
type NoRepeatValidator struct{}

func (v *NoRepeatValidator) Name() string { return "no-repeat" }

func (v *NoRepeatValidator) Validate(item content.QuizItem, req Request) *ValidationError {
	p := normalizePrompt(item.Prompt)
	for _, prior := range req.Prior {
		if normalizePrompt(prior) == p {
			return &ValidationError{Validator: v.Name(), Message: "question repeats an earlier one"}
		}
	}
	return nil
}

func normalizePrompt(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
