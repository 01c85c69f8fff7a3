// Package questiongen produces multiple-choice questions from an LLM.
//
// Every failure mode of a remote call is folded into ErrUnavailable so
// callers have a single signal to fall back on the static bank.
package questiongen

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/studyhub/internal/content"
)

// ErrUnavailable is matched by every error a Source returns.
var ErrUnavailable = errors.New("external question source unavailable")

// Request is the input for one generated question.
type Request struct {
	// Topic names the unit, e.g. "Unit 5: Revolutions and Industrialization".
	Topic string

	// Context is study material the question must be grounded in. It is
	// truncated to Config.MaxContextChars.
	Context string

	// Prior lists prompts already shown in this session.
	Prior []string
}

// Source produces one quiz item per call.
type Source interface {
	// Generate makes a single attempt. Errors satisfy
	// errors.Is(err, ErrUnavailable).
	Generate(ctx context.Context, req Request) (content.QuizItem, error)

	// Available reports whether the source can ever succeed. It is false
	// when no credential was configured.
	Available() bool
}

func unavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, fmt.Errorf(format, args...))
}

// NullSource is used when no LLM credential is configured.
type NullSource struct{}

func (NullSource) Generate(context.Context, Request) (content.QuizItem, error) {
	return content.QuizItem{}, unavailable("no LLM credential configured")
}

func (NullSource) Available() bool { return false }
