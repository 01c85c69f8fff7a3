package questiongen

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/llm"
)

// RemoteSource generates items through an LLM provider.
type RemoteSource struct {
	provider llm.Provider
	config   Config
}

// NewRemote creates a RemoteSource.
func NewRemote(provider llm.Provider, cfg Config) *RemoteSource {
	return &RemoteSource{provider: provider, config: cfg}
}

// questionOutput is the raw reply before normalization.
type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

func (s *RemoteSource) Available() bool { return true }

// Generate makes one call. The purpose label on ctx is kept if present.
func (s *RemoteSource) Generate(ctx context.Context, req Request) (content.QuizItem, error) {
	if llm.PurposeFrom(ctx) == "unknown" {
		ctx = llm.WithPurpose(ctx, llm.PurposePractice)
	}
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	llmReq := llm.UserPrompt(systemPrompt, buildUserMessage(req, s.config))
	llmReq.Schema = QuestionSchema
	llmReq.MaxTokens = s.config.MaxTokens
	llmReq.Temperature = s.config.Temperature

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return content.QuizItem{}, unavailable("%s: %w", llm.FailureReason(err), err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return content.QuizItem{}, unavailable("parse reply: %w", err)
	}

	item, err := normalize(raw)
	if err != nil {
		return content.QuizItem{}, err
	}

	for _, v := range s.config.Validators {
		if verr := v.Validate(item, req); verr != nil {
			return content.QuizItem{}, unavailable("%w", verr)
		}
	}
	return item, nil
}

// normalize turns the raw reply into a QuizItem. Option labels such as
// "A. " or "B) " are stripped. The correct letter is the first character of
// the answer, unless the answer repeats one option's text verbatim.
func normalize(raw questionOutput) (content.QuizItem, error) {
	if len(raw.Options) != content.OptionCount {
		return content.QuizItem{}, unavailable("expected %d options, got %d", content.OptionCount, len(raw.Options))
	}

	item := content.QuizItem{
		Prompt:      strings.TrimSpace(raw.Question),
		Explanation: strings.TrimSpace(raw.Explanation),
	}
	for i, o := range raw.Options {
		item.Options[i] = stripLabel(o, i)
	}

	answer := strings.TrimSpace(raw.Answer)
	for i, o := range item.Options {
		if len(answer) > 1 && strings.EqualFold(answer, o) {
			item.Correct, _ = content.LetterFor(i)
			return item, nil
		}
	}
	l, ok := content.ParseLetter(answer)
	if !ok {
		return content.QuizItem{}, unavailable("answer %q is not one of A-D", raw.Answer)
	}
	item.Correct = l
	return item, nil
}

// stripLabel removes a leading "A.", "A)" or "A:" matching the option's
// position.
func stripLabel(opt string, i int) string {
	opt = strings.TrimSpace(opt)
	want, _ := content.LetterFor(i)
	if len(opt) < 2 || !strings.EqualFold(opt[:1], string(want)) {
		return opt
	}
	switch opt[1] {
	case '.', ')', ':':
		return strings.TrimSpace(opt[2:])
	}
	return opt
}
