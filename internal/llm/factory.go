package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/studyhub/internal/store"
)

type factoryOptions struct {
	events store.EventRepo
	logger *zap.Logger
	retry  bool
}

// Option configures NewProvider.
type Option func(*factoryOptions)

// WithEventLog records every call in repo.
func WithEventLog(repo store.EventRepo) Option {
	return func(o *factoryOptions) { o.events = repo }
}

// WithLogger sets the logger used for call diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *factoryOptions) { o.logger = l }
}

// WithRetries wraps the provider in the retry decorator using cfg.Retry.
// Interactive callers leave this off so a request makes a single attempt.
func WithRetries() Option {
	return func(o *factoryOptions) { o.retry = true }
}

// NewProvider creates the configured Provider. The chain is
// caller → retry (optional) → logging → base.
func NewProvider(ctx context.Context, cfg Config, opts ...Option) (Provider, error) {
	o := factoryOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	case "":
		return nil, fmt.Errorf("no LLM provider configured")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, o.events, o.logger)
	if o.retry {
		p = WithRetry(p, cfg.Retry)
	}
	return p, nil
}
