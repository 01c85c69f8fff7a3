package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openRouterTitle identifies the app on OpenRouter's usage dashboard.
const openRouterTitle = "studyhub"

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter. Model IDs
// are passed through unchanged ("vendor/model").
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterBaseURL
	}

	c := openAIClientConfig(OpenAIConfig{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL})
	c.HTTPClient = &http.Client{Transport: titleTransport{next: http.DefaultTransport}}
	return &OpenRouterProvider{OpenAIProvider: &OpenAIProvider{
		client: openai.NewClientWithConfig(c),
		model:  cfg.Model,
	}}, nil
}

// titleTransport adds OpenRouter's app attribution header.
type titleTransport struct {
	next http.RoundTripper
}

func (t titleTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Title", openRouterTitle)
	return t.next.RoundTrip(r)
}
