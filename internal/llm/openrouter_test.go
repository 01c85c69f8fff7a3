package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "openai/gpt-4.1-mini"}); err == nil {
		t.Fatal("expected error for empty API key")
	}

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Vendor-prefixed IDs are not run through the OpenAI friendly names.
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q", p.ModelID())
	}
}

func TestOpenRouterProvider_SendsTitleAndKey(t *testing.T) {
	var title, auth, path string
	reply := openAIReply(`{"ok":true}`, "stop")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title = r.Header.Get("X-Title")
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		reply(w, r)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "openai/gpt-4.1-mini",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Generate(context.Background(), UserPrompt("", "hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if title != openRouterTitle {
		t.Errorf("X-Title = %q, want %q", title, openRouterTitle)
	}
	if auth != "Bearer sk-or-test" {
		t.Errorf("Authorization = %q", auth)
	}
	if path != "/api/v1/chat/completions" {
		t.Errorf("path = %q", path)
	}
}
