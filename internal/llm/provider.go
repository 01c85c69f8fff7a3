package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured JSON from a prompt.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the reply is
	// requested in the provider's native structured-output mode and checked
	// against the schema before it is returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	System   string
	Messages []Message

	// Schema, when non-nil, constrains the reply to a JSON object.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default in place.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured replies.
type Schema struct {
	// Name is kebab-case, e.g. "history-question". Also the cache key for
	// the compiled schema.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is what a provider returned.
type Response struct {
	// Content is the reply JSON, already validated when a schema was given.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, user string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
	}
}
