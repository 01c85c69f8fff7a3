package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var okReply = MockResponse{Content: json.RawMessage(`{"ok":true}`)}

func unavailableReply() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func invalidReply() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
}

func TestRetry_Attempts(t *testing.T) {
	tests := []struct {
		name      string
		replies   []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt succeeds", []MockResponse{okReply}, false, 1},
		{"transient then success", []MockResponse{unavailableReply(), okReply}, false, 2},
		{"all attempts fail", []MockResponse{unavailableReply(), unavailableReply(), unavailableReply(), okReply}, true, 3},
		{"max tokens is final", []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}}, okReply}, true, 1},
		{"invalid reply retried once", []MockResponse{invalidReply(), invalidReply(), okReply}, true, 2},
		{"invalid then transient", []MockResponse{invalidReply(), unavailableReply(), okReply}, false, 3},
		{"rate limit with retry-after", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, okReply}, false, 2},
		{"deadline is final", []MockResponse{{Err: context.DeadlineExceeded}, okReply}, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.replies...)
			resp, err := WithRetry(mock, retryConfig()).Generate(context.Background(), Request{})

			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(resp.Content) != `{"ok":true}` {
				t.Errorf("content = %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(unavailableReply(), okReply)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, Multiplier: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetry_DelayCapped(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: time.Second, Multiplier: 10}}

	if d := r.delay(0, errors.New("x")); d < 80*time.Millisecond || d > 120*time.Millisecond {
		t.Errorf("attempt 0 delay = %v, want 100ms ±20%%", d)
	}
	if d := r.delay(3, errors.New("x")); d != time.Second {
		t.Errorf("attempt 3 delay = %v, want capped at 1s", d)
	}
	if d := r.delay(0, &ErrRateLimit{RetryAfter: time.Minute}); d != time.Second {
		t.Errorf("retry-after delay = %v, want capped at 1s", d)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(okReply)
	if _, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}
