package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&ErrRateLimit{}, "rate limited"},
		{fmt.Errorf("attempt 3: %w", &ErrRateLimit{}), "rate limited"},
		{&ErrInvalidResponse{Err: errors.New("bad json")}, "invalid reply"},
		{&ErrMaxTokensExceeded{}, "reply truncated"},
		{&ErrProviderUnavailable{Err: context.DeadlineExceeded}, "timed out"},
		{context.Canceled, "canceled"},
		{&ErrProviderUnavailable{Err: errors.New("503")}, "provider unavailable"},
		{errors.New("anything else"), "provider unavailable"},
	}
	for _, tt := range tests {
		if got := FailureReason(tt.err); got != tt.want {
			t.Errorf("FailureReason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
