package llm

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Normalized values of Response.StopReason.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// finishReply turns the raw text a model produced into checked JSON. A
// truncated reply is never schema-checked; it fails as
// *ErrMaxTokensExceeded.
func finishReply(req Request, text string, truncated bool) (json.RawMessage, error) {
	content := json.RawMessage(stripCodeFence(text))
	if truncated {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := checkReply(req.Schema, content); err != nil {
		return nil, err
	}
	return content, nil
}

// classifyStatus maps an SDK error with an HTTP status onto the package
// error types. Only 429 is a rate limit; everything else, including 4xx
// replies the SDK could not make sense of, counts as unavailable.
func classifyStatus(status int, retryAfter time.Duration, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{RetryAfter: retryAfter, Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// retryAfterHeader reads a Retry-After header given in whole seconds.
// HTTP-date values and garbage give zero.
func retryAfterHeader(h http.Header) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
