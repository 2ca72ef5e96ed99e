package provider

import (
	"fmt"
	"time"
)

// APIError represents a non-2xx response from the screener provider.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("screener API error (status %d) for %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// RateLimitError indicates the local rate limiter rejected a request.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}
