package vision

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidDetection indicates the model returned detection output that
// does not conform to the detection schema.
type ErrInvalidDetection struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidDetection) Error() string {
	return fmt.Sprintf("invalid detection response: %v", e.Err)
}

func (e *ErrInvalidDetection) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vision provider unavailable: %v", e.Err)
	}
	return "vision provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
