package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrProviderUnavailable indicates a wrapper has no usable inner provider.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrLeagueNotFound indicates the requested league is not configured.
	ErrLeagueNotFound = errors.New("league not found")

	// ErrNoMatchup indicates the league has no current matchup for the
	// configured team.
	ErrNoMatchup = errors.New("no current matchup")
)

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
