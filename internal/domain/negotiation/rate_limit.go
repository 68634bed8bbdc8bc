package negotiation

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MessageLimit is the cap on messages one participant may post into one
	// session within the trailing window.
	MessageLimit    = 10
	RateLimitWindow = time.Hour
)

// MessageStamp is the slice of the message log the limiter needs.
type MessageStamp struct {
	Sender uuid.UUID
	SentAt time.Time
}

// RateLimiter counts a sender's messages in the session's own log. The check
// reads history that concurrent writers may be extending, so the cap is
// advisory under simultaneous posting, not a hard guarantee.
type RateLimiter struct {
	limit  int
	window time.Duration
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{limit: MessageLimit, window: RateLimitWindow}
}

func (l *RateLimiter) Allow(history []MessageStamp, sender uuid.UUID, now time.Time) bool {
	cutoff := now.Add(-l.window)
	count := 0
	for _, stamp := range history {
		if stamp.Sender != sender {
			continue
		}
		if stamp.SentAt.After(cutoff) {
			count++
		}
	}
	return count < l.limit
}
