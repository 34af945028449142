// Package rate provides a token bucket rate limiter for controlling
// outbound request rates against the remote API.
package rate

import (
	"context"
	"sync"
	"time"
)

// Limiter implements a token bucket rate limiter.
// It supports both blocking (Wait) and non-blocking (Allow) modes.
type Limiter struct {
	rate   float64 // tokens per second
	burst  int     // bucket capacity
	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// New creates a limiter with the given rate (requests per second) and
// burst size. Non-positive values fall back to 1.
func New(rate float64, burst int) *Limiter {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		rate:   rate,
		burst:  burst,
		tokens: float64(burst), // start with a full bucket
		last:   time.Now(),
	}
}

// Wait blocks until the limiter allows an operation to proceed or the
// context is canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		if l.Allow() {
			return nil
		}

		waitTime := l.waitDuration()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// Allow reports whether an operation can proceed immediately,
// consuming one token if available.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())

	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// Tokens returns the current number of available tokens.
func (l *Limiter) Tokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())
	return l.tokens
}

// Rate returns the configured rate (tokens per second).
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rate
}

// Burst returns the configured burst size.
func (l *Limiter) Burst() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.burst
}

// advance refills tokens based on elapsed time.
// Must be called with l.mu held.
func (l *Limiter) advance(now time.Time) {
	elapsed := now.Sub(l.last).Seconds()
	l.tokens += elapsed * l.rate
	if l.tokens > float64(l.burst) {
		l.tokens = float64(l.burst)
	}
	l.last = now
}

// waitDuration calculates how long to wait for the next token.
func (l *Limiter) waitDuration() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())

	if l.tokens >= 1 {
		return 0
	}

	secondsNeeded := (1.0 - l.tokens) / l.rate
	return time.Duration(secondsNeeded * float64(time.Second))
}
