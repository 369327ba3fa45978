package ratelimit

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrInvalidRate is returned when a limiter is constructed with a
	// non-positive calls-per-minute rate.
	ErrInvalidRate = errors.New("callsPerMinute must be greater than 0")

	// ErrLimiterRequired is returned when an executor is constructed without a limiter.
	ErrLimiterRequired = errors.New("limiter required")

	// ErrRetryBudgetExhausted is returned when every permitted attempt failed
	// with a quota-exhaustion error. It is distinct from the wrapped
	// operation's own errors so callers can tell "the remote kept saying
	// slow down" apart from a terminal failure.
	ErrRetryBudgetExhausted = errors.New("retry budget exhausted")
)
