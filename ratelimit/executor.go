// Copyright 2025 The FundingMatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
)

// Executor runs remote-call operations through a shared Limiter, retrying
// quota-exhaustion failures with bounded attempts.
type Executor struct {
	limiter *Limiter
	logger  *slog.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorLogger sets a custom logger.
// Default is slog.Default().
func WithExecutorLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExecutor creates an executor that paces and retries operations through
// the given limiter.
func NewExecutor(limiter *Limiter, opts ...ExecutorOption) (*Executor, error) {
	if limiter == nil {
		return nil, ErrLimiterRequired
	}

	e := &Executor{
		limiter: limiter,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Execute runs op with rate limiting and quota-aware retries.
//
// Each attempt first acquires a slot from the limiter (which may block for
// the minimum inter-call interval or an open backoff window), then invokes
// op. On success the limiter's backoff step is reset and Execute returns nil.
// A quota-exhaustion failure opens a backoff window (honoring an explicit
// retry-delay hint from the failure text when present) and consumes one
// attempt; once maxAttempts quota failures have occurred Execute returns an
// error wrapping ErrRetryBudgetExhausted. Any other failure is returned
// immediately, unretried and with no limiter mutation.
//
// ctx is checked between attempts. An in-progress pacing wait is not
// cancellable; a caller needing a hard deadline bounds the whole call site.
func (e *Executor) Execute(ctx context.Context, op func() error, maxAttempts int) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e.limiter.AcquireSlot()

		err := op()
		if err == nil {
			e.limiter.ResetBackoff()
			if attempt > 1 {
				e.logger.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		if !IsQuotaExhausted(err) {
			// Not fixed by waiting; surface it untouched.
			return err
		}

		lastErr = err
		retryAfter, _ := RetryDelayHint(err)
		e.limiter.Backoff(retryAfter)
		e.logger.Debug("quota exhausted, will retry",
			"attempt", attempt, "maxAttempts", maxAttempts, "error", err)
	}

	return fmt.Errorf("%w after %d attempts: last error: %v",
		ErrRetryBudgetExhausted, maxAttempts, lastErr)
}
