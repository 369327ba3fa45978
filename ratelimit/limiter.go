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
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultBackoffFloor is the initial backoff step after a quota failure.
	DefaultBackoffFloor = 1 * time.Second

	// DefaultBackoffCeiling caps the exponential backoff step.
	DefaultBackoffCeiling = 60 * time.Second
)

// Limiter throttles the start of calls to a quota-limited remote service.
// It enforces a fixed minimum interval between call starts and honors a
// dynamically sized backoff window entered when the remote signals quota
// exhaustion. Safe for concurrent use; one instance is shared by every
// goroutine calling the same remote quota.
type Limiter struct {
	mu sync.Mutex

	// All fields below are guarded by mu. The lock is held only for state
	// reads and mutations, never across a sleep.
	minInterval  time.Duration
	lastCall     time.Time // instant the most recent call began
	backoffUntil time.Time // instant before which no call may begin
	backoffStep  time.Duration

	floor   time.Duration
	ceiling time.Duration
	logger  *slog.Logger
}

// LimiterOption configures a Limiter.
type LimiterOption func(*Limiter)

// WithBackoffFloor sets the initial backoff step used after a quota failure.
// Default is DefaultBackoffFloor.
func WithBackoffFloor(floor time.Duration) LimiterOption {
	return func(l *Limiter) {
		if floor > 0 {
			l.floor = floor
		}
	}
}

// WithBackoffCeiling caps the exponential backoff step.
// Default is DefaultBackoffCeiling.
func WithBackoffCeiling(ceiling time.Duration) LimiterOption {
	return func(l *Limiter) {
		if ceiling > 0 {
			l.ceiling = ceiling
		}
	}
}

// WithLimiterLogger sets a custom logger.
// Default is slog.Default().
func WithLimiterLogger(logger *slog.Logger) LimiterOption {
	return func(l *Limiter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLimiter creates a limiter that allows at most callsPerMinute call starts
// per minute, spacing them evenly.
func NewLimiter(callsPerMinute int, opts ...LimiterOption) (*Limiter, error) {
	if callsPerMinute <= 0 {
		return nil, ErrInvalidRate
	}

	l := &Limiter{
		minInterval: time.Minute / time.Duration(callsPerMinute),
		floor:       DefaultBackoffFloor,
		ceiling:     DefaultBackoffCeiling,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.backoffStep = l.floor

	return l, nil
}

// AcquireSlot blocks until it is safe to begin a call: outside any backoff
// window and at least minInterval after the previous call start. It then
// records the call start and returns.
//
// The lock is never held across a sleep; the state is recomputed after every
// wake, so a sleeping goroutine blocks only itself and other callers observe
// fresh state when they acquire the lock.
func (l *Limiter) AcquireSlot() {
	for {
		l.mu.Lock()
		now := time.Now()

		if wait := l.backoffUntil.Sub(now); wait > 0 {
			l.mu.Unlock()
			l.logger.Debug("rate limit backoff, waiting", "wait", wait)
			time.Sleep(wait)
			continue
		}

		if !l.lastCall.IsZero() {
			if wait := l.minInterval - now.Sub(l.lastCall); wait > 0 {
				l.mu.Unlock()
				time.Sleep(wait)
				continue
			}
		}

		l.lastCall = now
		l.mu.Unlock()
		return
	}
}

// Backoff opens a backoff window after a quota-exhaustion failure.
//
// A positive retryAfter is a delay supplied by the remote service itself and
// is used verbatim without touching the exponential step. Otherwise the
// current step is used and then doubled, up to the ceiling.
func (l *Limiter) Backoff(retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if retryAfter > 0 {
		l.backoffUntil = now.Add(retryAfter)
		l.logger.Warn("quota exhausted, backing off", "retryAfter", retryAfter)
		return
	}

	l.backoffUntil = now.Add(l.backoffStep)
	l.logger.Warn("quota exhausted, backing off", "step", l.backoffStep)
	l.backoffStep *= 2
	if l.backoffStep > l.ceiling {
		l.backoffStep = l.ceiling
	}
}

// ResetBackoff restores the backoff step to the floor after a successful
// call. A backoff window already granted is still honored by the next
// AcquireSlot; only the growth of the step resets.
func (l *Limiter) ResetBackoff() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.backoffStep = l.floor
}
