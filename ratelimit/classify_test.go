package ratelimit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsQuotaExhausted(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"http 429", errors.New("googleapi: Error 429: too many requests"), true},
		{"grpc marker", errors.New("rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED"), true},
		{"plain failure", errors.New("connection refused"), false},
		{"auth failure", errors.New("401 unauthorized"), false},
		{"marker is case-sensitive", errors.New("resource_exhausted"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsQuotaExhausted(tc.err))
		})
	}
}

func TestRetryDelayHint_Present(t *testing.T) {
	err := errors.New("Error 429: RESOURCE_EXHAUSTED, details: [{'retryDelay': '45s'}]")
	delay, ok := RetryDelayHint(err)
	require.True(t, ok)
	assert.Equal(t, 45*time.Second, delay)
}

func TestRetryDelayHint_SpacingVariants(t *testing.T) {
	for _, msg := range []string{
		"{'retryDelay': '30s'}",
		"{'retryDelay':'30s'}",
		"{'retryDelay':   '30s'}",
	} {
		delay, ok := RetryDelayHint(errors.New(msg))
		require.True(t, ok, "should parse %q", msg)
		assert.Equal(t, 30*time.Second, delay)
	}
}

func TestRetryDelayHint_AbsentOrMalformed(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"nil", nil},
		{"no hint", errors.New("Error 429: RESOURCE_EXHAUSTED")},
		{"non-numeric", errors.New("{'retryDelay': 'soons'}")},
		{"wrong unit", errors.New("{'retryDelay': '45m'}")},
		{"wrong quoting", errors.New(`{"retryDelay": "45s"}`)},
		{"overflow", errors.New("{'retryDelay': '99999999999999999999s'}")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			delay, ok := RetryDelayHint(tc.err)
			assert.False(t, ok, "a malformed hint degrades to the exponential step, never an error")
			assert.Equal(t, time.Duration(0), delay)
		})
	}
}
