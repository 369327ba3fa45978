package ratelimit

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// retryDelayPattern matches the retry-delay hint embedded in quota-exhaustion
// error payloads, e.g. "... 'retryDelay': '45s' ...". Only an integer count
// of seconds in this exact form is recognized.
var retryDelayPattern = regexp.MustCompile(`'retryDelay':\s*'(\d+)s'`)

// IsQuotaExhausted reports whether err describes a quota-exhaustion failure.
// The remote service signals quota exhaustion only through its error text, so
// this matches the HTTP 429 status marker or the RESOURCE_EXHAUSTED gRPC
// marker (case-sensitive). Everything else is a terminal failure that waiting
// will not fix.
func IsQuotaExhausted(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// RetryDelayHint extracts an explicit retry delay from a quota-exhaustion
// error, if the payload encodes one. A missing or malformed hint yields
// (0, false) so the caller falls back to exponential backoff; it is never an
// error, since aborting the retry loop over a formatting quirk would turn a
// transient quota failure into a hard one.
func RetryDelayHint(err error) (time.Duration, bool) {
	if err == nil {
		return 0, false
	}

	m := retryDelayPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}

	seconds, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}
