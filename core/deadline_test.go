package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline_KnownFormats(t *testing.T) {
	want := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	cases := []string{
		"2025-08-20",
		"8/20/2025",
		"08/20/2025",
		"August 20, 2025",
		"Aug 20, 2025",
		"August 20 2025",
		"20 August 2025",
		"20 Aug 2025",
		"2025/08/20",
	}

	for _, input := range cases {
		got, ok := ParseDeadline(input)
		require.True(t, ok, "should parse %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseDeadline_EmbeddedDate(t *testing.T) {
	got, ok := ParseDeadline("Full proposals due August 20, 2025 at 5pm ET")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDeadline_Unparseable(t *testing.T) {
	for _, input := range []string{"", "   ", "TBD", "see solicitation", "Q3 FY26"} {
		_, ok := ParseDeadline(input)
		assert.False(t, ok, "input %q should not parse", input)
	}
}

func TestOpportunity_IsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	expired := &Opportunity{CloseDate: "2025-05-31"}
	assert.True(t, expired.IsExpired(now))

	open := &Opportunity{CloseDate: "2025-06-02"}
	assert.False(t, open.IsExpired(now))

	// No deadline or unparseable deadline is treated as current.
	rolling := &Opportunity{CloseDate: ""}
	assert.False(t, rolling.IsExpired(now))

	garbage := &Opportunity{CloseDate: "until funds are exhausted"}
	assert.False(t, garbage.IsExpired(now))

	// Accepts-anytime overrides a stale close date.
	anytime := &Opportunity{CloseDate: "2020-01-01", AcceptsAnytime: true}
	assert.False(t, anytime.IsExpired(now))
}

func TestOpportunity_DeadlineStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		opp  *Opportunity
		want string
	}{
		{"closed", &Opportunity{CloseDate: "2025-05-01"}, "Closed"},
		{"urgent", &Opportunity{CloseDate: "2025-06-05"}, "Due in 4 days (urgent)"},
		{"soon", &Opportunity{CloseDate: "2025-06-21"}, "Due in 20 days (soon)"},
		{"later", &Opportunity{CloseDate: "2025-12-01"}, "Due in 183 days"},
		{"rolling", &Opportunity{}, "Rolling deadline"},
		{"anytime", &Opportunity{AcceptsAnytime: true, CloseDate: "2025-05-01"}, "Rolling deadline"},
		{"verbatim", &Opportunity{CloseDate: "see solicitation"}, "see solicitation"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.opp.DeadlineStatus(now))
		})
	}
}
