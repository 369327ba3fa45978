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


package core

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// deadlineLayouts is the ordered list of date layouts tried when parsing a
// deadline string. Agencies export dates in wildly inconsistent formats, so
// the list is deliberately permissive.
var deadlineLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"1-2-2006",
	"01-02-2006",
	"2006/01/02",
	"2006.01.02",
	"02.01.2006",
}

// monthDatePattern extracts a "Month D, YYYY" date embedded in free text,
// e.g. "Applications close on August 20, 2025 at 5pm ET".
var monthDatePattern = regexp.MustCompile(
	`(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),?\s+(\d{4})`)

// ParseDeadline parses a deadline string using the known layouts, falling
// back to scanning for an embedded month-name date. Returns false if no date
// can be extracted; an unparseable deadline is not an error, the caller
// treats the opportunity as current.
func ParseDeadline(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}

	// Fall back to extracting a month-name date from surrounding text.
	if m := monthDatePattern.FindStringSubmatch(s); m != nil {
		normalized := fmt.Sprintf("%s %s, %s", m[1], m[2], m[3])
		if t, err := time.ParseInLocation("January 2, 2006", normalized, time.UTC); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// Deadline returns the parsed close date of the opportunity.
// Returns false for rolling deadlines, missing dates, and unparseable strings.
func (o *Opportunity) Deadline() (time.Time, bool) {
	if o.AcceptsAnytime {
		return time.Time{}, false
	}
	return ParseDeadline(o.CloseDate)
}

// IsExpired reports whether the opportunity's deadline has passed as of now.
// Opportunities with no parseable deadline are never expired.
func (o *Opportunity) IsExpired(now time.Time) bool {
	deadline, ok := o.Deadline()
	if !ok {
		return false
	}
	return deadline.Before(now)
}

// DeadlineStatus describes the opportunity's deadline relative to now,
// for human-readable reports.
func (o *Opportunity) DeadlineStatus(now time.Time) string {
	deadline, ok := o.Deadline()
	if !ok {
		if o.CloseDate != "" && !o.AcceptsAnytime {
			// Unparseable date string: surface it verbatim rather than guessing.
			return o.CloseDate
		}
		return "Rolling deadline"
	}

	days := int(deadline.Sub(now).Hours() / 24)
	switch {
	case days < 0:
		return "Closed"
	case days <= 7:
		return fmt.Sprintf("Due in %d days (urgent)", days)
	case days <= 30:
		return fmt.Sprintf("Due in %d days (soon)", days)
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}
