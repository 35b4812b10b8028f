// Package views derives the presentation-ready projections — a filtered and
// sorted list, a timeline, a month calendar and an expandable hierarchy —
// from one task snapshot. Everything here is a pure function of its inputs;
// filter and expansion state is the caller's to hold.
package views

import "time"

// NoDateKey is the bucket key for tasks lacking the relevant date field.
// Such tasks are grouped, never dropped.
const NoDateKey = "no-date"

// DateKey derives the YYYY-MM-DD bucket key for a timestamp. Keys are taken
// in UTC so that timeline and calendar agree on day boundaries regardless of
// the server locale. Nil maps to NoDateKey.
func DateKey(ts *time.Time) string {
	if ts == nil {
		return NoDateKey
	}
	return ts.UTC().Format("2006-01-02")
}
