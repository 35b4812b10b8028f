package views

import (
	"sort"
	"time"

	"taskdash-core/tasks"
)

// SortKey selects which date drives list and timeline ordering.
type SortKey string

const (
	// SortUpdated orders by updated_at (created_at when never updated),
	// newest first.
	SortUpdated SortKey = "updated"
	// SortDeadline orders by deadline, soonest first, no deadline last.
	SortDeadline SortKey = "deadline"
)

// Filter is the shared pre-filter applied before any projection.
type Filter struct {
	// LeafSet restricts to leaf tasks when non-nil (dashboard and
	// assigned-to-me views). Nil means no leaf restriction.
	LeafSet map[int]bool
	// ShowCompleted keeps completed tasks when true.
	ShowCompleted bool
	// ShowOverdue keeps overdue tasks when true.
	ShowOverdue bool
}

// Apply runs the pre-filter pipeline: leaf restriction first, then the
// completed filter, then the overdue filter. Input order is preserved.
// The overdue predicate is evaluated against the supplied now on every call.
func Apply(ts []tasks.Task, f Filter, now time.Time) []tasks.Task {
	out := make([]tasks.Task, 0, len(ts))
	for _, t := range ts {
		if f.LeafSet != nil && !f.LeafSet[t.ID] {
			continue
		}
		if !f.ShowCompleted && t.Status == tasks.StatusCompleted {
			continue
		}
		if !f.ShowOverdue && t.IsOverdue(now) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTasks orders a filtered list by key without mutating the input.
// Ties keep their relative order.
func SortTasks(ts []tasks.Task, key SortKey) []tasks.Task {
	out := make([]tasks.Task, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool {
		if key == SortDeadline {
			// missing deadlines sort last
			switch {
			case out[i].Deadline == nil:
				return false
			case out[j].Deadline == nil:
				return true
			}
			return out[i].Deadline.Before(*out[j].Deadline)
		}
		return out[i].LastTouched().After(out[j].LastTouched())
	})
	return out
}
