package tasks

import "time"

// Status is the lifecycle state of a task, stored as the API's string values.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is the canonical task record as the external API supplies it.
// Deadline, ParentID, AssigneeID and UpdatedAt are optional.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      Status     `json:"status"`
	Priority    int        `json:"priority"`
	ProjectID   int        `json:"project_id"`
	ParentID    *int       `json:"parent_id,omitempty"`
	AssigneeID  *int       `json:"assignee_id,omitempty"`
	CreatedBy   int        `json:"created_by"`
	UpdatedBy   int        `json:"updated_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// IsOverdue reports whether the task's deadline has passed as of now.
// A completed task is never overdue, and a task with no deadline can't be.
// Time-sensitive: call with a fresh now, don't cache the result.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil || t.Status == StatusCompleted {
		return false
	}
	return t.Deadline.Before(now)
}

// LastTouched is the task's most recent store timestamp, falling back to
// created_at when the store never set updated_at.
func (t Task) LastTouched() time.Time {
	if t.UpdatedAt != nil {
		return *t.UpdatedAt
	}
	return t.CreatedAt
}

// ByID builds an id lookup over a snapshot.
func ByID(ts []Task) map[int]Task {
	m := make(map[int]Task, len(ts))
	for _, t := range ts {
		m[t.ID] = t
	}
	return m
}
