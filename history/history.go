// Package history builds task change-history entries for the external store
// to persist. Entries are plain values; nothing here does I/O.
package history

import (
	"fmt"
	"time"

	"taskdash-core/tasks"
)

// Action identifies what a history entry records.
type Action string

const (
	ActionCreate         Action = "CREATE"
	ActionDelete         Action = "DELETE"
	ActionStatusChange   Action = "STATUS_CHANGE"
	ActionAssigneeChange Action = "ASSIGNEE_CHANGE"
	ActionPriorityChange Action = "PRIORITY_CHANGE"
)

// Entry is one audit record for a task.
type Entry struct {
	TaskID    int       `json:"task_id"`
	UserID    int       `json:"user_id"`
	Action    Action    `json:"action_type"`
	Changes   string    `json:"changes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Created records a task creation.
func Created(t tasks.Task, userID int, now time.Time) Entry {
	return Entry{
		TaskID:    t.ID,
		UserID:    userID,
		Action:    ActionCreate,
		Changes:   fmt.Sprintf("title=%s", t.Title),
		CreatedAt: now,
	}
}

// Deleted records a task deletion. No change detail is kept.
func Deleted(taskID, userID int, now time.Time) Entry {
	return Entry{TaskID: taskID, UserID: userID, Action: ActionDelete, CreatedAt: now}
}

// StatusChanged records an accepted status transition.
func StatusChanged(taskID, userID int, old, next tasks.Status, now time.Time) Entry {
	return Entry{
		TaskID:    taskID,
		UserID:    userID,
		Action:    ActionStatusChange,
		Changes:   fmt.Sprintf("%s -> %s", old, next),
		CreatedAt: now,
	}
}

// AssigneeChanged records an assignee change. Nil means unassigned.
func AssigneeChanged(taskID, userID int, old, next *int, now time.Time) Entry {
	return Entry{
		TaskID:    taskID,
		UserID:    userID,
		Action:    ActionAssigneeChange,
		Changes:   fmt.Sprintf("%s -> %s", optInt(old), optInt(next)),
		CreatedAt: now,
	}
}

// PriorityChanged records a priority change.
func PriorityChanged(taskID, userID, old, next int, now time.Time) Entry {
	return Entry{
		TaskID:    taskID,
		UserID:    userID,
		Action:    ActionPriorityChange,
		Changes:   fmt.Sprintf("%d -> %d", old, next),
		CreatedAt: now,
	}
}

func optInt(v *int) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *v)
}
