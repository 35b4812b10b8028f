package tasktree

import (
	"fmt"

	"taskdash-core/tasks"
)

// ChildrenIncompleteError rejects completing a task while direct children
// remain unfinished. Surfaced to the user, never applied to the store.
type ChildrenIncompleteError struct {
	TaskID int
}

func (e *ChildrenIncompleteError) Error() string {
	return fmt.Sprintf("task %d cannot be completed: it has incomplete child tasks", e.TaskID)
}

// CheckStatusChange decides whether taskID may move to next. Completing a
// task requires every direct child to already be completed; the rule applied
// on every transition makes full-subtree completion hold by induction, so
// only direct children are inspected. Moves back to not_started or
// in_progress are always allowed.
func CheckStatusChange(idx *Index, taskID int, next tasks.Status) error {
	if next != tasks.StatusCompleted {
		return nil
	}
	for _, child := range idx.ChildTasks(taskID) {
		if child.Status != tasks.StatusCompleted {
			return &ChildrenIncompleteError{TaskID: taskID}
		}
	}
	return nil
}
