package tasktree

import (
	"fmt"
	"time"
)

// DeadlineExceedsParentError rejects a child deadline set later than its
// parent's. Raised at create/edit time before any mutation is attempted.
type DeadlineExceedsParentError struct {
	Deadline       time.Time
	ParentDeadline time.Time
}

func (e *DeadlineExceedsParentError) Error() string {
	return fmt.Sprintf("deadline %s exceeds parent deadline %s",
		e.Deadline.Format(time.RFC3339), e.ParentDeadline.Format(time.RFC3339))
}

// CheckDeadline validates a candidate child deadline against the intended
// parent's. Either side absent means no constraint. Equal deadlines pass;
// only a strictly later child deadline is rejected. The check runs at
// create/edit time only — shortening a parent's deadline later does not
// re-validate existing children.
func CheckDeadline(child, parent *time.Time) error {
	if child == nil || parent == nil {
		return nil
	}
	if child.After(*parent) {
		return &DeadlineExceedsParentError{Deadline: *child, ParentDeadline: *parent}
	}
	return nil
}

// CheckParentDeadline resolves the intended parent from the index and applies
// CheckDeadline. A nil parentID or a parent outside the snapshot means no
// constraint.
func CheckParentDeadline(idx *Index, parentID *int, deadline *time.Time) error {
	if parentID == nil {
		return nil
	}
	parent, ok := idx.Task(*parentID)
	if !ok {
		return nil
	}
	return CheckDeadline(deadline, parent.Deadline)
}
