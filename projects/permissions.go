package projects

import (
	"fmt"

	"taskdash-core/tasks"
)

// CanViewTask allows the creator, the assignee, and any project member
// holding a role (ADMIN or VIEWER).
func CanViewTask(members []Member, userID int, t tasks.Task) bool {
	if t.CreatedBy == userID || (t.AssigneeID != nil && *t.AssigneeID == userID) {
		return true
	}
	role, ok := RoleOf(members, userID)
	return ok && (role == RoleAdmin || role == RoleViewer)
}

// CanModifyTask allows edits and deletes for the creator, the assignee, and
// project ADMINs. VIEWERs may only change status, not edit.
func CanModifyTask(members []Member, userID int, t tasks.Task) bool {
	if t.CreatedBy == userID || (t.AssigneeID != nil && *t.AssigneeID == userID) {
		return true
	}
	role, _ := RoleOf(members, userID)
	return role == RoleAdmin
}

// CanChangeStatus allows status transitions for any member with a role as
// well as a member creator or assignee. Non-members are rejected outright:
// tasks are project-scoped, and being creator or assignee does not bypass
// membership.
func CanChangeStatus(members []Member, userID int, t tasks.Task) bool {
	role, ok := RoleOf(members, userID)
	if !ok {
		return false
	}
	return role == RoleAdmin || role == RoleViewer ||
		t.CreatedBy == userID || (t.AssigneeID != nil && *t.AssigneeID == userID)
}

// CreatorProtectedError rejects role changes or removal aimed at the
// project creator.
type CreatorProtectedError struct {
	UserID int
}

func (e *CreatorProtectedError) Error() string {
	return fmt.Sprintf("user %d is the project creator and cannot be demoted or removed", e.UserID)
}

// ValidateRoleChange rejects demoting the project creator below ADMIN.
func ValidateRoleChange(p Project, m Member, to Role) error {
	if m.UserID == p.CreatorID && to != RoleAdmin {
		return &CreatorProtectedError{UserID: m.UserID}
	}
	return nil
}

// ValidateRemoval rejects removing the project creator.
func ValidateRemoval(p Project, m Member) error {
	if m.UserID == p.CreatorID {
		return &CreatorProtectedError{UserID: m.UserID}
	}
	return nil
}
