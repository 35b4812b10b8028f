package projects

import "time"

// Role is a member's role within a project.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleViewer Role = "VIEWER"
)

// Project is the owning container for tasks.
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatorID   int       `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Member is one user's membership in a project.
type Member struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	InvitedAt time.Time `json:"invited_at"`
}

// RoleOf returns userID's role among members. The second return is false
// when the user is not a member.
func RoleOf(members []Member, userID int) (Role, bool) {
	for _, m := range members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}
