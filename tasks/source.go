package tasks

import "context"

// ScopeKind selects which slice of the task store a snapshot covers.
type ScopeKind string

const (
	// ScopeAssigned is "tasks created by or assigned to the current actor".
	ScopeAssigned ScopeKind = "assigned"
	// ScopeProject is "all tasks in one project".
	ScopeProject ScopeKind = "project"
)

// Scope names the slice of tasks a snapshot should cover.
type Scope struct {
	Kind      ScopeKind
	ActorID   int // required for ScopeAssigned
	ProjectID int // required for ScopeProject
}

// AssignedScope scopes to the actor's own tasks.
func AssignedScope(actorID int) Scope {
	return Scope{Kind: ScopeAssigned, ActorID: actorID}
}

// ProjectScope scopes to every task in a project.
func ProjectScope(projectID int) Scope {
	return Scope{Kind: ScopeProject, ProjectID: projectID}
}

// Source is the external task store. All mutation happens behind it; this
// module only reads snapshots and asks for transitions, refetching after a
// successful change rather than reconciling in place.
type Source interface {
	TasksInScope(ctx context.Context, scope Scope) ([]Task, error)
	Children(ctx context.Context, taskID int) ([]Task, error)
	ApplyStatusChange(ctx context.Context, taskID int, status Status) (Task, error)
	CreateTask(ctx context.Context, in TaskCreate) (Task, error)
	UpdateTask(ctx context.Context, taskID int, in TaskUpdate) (Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}
