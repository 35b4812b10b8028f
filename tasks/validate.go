package tasks

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TaskCreate is the input for creating a task through the external store.
// Status defaults to not_started and priority to 0 when left zero-valued,
// matching the store's own defaults.
type TaskCreate struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      Status     `json:"status,omitempty" validate:"omitempty,oneof=not_started in_progress completed"`
	Priority    int        `json:"priority" validate:"gte=0"`
	ProjectID   int        `json:"project_id" validate:"required"`
	ParentID    *int       `json:"parent_id,omitempty"`
	AssigneeID  *int       `json:"assignee_id,omitempty"`
}

// Validate checks the input and fills defaults. The input is left intact on
// failure so the caller can surface it for correction.
func (in *TaskCreate) Validate() error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	if in.Status == "" {
		in.Status = StatusNotStarted
	}
	return nil
}

// TaskUpdate is the input for editing a task. Nil fields are left unchanged
// by the store.
type TaskUpdate struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    *int       `json:"priority,omitempty" validate:"omitempty,gte=0"`
	AssigneeID  *int       `json:"assignee_id,omitempty"`
}

// Validate checks the update input.
func (in *TaskUpdate) Validate() error {
	return validate.Struct(in)
}
