package domain

import "time"

type TodoStatus string

const (
	TodoStatusPending   TodoStatus = "Pending"
	TodoStatusDone      TodoStatus = "Done"
	TodoStatusCancelled TodoStatus = "Cancelled"
)

// IsValid reports whether s is one of the three known status values.
func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusPending, TodoStatusDone, TodoStatusCancelled:
		return true
	}
	return false
}

type Todo struct {
	ID          uint64
	Title       string
	Description string
	Status      TodoStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTodoInput carries the client-supplied fields for a new todo.
// Status is deliberately absent: every todo starts as Pending.
type CreateTodoInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// UpdateTodoInput is a partial update: nil pointers mean "leave unchanged".
// DueDateSet distinguishes an explicit null (clear the deadline) from an
// absent due_date field.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Status      *TodoStatus
	DueDate     *time.Time
	DueDateSet  bool
}

// HasFields reports whether at least one updatable field was supplied.
func (in UpdateTodoInput) HasFields() bool {
	return in.Title != nil || in.Description != nil || in.Status != nil || in.DueDateSet
}
