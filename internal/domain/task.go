package domain

import (
	"time"
)

// Status represents the workflow state of a task.
type Status string

// Possible task status values
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Priority represents the urgency of a task.
type Priority string

// Possible task priority values
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task represents a single tracked unit of work. The ID and CreatedAt
// fields are assigned by the store on insert and are immutable afterwards.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewTask returns a task with creation defaults applied: status "todo" and
// priority "medium". Callers merge the validated payload on top via
// TaskPatch.ApplyTo before persisting.
func NewTask() *Task {
	return &Task{
		Status:   StatusTodo,
		Priority: PriorityMedium,
	}
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return NewValidationError("title", msgTitleRequired)
	}

	if !t.Status.Valid() {
		return ErrInvalidStatus
	}

	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}

	return nil
}

// Valid reports whether the status is one of the allowed values.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Valid reports whether the priority is one of the allowed values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// statusValues and priorityValues list the allowed values in sorted order
// for use in validation error messages.
var (
	statusValues   = []string{"done", "in_progress", "todo"}
	priorityValues = []string{"high", "low", "medium"}
)
