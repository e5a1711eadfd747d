package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether the status is one of the three known values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Comment struct {
	UserID    string
	Text      string
	CreatedAt time.Time
}

type Task struct {
	ID          uint64
	ProjectID   uint64
	Title       string
	Description string
	AssignedTo  string
	Status      TaskStatus
	Comments    []Comment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	ProjectID   uint64
	Title       string
	Description string
	AssignedTo  string
	Status      TaskStatus
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	AssignedTo  *string
	Status      *TaskStatus
}

// Empty reports whether the partial update carries no fields at all.
func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.AssignedTo == nil && in.Status == nil
}
