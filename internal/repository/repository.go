package repository

import "context"

// Task represents a row in the tasks table
type Task struct {
	ID       int64
	TaskName string
	Status   bool
}

// Filter contains the optional constraints for listing tasks. Both fields
// are combinable; nil means the constraint is not applied.
type Filter struct {
	TaskName *string
	Status   *bool
}

// Update contains the optional fields for a partial task update. Nil fields
// are left untouched.
type Update struct {
	TaskName *string
	Status   *bool
}

// IsEmpty reports whether the update carries no fields
func (u Update) IsEmpty() bool {
	return u.TaskName == nil && u.Status == nil
}

// Repository defines the interface for task persistence operations
type Repository interface {
	// CreateTask inserts a new task and assigns its ID
	CreateTask(ctx context.Context, task *Task) error

	// ListTasks returns tasks matching the filter in ascending ID order
	ListTasks(ctx context.Context, filter Filter) ([]*Task, error)

	// GetTask retrieves a task by ID
	GetTask(ctx context.Context, id int64) (*Task, error)

	// UpdateTask applies the supplied fields to a task and returns the
	// updated row
	UpdateTask(ctx context.Context, id int64, update Update) (*Task, error)

	// DeleteTask removes a task by ID
	DeleteTask(ctx context.Context, id int64) error

	// Ping verifies the store connection is alive
	Ping(ctx context.Context) error

	// Close releases the store connection
	Close() error
}
