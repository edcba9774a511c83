package domain

// Task is a named, boolean-status unit of work persisted as one row
type Task struct {
	ID       int64  `json:"id"`
	TaskName string `json:"task_name"`
	Status   bool   `json:"status"`
}

// TaskFilter narrows a list query. Nil fields apply no constraint; present
// fields combine with logical AND.
type TaskFilter struct {
	TaskName *string
	Status   *bool
}

// TaskUpdate carries the optional fields of a partial update
type TaskUpdate struct {
	TaskName *string
	Status   *bool
}
