package services

import (
	"context"

	"task-service/internal/domain"
)

// TaskService handles task lifecycle operations
type TaskService interface {
	// Task CRUD operations
	CreateTask(ctx context.Context, name string, status bool) (*domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Health verifies the backing store is reachable
	Health(ctx context.Context) error
}
