package services

import (
	"context"
	"time"

	"task-service/internal/config"
	"task-service/internal/domain"
	"task-service/internal/errors"
	"task-service/internal/repository"
	"task-service/internal/validation"
)

// defaultQueryTimeout bounds store calls when no configuration is supplied
const defaultQueryTimeout = 10 * time.Second

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	queryTimeout  time.Duration
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo repository.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		queryTimeout:  defaultQueryTimeout,
	}
}

// NewTaskServiceWithConfig creates a new TaskService using configured
// validation limits and query timeout
func NewTaskServiceWithConfig(repo repository.Repository, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		queryTimeout:  cfg.GetQueryTimeout(),
	}
}

// storeCtx bounds a store call with the configured query timeout
func (t *taskServiceImpl) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, t.queryTimeout)
}

// CreateTask creates a new task with the given name and status
func (t *taskServiceImpl) CreateTask(ctx context.Context, name string, status bool) (*domain.Task, error) {
	trimmedName, err := t.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}

	dbTask := &repository.Task{
		TaskName: trimmedName,
		Status:   status,
	}

	ctx, cancel := t.storeCtx(ctx)
	defer cancel()

	if err := t.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListTasks returns tasks matching the filter in ascending ID order
func (t *taskServiceImpl) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	ctx, cancel := t.storeCtx(ctx)
	defer cancel()

	dbTasks, err := t.repo.ListTasks(ctx, t.mapper.Filter.ToDatabase(filter))
	if err != nil {
		return nil, err
	}

	domainTasks := make([]*domain.Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := t.mapper.Task.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks, nil
}

// GetTask retrieves a task by its ID. Ids without a matching row, including
// zero and negative ids, surface as not found.
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	ctx, cancel := t.storeCtx(ctx)
	defer cancel()

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// UpdateTask applies a partial update to a task. At least one of name or
// status must be present.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskForUpdate(update.TaskName, update.Status); err != nil {
		return nil, err
	}

	if update.TaskName != nil {
		trimmedName, err := t.taskValidator.GetValidTaskName(*update.TaskName)
		if err != nil {
			return nil, err
		}
		update.TaskName = &trimmedName
	}

	ctx, cancel := t.storeCtx(ctx)
	defer cancel()

	dbTask, err := t.repo.UpdateTask(ctx, id, t.mapper.Update.ToDatabase(update))
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// DeleteTask removes a task by its ID
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := t.storeCtx(ctx)
	defer cancel()

	return t.repo.DeleteTask(ctx, id)
}

// Health verifies the backing store is reachable
func (t *taskServiceImpl) Health(ctx context.Context) error {
	ctx, cancel := t.storeCtx(ctx)
	defer cancel()

	if err := t.repo.Ping(ctx); err != nil {
		return errors.WrapError(err, errors.ErrorTypeDatabase, "store unavailable")
	}
	return nil
}
