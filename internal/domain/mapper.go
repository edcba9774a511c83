package domain

import (
	"task-service/internal/repository"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) repository.Task {
	return repository.Task{
		ID:       domainTask.ID,
		TaskName: domainTask.TaskName,
		Status:   domainTask.Status,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask repository.Task) Task {
	return Task{
		ID:       dbTask.ID,
		TaskName: dbTask.TaskName,
		Status:   dbTask.Status,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []repository.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(task)
	}
	return domainTasks
}

// FilterMapper handles conversion between domain and database filters.
type FilterMapper struct{}

// NewFilterMapper creates a new FilterMapper instance.
func NewFilterMapper() *FilterMapper {
	return &FilterMapper{}
}

// ToDatabase converts a domain TaskFilter to a database Filter.
func (m *FilterMapper) ToDatabase(domainFilter TaskFilter) repository.Filter {
	return repository.Filter{
		TaskName: domainFilter.TaskName,
		Status:   domainFilter.Status,
	}
}

// UpdateMapper handles conversion between domain and database updates.
type UpdateMapper struct{}

// NewUpdateMapper creates a new UpdateMapper instance.
func NewUpdateMapper() *UpdateMapper {
	return &UpdateMapper{}
}

// ToDatabase converts a domain TaskUpdate to a database Update.
func (m *UpdateMapper) ToDatabase(domainUpdate TaskUpdate) repository.Update {
	return repository.Update{
		TaskName: domainUpdate.TaskName,
		Status:   domainUpdate.Status,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task   *TaskMapper
	Filter *FilterMapper
	Update *UpdateMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:   NewTaskMapper(),
		Filter: NewFilterMapper(),
		Update: NewUpdateMapper(),
	}
}
