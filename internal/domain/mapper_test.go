package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-service/internal/repository"
)

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	domainTask := Task{
		ID:       1,
		TaskName: "Buy milk",
		Status:   true,
	}

	dbTask := mapper.ToDatabase(domainTask)

	assert.Equal(t, int64(1), dbTask.ID)
	assert.Equal(t, "Buy milk", dbTask.TaskName)
	assert.True(t, dbTask.Status)
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	dbTask := repository.Task{
		ID:       2,
		TaskName: "Walk dog",
		Status:   false,
	}

	domainTask := mapper.FromDatabase(dbTask)

	assert.Equal(t, int64(2), domainTask.ID)
	assert.Equal(t, "Walk dog", domainTask.TaskName)
	assert.False(t, domainTask.Status)
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()
	dbTasks := []repository.Task{
		{ID: 1, TaskName: "First", Status: false},
		{ID: 2, TaskName: "Second", Status: true},
	}

	domainTasks := mapper.FromDatabaseSlice(dbTasks)

	assert.Len(t, domainTasks, 2)
	assert.Equal(t, "First", domainTasks[0].TaskName)
	assert.True(t, domainTasks[1].Status)
}

func TestFilterMapper_ToDatabase(t *testing.T) {
	mapper := NewFilterMapper()
	name := "milk"
	status := true

	dbFilter := mapper.ToDatabase(TaskFilter{TaskName: &name, Status: &status})

	assert.Equal(t, &name, dbFilter.TaskName)
	assert.Equal(t, &status, dbFilter.Status)

	empty := mapper.ToDatabase(TaskFilter{})
	assert.Nil(t, empty.TaskName)
	assert.Nil(t, empty.Status)
}

func TestUpdateMapper_ToDatabase(t *testing.T) {
	mapper := NewUpdateMapper()
	status := true

	dbUpdate := mapper.ToDatabase(TaskUpdate{Status: &status})

	assert.Nil(t, dbUpdate.TaskName)
	assert.Equal(t, &status, dbUpdate.Status)
	assert.False(t, dbUpdate.IsEmpty())
	assert.True(t, NewUpdateMapper().ToDatabase(TaskUpdate{}).IsEmpty())
}
