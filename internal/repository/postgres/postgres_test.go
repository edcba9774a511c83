package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-service/internal/errors"
	"task-service/internal/repository"
)

// setupIntegrationRepo connects to the postgres instance named by
// TASKS_TEST_POSTGRES_DSN, skipping the test when none is configured.
func setupIntegrationRepo(t *testing.T) *PostgresRepository {
	t.Helper()

	dsn := os.Getenv("TASKS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TASKS_TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	repo, err := New(ctx, dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = repo.pool.Exec(context.Background(), "DELETE FROM tasks")
		repo.Close()
	})

	return repo
}

func TestIntegration_TaskLifecycle(t *testing.T) {
	repo := setupIntegrationRepo(t)
	ctx := context.Background()

	name := fmt.Sprintf("integration-%d", time.Now().UnixNano())
	task := &repository.Task{TaskName: name}
	require.NoError(t, repo.CreateTask(ctx, task))
	assert.Greater(t, task.ID, int64(0))

	// Duplicate name conflicts
	err := repo.CreateTask(ctx, &repository.Task{TaskName: name, Status: true})
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errors.ErrorTypeConflict))

	// Partial status update preserves the name
	status := true
	updated, err := repo.UpdateTask(ctx, task.ID, repository.Update{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, name, updated.TaskName)
	assert.True(t, updated.Status)

	// Filtered list finds the task
	tasks, err := repo.ListTasks(ctx, repository.Filter{Status: &status})
	require.NoError(t, err)
	require.NotEmpty(t, tasks)

	// Delete then get fails with not found
	require.NoError(t, repo.DeleteTask(ctx, task.ID))
	_, err = repo.GetTask(ctx, task.ID)
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errors.ErrorTypeNotFound))
}

func TestIntegration_Ping(t *testing.T) {
	repo := setupIntegrationRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
