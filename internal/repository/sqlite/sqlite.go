package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"task-service/internal/errors"
	"task-service/internal/repository"
	"task-service/internal/repository/sqlite/migrations"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements the repository.Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ping verifies the database connection is alive
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("ping database", err)
	}
	return nil
}

// CreateTask inserts a new task and assigns its ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	query := `INSERT INTO tasks (task_name, status) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.TaskName, task.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.NewConflictError("task", "task_name", task.TaskName)
		}
		return err
	}
	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	query := `SELECT id, task_name, status FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves tasks matching the filter in ascending ID order
func (r *SQLiteRepository) ListTasks(ctx context.Context, filter repository.Filter) ([]*repository.Task, error) {
	var conditions []string
	var args []interface{}

	if filter.TaskName != nil && *filter.TaskName != "" {
		conditions = append(conditions, "task_name LIKE ?")
		args = append(args, "%"+*filter.TaskName+"%")
	}

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}

	query := `SELECT id, task_name, status FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	tasks, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*repository.Task{}
	}
	return tasks, nil
}

// UpdateTask applies the supplied fields to a task and returns the updated
// row. The update runs as a single statement; a missing row surfaces as a
// not found error and a duplicate name as a conflict.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, id int64, update repository.Update) (*repository.Task, error) {
	var assignments []string
	var args []interface{}

	if update.TaskName != nil {
		assignments = append(assignments, "task_name = ?")
		args = append(args, *update.TaskName)
	}

	if update.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, *update.Status)
	}

	if len(assignments) == 0 {
		return nil, errors.NewValidationError("no fields to update", nil)
	}

	args = append(args, id)
	query := "UPDATE tasks SET " + strings.Join(assignments, ", ") +
		" WHERE id = ? RETURNING id, task_name, status"

	task, err := QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.NewConflictError("task", "task_name", *update.TaskName)
		}
		return nil, err
	}
	return task, nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// isUniqueViolation reports whether the error chain contains a sqlite
// unique constraint violation.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	if stderrors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
