package postgres

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"task-service/internal/errors"
	"task-service/internal/repository"
)

// uniqueViolation is the postgres error code for unique constraint violations
const uniqueViolation = "23505"

// PostgresRepository implements the repository.Repository interface on top
// of a pgx connection pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// New creates a new postgres repository from a connection string and
// ensures the tasks table exists.
func New(ctx context.Context, connString string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, errors.NewDatabaseError("open connection pool", err)
	}

	r := &PostgresRepository{pool: pool}
	if err := r.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

// ensureSchema creates the tasks table if it does not exist yet
func (r *PostgresRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			task_name VARCHAR(100) NOT NULL UNIQUE,
			status BOOLEAN NOT NULL DEFAULT FALSE
		);
	`)
	if err != nil {
		return errors.NewDatabaseError("create tasks table", err)
	}
	return nil
}

// Close releases the connection pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// Ping verifies the database connection is alive
func (r *PostgresRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return errors.NewDatabaseError("ping database", err)
	}
	return nil
}

// CreateTask inserts a new task and assigns its ID
func (r *PostgresRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (task_name, status)
		VALUES ($1, $2) RETURNING id;
	`,
		task.TaskName,
		task.Status,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.NewConflictError("task", "task_name", task.TaskName)
		}
		return errors.NewDatabaseError("insert task", err)
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *PostgresRepository) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	var t repository.Task
	err := r.pool.QueryRow(ctx, `
		SELECT id, task_name, status
		FROM tasks
		WHERE id = $1;
	`,
		id,
	).Scan(&t.ID, &t.TaskName, &t.Status)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
		}
		return nil, errors.NewDatabaseError("get task", err)
	}

	return &t, nil
}

// ListTasks retrieves tasks matching the filter in ascending ID order
func (r *PostgresRepository) ListTasks(ctx context.Context, filter repository.Filter) ([]*repository.Task, error) {
	var conditions []string
	var args []interface{}

	if filter.TaskName != nil && *filter.TaskName != "" {
		args = append(args, "%"+*filter.TaskName+"%")
		conditions = append(conditions, fmt.Sprintf("task_name ILIKE $%d", len(args)))
	}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT id, task_name, status FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.NewDatabaseError("list tasks", err)
	}
	defer rows.Close()

	tasks := []*repository.Task{}
	for rows.Next() {
		var t repository.Task
		if err := rows.Scan(&t.ID, &t.TaskName, &t.Status); err != nil {
			return nil, errors.NewDatabaseError("scan task", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("list tasks", err)
	}

	return tasks, nil
}

// UpdateTask applies the supplied fields to a task and returns the updated
// row. Runs as a single statement with RETURNING.
func (r *PostgresRepository) UpdateTask(ctx context.Context, id int64, update repository.Update) (*repository.Task, error) {
	var assignments []string
	var args []interface{}

	if update.TaskName != nil {
		args = append(args, *update.TaskName)
		assignments = append(assignments, fmt.Sprintf("task_name = $%d", len(args)))
	}

	if update.Status != nil {
		args = append(args, *update.Status)
		assignments = append(assignments, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(assignments) == 0 {
		return nil, errors.NewValidationError("no fields to update", nil)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $%d
		RETURNING id, task_name, status;
	`, strings.Join(assignments, ", "), len(args))

	var t repository.Task
	err := r.pool.QueryRow(ctx, query, args...).Scan(&t.ID, &t.TaskName, &t.Status)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
		}
		if isUniqueViolation(err) {
			return nil, errors.NewConflictError("task", "task_name", *update.TaskName)
		}
		return nil, errors.NewDatabaseError("update task", err)
	}

	return &t, nil
}

// DeleteTask deletes a task by ID
func (r *PostgresRepository) DeleteTask(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM tasks
		WHERE id = $1;
	`,
		id,
	)
	if err != nil {
		return errors.NewDatabaseError("delete task", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return nil
}

// isUniqueViolation reports whether the error chain contains a postgres
// unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
