package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	date TEXT NOT NULL,
	is_checked INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id)`); err != nil {
		return fmt.Errorf("create tasks user index: %w", err)
	}
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (int64, error) {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (user_id, title, date, is_checked, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		task.UserID,
		task.Title,
		task.Date,
		task.IsChecked,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	task.ID = id
	return id, nil
}

// Update persists the merged task row. UserID is immutable and not written.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
UPDATE tasks
SET title=?, date=?, is_checked=?, updated_at=?
WHERE id=?`,
		task.Title,
		task.Date,
		task.IsChecked,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("task update rows affected: %w", err)
	}
	if aff == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, title, date, is_checked, created_at, updated_at
FROM tasks
WHERE id=?`,
		id,
	)
	return scanTask(row)
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT id, user_id, title, date, is_checked, created_at, updated_at
FROM tasks
WHERE user_id=?`)
	args := []any{filter.UserID}

	if filter.Date != "" {
		query.WriteString(` AND date=?`)
		args = append(args, filter.Date)
	}
	if filter.Search != "" {
		query.WriteString(` AND instr(lower(title), lower(?)) > 0`)
		args = append(args, filter.Search)
	}
	query.WriteString(` ORDER BY id ASC`)

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) CountByUser(ctx context.Context, userID int64) (domain.TaskStats, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(SUM(is_checked), 0)
FROM tasks
WHERE user_id=?`,
		userID,
	)

	var stats domain.TaskStats
	if err := row.Scan(&stats.Total, &stats.Completed); err != nil {
		return domain.TaskStats{}, fmt.Errorf("count tasks: %w", err)
	}
	return stats, nil
}

func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*domain.Task, error) {
	var task domain.Task
	if err := scanner.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Date,
		&task.IsChecked,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &task, nil
}
