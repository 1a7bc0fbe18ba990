package repository

import (
	"context"

	"taskboard/internal/domain"
)

// TaskRepository exposes persistence operations for Task rows.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	CountByUser(ctx context.Context, userID int64) (domain.TaskStats, error)
}
