package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// TaskService coordinates task level operations backed by repositories.
// Every operation is scoped to the owning user.
type TaskService interface {
	Create(ctx context.Context, ownerID int64, title, date string, isChecked bool) (*domain.Task, error)
	List(ctx context.Context, ownerID int64, date, search string) ([]domain.Task, error)
	Update(ctx context.Context, ownerID, taskID int64, patch domain.TaskPatch) (*domain.Task, error)
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, ownerID int64, title, date string, isChecked bool) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	task := &domain.Task{
		UserID:    ownerID,
		Title:     title,
		Date:      date,
		IsChecked: isChecked,
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, ownerID int64, date, search string) ([]domain.Task, error) {
	return s.tasks.List(ctx, domain.TaskFilter{
		UserID: ownerID,
		Date:   date,
		Search: search,
	})
}

func (s *taskService) Update(ctx context.Context, ownerID, taskID int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !authorize(ownerID, task) {
		return nil, ErrNotFound
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		task.Title = *patch.Title
	}
	if patch.Date != nil {
		if strings.TrimSpace(*patch.Date) == "" {
			return nil, fmt.Errorf("%w: date must not be empty", ErrValidation)
		}
		task.Date = *patch.Date
	}
	if patch.IsChecked != nil {
		task.IsChecked = *patch.IsChecked
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

// authorize is the single ownership check used by every mutating operation.
func authorize(callerID int64, task *domain.Task) bool {
	return task != nil && task.UserID == callerID
}
