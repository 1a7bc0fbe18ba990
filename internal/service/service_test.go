package service

import (
	"context"
	"io"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// --- in-memory fakes ---

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (r *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, repository.ErrDuplicateEmail
		}
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) UpdateImage(ctx context.Context, id int64, image string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Image = image
	return nil
}

type fakeTaskRepo struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]*domain.Task{}, nextID: 1}
}

func (r *fakeTaskRepo) Init(ctx context.Context) error { return nil }

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) (int64, error) {
	task.ID = r.nextID
	r.nextID++
	copied := *task
	r.tasks[task.ID] = &copied
	return task.ID, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Get(ctx context.Context, id int64) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTaskRepo) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	out := []domain.Task{}
	for id := int64(1); id < r.nextID; id++ {
		t, ok := r.tasks[id]
		if !ok || t.UserID != filter.UserID {
			continue
		}
		if filter.Date != "" && t.Date != filter.Date {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTaskRepo) CountByUser(ctx context.Context, userID int64) (domain.TaskStats, error) {
	var stats domain.TaskStats
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		stats.Total++
		if t.IsChecked {
			stats.Completed++
		}
	}
	return stats, nil
}

type fakeStorage struct {
	puts int
	keys []string
}

func (s *fakeStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	s.puts++
	s.keys = append(s.keys, key)
	return key, nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error { return nil }
