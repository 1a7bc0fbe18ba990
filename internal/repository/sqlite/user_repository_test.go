package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestUserRepo(t *testing.T) repository.UserRepository {
	t.Helper()
	repo := NewUserRepository(newTestDB(t))
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init user repo: %v", err)
	}
	return repo
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	user := &domain.User{Email: "a@example.com", PasswordHash: "hash"}
	id, err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	byEmail, err := repo.GetByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != id || byEmail.PasswordHash != "hash" || byEmail.Image != "" {
		t.Errorf("unexpected user: %+v", byEmail)
	}

	byID, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != "a@example.com" {
		t.Errorf("unexpected email: %s", byID.Email)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Email: "a@example.com", PasswordHash: "h1"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(ctx, &domain.User{Email: "a@example.com", PasswordHash: "h2"})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	if _, err := repo.GetByEmail(ctx, "nope@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 12345); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_UpdateImage(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	user := &domain.User{Email: "a@example.com", PasswordHash: "hash"}
	id, err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := repo.UpdateImage(ctx, id, "users/1/avatar.png"); err != nil {
		t.Fatalf("update image: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Image != "users/1/avatar.png" {
		t.Errorf("expected image path, got %q", got.Image)
	}

	if err := repo.UpdateImage(ctx, 9999, "x"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}
