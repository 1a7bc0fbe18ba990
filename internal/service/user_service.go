package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/storage"
)

// MaxImageSize is the upload ceiling for profile images.
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// Profile aggregates the data returned by the profile endpoint.
type Profile struct {
	Email string
	Image string
	Stats domain.TaskStats
}

// UserService describes user lifecycle and profile operations.
type UserService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateImage(ctx context.Context, userID int64, data []byte, contentType string) (string, error)
}

type userService struct {
	users repository.UserRepository
	tasks repository.TaskRepository
	files storage.Service
}

func NewUserService(users repository.UserRepository, tasks repository.TaskRepository, files storage.Service) UserService {
	return &userService{
		users: users,
		tasks: tasks,
		files: files,
	}
}

func (s *userService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stats, err := s.tasks.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Email: user.Email,
		Image: user.Image,
		Stats: stats,
	}, nil
}

// UpdateImage validates the upload before any storage call, stores the bytes
// under a user-and-time derived key, and records the returned path.
func (s *userService) UpdateImage(ctx context.Context, userID int64, data []byte, contentType string) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: content type %q is not allowed", ErrValidation, contentType)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: image exceeds %d bytes", ErrValidation, MaxImageSize)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image is empty", ErrValidation)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	key := fmt.Sprintf("users/%d/avatar-%d%s", userID, time.Now().UnixNano(), ext)
	path, err := s.files.Put(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	if err := s.users.UpdateImage(ctx, userID, path); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return path, nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Email:     user.Email,
		Image:     user.Image,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
