package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalService stores blobs on the local filesystem under a root directory.
// Used when no S3 bucket is configured.
type LocalService struct {
	root string
}

func NewLocalService(root string) (*LocalService, error) {
	clean := filepath.Clean(root)
	if err := os.MkdirAll(clean, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalService{root: clean}, nil
}

func (s *LocalService) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	rel, err := s.safeRel(key)
	if err != nil {
		return "", err
	}

	full := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create key dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", full, err)
	}
	_, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if copyErr != nil {
		return "", fmt.Errorf("write file %s: %w", full, copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("close file %s: %w", full, closeErr)
	}

	return filepath.ToSlash(rel), nil
}

func (s *LocalService) Delete(ctx context.Context, key string) error {
	rel, err := s.safeRel(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, rel)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// safeRel rejects keys that would escape the root directory.
func (s *LocalService) safeRel(key string) (string, error) {
	rel := filepath.Clean(strings.TrimPrefix(key, "/"))
	if rel == "." || rel == "" || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return rel, nil
}

var _ Service = (*LocalService)(nil)
