package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	token, err := manager.Issue(42, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	identity, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}
	if identity.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", identity.UserID)
	}
	if identity.Email != "test@example.com" {
		t.Errorf("expected Email 'test@example.com', got '%s'", identity.Email)
	}
}

func TestVerify_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret-key", -time.Hour)

	token, err := manager.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := manager.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	// exp == now counts as expired
	manager := NewTokenManager("test-secret-key", 0)

	token, err := manager.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := manager.Verify(token); err == nil {
		t.Error("expected zero-TTL token to be rejected")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	manager1 := NewTokenManager("secret-key-1", time.Hour)
	manager2 := NewTokenManager("secret-key-2", time.Hour)

	token, err := manager1.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := manager2.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong signature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	if _, err := manager.Verify("not-a-valid-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestVerify_Empty(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	if _, err := manager.Verify(""); err == nil {
		t.Error("expected error for empty token")
	}
}
