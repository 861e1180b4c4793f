package auth

import (
	"errors"
	"testing"
	"time"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret"), time.Hour)
	user := &models.User{ID: 42, Username: "alice", Role: models.RoleUser}

	tok, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("user ID mismatch: got %d want %d", claims.UserID, user.ID)
	}
	if claims.Username != user.Username {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, user.Username)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("secret"), -1*time.Second)

	tok, err := m.Generate(&models.User{ID: 1, Username: "u1"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("secret-a"), time.Hour)
	verifier := NewTokenManager([]byte("secret-b"), time.Hour)

	tok, err := issuer.Generate(&models.User{ID: 7, Username: "u7"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("secret"), time.Hour)
	if _, err := m.Verify("not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for malformed token, got %v", err)
	}
}
