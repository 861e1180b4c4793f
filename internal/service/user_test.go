package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/services"
)

func newTestUserService(t *testing.T) (services.UserService, *fakeUserRepo, *fakeTokenRepo) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	imageSvc := NewImageService(newFakeImageRepo(), &fakeStore{}, testDefaultImageURL, logger)

	return NewUserService(userRepo, tokenRepo, imageSvc, logger), userRepo, tokenRepo
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, userRepo, _ := newTestUserService(t)

	user, err := svc.Create(context.Background(), &services.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if user.Password != "" {
		t.Fatal("password hash leaked out of the service")
	}

	stored := userRepo.users[user.ID]
	if stored == nil {
		t.Fatalf("user %d not stored", user.ID)
	}
	if stored.Password == "" || stored.Password == "hunter2hunter2" {
		t.Fatal("stored password is not a hash")
	}
	if stored.Role != models.RoleUser {
		t.Fatalf("role = %q, want default %q", stored.Role, models.RoleUser)
	}
}

func TestCreateUser_InvalidInput(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	tests := []struct {
		name string
		req  services.CreateUserRequest
	}{
		{"missing email", services.CreateUserRequest{Username: "alice", Password: "hunter2hunter2"}},
		{"bad email", services.CreateUserRequest{Username: "alice", Email: "nope", Password: "hunter2hunter2"}},
		{"short password", services.CreateUserRequest{Username: "alice", Email: "alice@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), &tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestDeleteUser_RevokesRefreshTokens(t *testing.T) {
	svc, _, tokenRepo := newTestUserService(t)

	user, err := svc.Create(context.Background(), &services.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	expires := time.Now().Add(time.Hour)
	for _, token := range []string{"session-a", "session-b"} {
		err := tokenRepo.Create(context.Background(), &models.RefreshToken{
			Token:     token,
			UserID:    user.ID,
			ExpiresAt: expires,
		})
		if err != nil {
			t.Fatalf("token Create error: %v", err)
		}
	}
	err = tokenRepo.Create(context.Background(), &models.RefreshToken{
		Token:     "other-user",
		UserID:    user.ID + 1,
		ExpiresAt: expires,
	})
	if err != nil {
		t.Fatalf("token Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), user.ID, "alice"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	for _, token := range []string{"session-a", "session-b"} {
		if _, err := tokenRepo.Find(context.Background(), token); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("token %q survived the delete: %v", token, err)
		}
	}
	if _, err := tokenRepo.Find(context.Background(), "other-user"); err != nil {
		t.Fatalf("unrelated user's token was revoked: %v", err)
	}

	if _, err := svc.Get(context.Background(), user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("user still readable after delete: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	if err := svc.Delete(context.Background(), 404, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
