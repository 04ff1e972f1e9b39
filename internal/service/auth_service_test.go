package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
	"github.com/medlmo/gcpRSM/pkg/session"
)

func setupTestAuthService() (AuthService, *repository.Repository, session.Store) {
	repo := newTestRepository()
	sessions := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(repo, sessions, zap.NewNop())
	return svc, repo, sessions
}

func seedTestUser(repo *repository.Repository, email, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		Username: "agent",
		Password: string(hash),
		Email:    email,
		FullName: "Agent de test",
		Role:     model.RoleMarchesManager,
	}
	_ = repo.User.Create(context.Background(), user)
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, repo, sessions := setupTestAuthService()
	seeded := seedTestUser(repo, "agent@example.ma", "secret-password")

	user, sessionID, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "agent@example.ma",
		Password: "secret-password",
	}, "")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != seeded.ID {
		t.Errorf("Login() user = %s, want %s", user.ID, seeded.ID)
	}
	if sessionID == "" {
		t.Fatal("Login() returned empty session id")
	}

	userID, found, err := sessions.Get(context.Background(), sessionID)
	if err != nil || !found {
		t.Fatalf("session not stored: found=%v err=%v", found, err)
	}
	if userID != seeded.ID {
		t.Errorf("session maps to %s, want %s", userID, seeded.ID)
	}
}

func TestLoginRotatesSession(t *testing.T) {
	svc, repo, sessions := setupTestAuthService()
	seeded := seedTestUser(repo, "agent@example.ma", "secret-password")

	previous, err := sessions.Create(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("seeding previous session: %v", err)
	}

	_, fresh, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "agent@example.ma",
		Password: "secret-password",
	}, previous)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if fresh == previous {
		t.Error("Login() kept the presented session id, want a fresh one")
	}

	if _, found, _ := sessions.Get(context.Background(), previous); found {
		t.Error("previous session survived login, want it destroyed")
	}
	if _, found, _ := sessions.Get(context.Background(), fresh); !found {
		t.Error("fresh session missing from store")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	seedTestUser(repo, "agent@example.ma", "secret-password")

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "agent@example.ma",
		Password: "not-the-password",
	}, "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.ma",
		Password: "whatever",
	}, "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	svc, repo, sessions := setupTestAuthService()
	seeded := seedTestUser(repo, "agent@example.ma", "secret-password")

	id, _ := sessions.Create(context.Background(), seeded.ID)

	if err := svc.Logout(context.Background(), id); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, found, _ := sessions.Get(context.Background(), id); found {
		t.Error("session survived logout")
	}

	// Logging out again, with the same id or none at all, is a no-op.
	if err := svc.Logout(context.Background(), id); err != nil {
		t.Errorf("repeated Logout() error = %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Errorf("empty Logout() error = %v", err)
	}
}

func TestCurrentUserUnknownSession(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	user, err := svc.CurrentUser(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if user != nil {
		t.Errorf("CurrentUser() = %v, want nil for an unknown session", user)
	}
}

func TestCurrentUserDestroysOrphanedSession(t *testing.T) {
	svc, repo, sessions := setupTestAuthService()
	seeded := seedTestUser(repo, "agent@example.ma", "secret-password")

	id, _ := sessions.Create(context.Background(), seeded.ID)

	// The account disappears while the session is still live.
	if _, err := repo.User.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("deleting user: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), id)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if user != nil {
		t.Errorf("CurrentUser() = %v, want nil for a deleted account", user)
	}
	if _, found, _ := sessions.Get(context.Background(), id); found {
		t.Error("orphaned session survived, want it destroyed")
	}
}
