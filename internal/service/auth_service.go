package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
	"github.com/medlmo/gcpRSM/pkg/session"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService is the authentication business interface. Sessions are
// server-side: Login mints a fresh session id (the previous one, if any,
// is destroyed first), Logout destroys the current one, and CurrentUser
// resolves a session id back to its user.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, previousSessionID string) (*model.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser returns (nil, nil) when the session is unknown,
	// expired, or points at a user that no longer exists; in the last
	// case the stale session is destroyed on the way out.
	CurrentUser(ctx context.Context, sessionID string) (*model.User, error)
}

type authService struct {
	repo     *repository.Repository
	sessions session.Store
	logger   *zap.Logger
}

// NewAuthService creates an AuthService instance.
func NewAuthService(repo *repository.Repository, sessions session.Store, logger *zap.Logger) AuthService {
	return &authService{repo: repo, sessions: sessions, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, previousSessionID string) (*model.User, string, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("login user lookup failed", zap.Error(err))
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// Regenerate the session id on every login, discarding whatever id
	// the client presented (fixation defense).
	if previousSessionID != "" {
		if err := s.sessions.Destroy(ctx, previousSessionID); err != nil {
			s.logger.Warn("destroying previous session failed", zap.Error(err))
		}
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Error("session create failed", zap.Error(err))
		return nil, "", err
	}

	return user, sessionID, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, sessionID)
}

func (s *authService) CurrentUser(ctx context.Context, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, nil
	}

	userID, found, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("session lookup failed", zap.Error(err))
		return nil, err
	}
	if !found {
		return nil, nil
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The account was deleted after the session was issued.
			// Drop the orphaned session so the client re-authenticates.
			if derr := s.sessions.Destroy(ctx, sessionID); derr != nil {
				s.logger.Warn("destroying orphaned session failed", zap.Error(derr))
			}
			return nil, nil
		}
		s.logger.Error("session user lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return user, nil
}
