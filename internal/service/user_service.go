package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/config"
	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

// ── user module business errors ──

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrInvalidRole    = errors.New("invalid role")
)

// UserService is the user management business interface. All operations
// are administrator-only; the gate lives in the routing layer.
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) error
	// Bootstrap seeds the first administrator account when the users
	// table is empty. A no-op when users exist or when the bootstrap
	// credentials are not configured.
	Bootstrap(ctx context.Context) error
}

type userService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService instance.
func NewUserService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{cfg: cfg, repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("get user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("get user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Username != nil {
		existing, err := s.repo.User.GetByUsername(ctx, *req.Username)
		if err == nil && existing.ID != id {
			return nil, ErrUsernameExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		existing, err := s.repo.User.GetByEmail(ctx, *req.Email)
		if err == nil && existing.ID != id {
			return nil, ErrEmailExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("password hash failed", zap.Error(err))
			return nil, err
		}
		user.Password = string(hash)
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		if !model.ValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.User.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete user failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) Bootstrap(ctx context.Context) error {
	boot := s.cfg.Bootstrap
	if boot.AdminEmail == "" || boot.AdminPassword == "" {
		return nil
	}

	total, err := s.repo.User.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(boot.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username: boot.AdminUsername,
		Password: string(hash),
		Email:    boot.AdminEmail,
		FullName: boot.AdminFullName,
		Role:     model.RoleAdmin,
	}

	if err := s.repo.User.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("bootstrap administrator created",
		zap.String("username", admin.Username),
		zap.String("email", admin.Email))
	return nil
}
