package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

// ── notification module business errors ──

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidPriority      = errors.New("invalid notification priority")
)

// NotificationService is the notification business interface.
type NotificationService interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*model.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService creates a NotificationService instance.
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func validPriority(p string) bool {
	switch p {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent:
		return true
	}
	return false
}

func (s *notificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*model.Notification, error) {
	notification := &model.Notification{
		UserID:            req.UserID,
		Type:              req.Type,
		Title:             req.Title,
		Message:           req.Message,
		RelatedEntityType: req.RelatedEntityType,
		RelatedEntityID:   req.RelatedEntityID,
		Priority:          model.PriorityMedium,
	}
	if req.Priority != nil {
		if !validPriority(*req.Priority) {
			return nil, ErrInvalidPriority
		}
		notification.Priority = *req.Priority
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Error("create notification failed", zap.Error(err))
		return nil, err
	}

	return notification, nil
}

func (s *notificationService) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	notifications, err := s.repo.Notification.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	updated, err := s.repo.Notification.MarkRead(ctx, id)
	if err != nil {
		s.logger.Error("mark notification read failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Notification.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete notification failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrNotificationNotFound
	}
	return nil
}
