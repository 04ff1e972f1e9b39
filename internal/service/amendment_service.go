package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

// ── amendment module business errors ──

var (
	ErrAmendmentNotFound     = errors.New("amendment not found")
	ErrInvalidAmendmentType  = errors.New("invalid amendment type")
	ErrAmendmentNumberExists = errors.New("amendment number already exists")
)

// AmendmentService is the amendment business interface. Delay-extension
// amendments feed the penalty recalculation on the parent contract.
type AmendmentService interface {
	Create(ctx context.Context, req *dto.CreateAmendmentRequest, approvedBy string) (*model.Amendment, error)
	GetByID(ctx context.Context, id string) (*model.Amendment, error)
	// List narrows to one contract when contractID is non-empty.
	List(ctx context.Context, contractID string) ([]model.Amendment, error)
	Update(ctx context.Context, id string, req *dto.UpdateAmendmentRequest) (*model.Amendment, error)
	Delete(ctx context.Context, id string) error
}

type amendmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAmendmentService creates an AmendmentService instance.
func NewAmendmentService(repo *repository.Repository, logger *zap.Logger) AmendmentService {
	return &amendmentService{repo: repo, logger: logger}
}

func (s *amendmentService) Create(ctx context.Context, req *dto.CreateAmendmentRequest, approvedBy string) (*model.Amendment, error) {
	if !model.ValidAmendmentType(req.AmendmentType) {
		return nil, ErrInvalidAmendmentType
	}
	if _, err := s.repo.Contract.GetByID(ctx, req.ContractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	amendmentDate, err := parseDate(req.AmendmentDate)
	if err != nil {
		return nil, err
	}
	newEndDate, err := parseDatePtr(req.NewEndDate)
	if err != nil {
		return nil, err
	}

	amendment := &model.Amendment{
		ContractID:       req.ContractID,
		AmendmentNumber:  req.AmendmentNumber,
		AmendmentDate:    amendmentDate,
		AmendmentType:    req.AmendmentType,
		Description:      req.Description,
		AmountAdjustment: req.AmountAdjustment,
		DelayExtension:   req.DelayExtension,
		NewEndDate:       newEndDate,
		Justification:    req.Justification,
	}
	if approvedBy != "" {
		amendment.ApprovedBy = &approvedBy
	}

	if err := s.repo.Amendment.Create(ctx, amendment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAmendmentNumberExists
		}
		s.logger.Error("create amendment failed", zap.Error(err))
		return nil, err
	}

	return amendment, nil
}

func (s *amendmentService) GetByID(ctx context.Context, id string) (*model.Amendment, error) {
	amendment, err := s.repo.Amendment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmendmentNotFound
		}
		s.logger.Error("get amendment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return amendment, nil
}

func (s *amendmentService) List(ctx context.Context, contractID string) ([]model.Amendment, error) {
	amendments, err := s.repo.Amendment.List(ctx, contractID)
	if err != nil {
		s.logger.Error("list amendments failed", zap.Error(err))
		return nil, err
	}
	return amendments, nil
}

func (s *amendmentService) Update(ctx context.Context, id string, req *dto.UpdateAmendmentRequest) (*model.Amendment, error) {
	amendment, err := s.repo.Amendment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmendmentNotFound
		}
		s.logger.Error("get amendment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.AmendmentNumber != nil {
		amendment.AmendmentNumber = *req.AmendmentNumber
	}
	if req.AmendmentDate != nil {
		t, err := parseDate(*req.AmendmentDate)
		if err != nil {
			return nil, err
		}
		amendment.AmendmentDate = t
	}
	if req.AmendmentType != nil {
		if !model.ValidAmendmentType(*req.AmendmentType) {
			return nil, ErrInvalidAmendmentType
		}
		amendment.AmendmentType = *req.AmendmentType
	}
	if req.Description != nil {
		amendment.Description = *req.Description
	}
	if req.AmountAdjustment != nil {
		amendment.AmountAdjustment = req.AmountAdjustment
	}
	if req.DelayExtension != nil {
		amendment.DelayExtension = req.DelayExtension
	}
	if req.NewEndDate != nil {
		t, err := parseDate(*req.NewEndDate)
		if err != nil {
			return nil, err
		}
		amendment.NewEndDate = &t
	}
	if req.Justification != nil {
		amendment.Justification = req.Justification
	}

	if err := s.repo.Amendment.Update(ctx, amendment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAmendmentNumberExists
		}
		s.logger.Error("update amendment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return amendment, nil
}

func (s *amendmentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Amendment.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete amendment failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrAmendmentNotFound
	}
	return nil
}
