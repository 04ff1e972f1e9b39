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

// ── tender module business errors ──

var (
	ErrTenderNotFound      = errors.New("tender not found")
	ErrInvalidTenderStatus = errors.New("invalid tender status")
	ErrReferenceExists     = errors.New("tender reference already exists")
)

// TenderService is the tender business interface. Status values are
// validated against the enumeration but transitions are free: any
// status may follow any other.
type TenderService interface {
	Create(ctx context.Context, req *dto.CreateTenderRequest, createdBy string) (*model.Tender, error)
	GetByID(ctx context.Context, id string) (*model.Tender, error)
	// List narrows to one status when status is non-empty. The value is
	// matched verbatim; an unknown status simply matches nothing.
	List(ctx context.Context, status string) ([]model.Tender, error)
	Update(ctx context.Context, id string, req *dto.UpdateTenderRequest) (*model.Tender, error)
	// Delete removes the tender and, through the store cascade, all of
	// its bids.
	Delete(ctx context.Context, id string) error
}

type tenderService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTenderService creates a TenderService instance.
func NewTenderService(repo *repository.Repository, logger *zap.Logger) TenderService {
	return &tenderService{repo: repo, logger: logger}
}

func (s *tenderService) Create(ctx context.Context, req *dto.CreateTenderRequest, createdBy string) (*model.Tender, error) {
	deadline, err := parseDate(req.SubmissionDeadline)
	if err != nil {
		return nil, err
	}
	publicationDate, err := parseDatePtr(req.PublicationDate)
	if err != nil {
		return nil, err
	}
	openingDate, err := parseDatePtr(req.OpeningDate)
	if err != nil {
		return nil, err
	}

	tender := &model.Tender{
		Reference:                  req.Reference,
		Title:                      req.Title,
		Description:                req.Description,
		MasterAgency:               req.MasterAgency,
		ProcedureType:              req.ProcedureType,
		Category:                   req.Category,
		EstimatedBudget:            req.EstimatedBudget,
		Currency:                   "MAD",
		PublicationDate:            publicationDate,
		SubmissionDeadline:         deadline,
		OpeningDate:                openingDate,
		Status:                     model.TenderUnderStudy,
		LotsNumber:                 req.LotsNumber,
		ProvisionalGuaranteeAmount: req.ProvisionalGuaranteeAmount,
		OpeningLocation:            req.OpeningLocation,
		ExecutionLocation:          req.ExecutionLocation,
	}
	if req.Currency != nil {
		tender.Currency = *req.Currency
	}
	if req.Status != nil {
		if !model.ValidTenderStatus(*req.Status) {
			return nil, ErrInvalidTenderStatus
		}
		tender.Status = *req.Status
	}
	if createdBy != "" {
		tender.CreatedBy = &createdBy
	}

	if err := s.repo.Tender.Create(ctx, tender); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrReferenceExists
		}
		s.logger.Error("create tender failed", zap.Error(err))
		return nil, err
	}

	return tender, nil
}

func (s *tenderService) GetByID(ctx context.Context, id string) (*model.Tender, error) {
	tender, err := s.repo.Tender.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		s.logger.Error("get tender failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return tender, nil
}

func (s *tenderService) List(ctx context.Context, status string) ([]model.Tender, error) {
	tenders, err := s.repo.Tender.List(ctx, status)
	if err != nil {
		s.logger.Error("list tenders failed", zap.Error(err))
		return nil, err
	}
	return tenders, nil
}

func (s *tenderService) Update(ctx context.Context, id string, req *dto.UpdateTenderRequest) (*model.Tender, error) {
	tender, err := s.repo.Tender.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		s.logger.Error("get tender failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Reference != nil {
		tender.Reference = *req.Reference
	}
	if req.Title != nil {
		tender.Title = *req.Title
	}
	if req.Description != nil {
		tender.Description = req.Description
	}
	if req.MasterAgency != nil {
		tender.MasterAgency = *req.MasterAgency
	}
	if req.ProcedureType != nil {
		tender.ProcedureType = *req.ProcedureType
	}
	if req.Category != nil {
		tender.Category = *req.Category
	}
	if req.EstimatedBudget != nil {
		tender.EstimatedBudget = req.EstimatedBudget
	}
	if req.Currency != nil {
		tender.Currency = *req.Currency
	}
	if req.PublicationDate != nil {
		t, err := parseDate(*req.PublicationDate)
		if err != nil {
			return nil, err
		}
		tender.PublicationDate = &t
	}
	if req.SubmissionDeadline != nil {
		t, err := parseDate(*req.SubmissionDeadline)
		if err != nil {
			return nil, err
		}
		tender.SubmissionDeadline = t
	}
	if req.OpeningDate != nil {
		t, err := parseDate(*req.OpeningDate)
		if err != nil {
			return nil, err
		}
		tender.OpeningDate = &t
	}
	if req.Status != nil {
		if !model.ValidTenderStatus(*req.Status) {
			return nil, ErrInvalidTenderStatus
		}
		tender.Status = *req.Status
	}
	if req.LotsNumber != nil {
		tender.LotsNumber = req.LotsNumber
	}
	if req.ProvisionalGuaranteeAmount != nil {
		tender.ProvisionalGuaranteeAmount = req.ProvisionalGuaranteeAmount
	}
	if req.OpeningLocation != nil {
		tender.OpeningLocation = req.OpeningLocation
	}
	if req.ExecutionLocation != nil {
		tender.ExecutionLocation = req.ExecutionLocation
	}

	if err := s.repo.Tender.Update(ctx, tender); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrReferenceExists
		}
		s.logger.Error("update tender failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return tender, nil
}

func (s *tenderService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Tender.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete tender failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrTenderNotFound
	}
	return nil
}
