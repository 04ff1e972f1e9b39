package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

// ── contract module business errors ──

var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrInvalidContractStatus = errors.New("invalid contract status")
	ErrContractNumberExists  = errors.New("contract number already exists")
	ErrMissingPenaltyRate    = errors.New("contract has no penalty rate")
)

// ContractService is the contract business interface.
type ContractService interface {
	Create(ctx context.Context, req *dto.CreateContractRequest, createdBy string) (*model.Contract, error)
	GetByID(ctx context.Context, id string) (*model.Contract, error)
	// List narrows to one status when status is non-empty.
	List(ctx context.Context, status string) ([]model.Contract, error)
	Update(ctx context.Context, id string, req *dto.UpdateContractRequest) (*model.Contract, error)
	// Delete removes the contract and, through the store cascade, its
	// service orders, amendments and invoices.
	Delete(ctx context.Context, id string) error
	// RecalculatePenalties recomputes accumulated delay penalties:
	// days late past the planned end (extended by amendment delay
	// extensions) times the daily rate times the contract amount. The
	// result is persisted on the contract.
	RecalculatePenalties(ctx context.Context, id string, now time.Time) (*dto.PenaltyRecalculationResponse, error)
}

type contractService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewContractService creates a ContractService instance.
func NewContractService(repo *repository.Repository, logger *zap.Logger) ContractService {
	return &contractService{repo: repo, logger: logger}
}

func (s *contractService) Create(ctx context.Context, req *dto.CreateContractRequest, createdBy string) (*model.Contract, error) {
	if _, err := s.repo.Tender.GetByID(ctx, req.TenderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Bid.GetByID(ctx, req.BidID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Supplier.GetByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	signatureDate, err := parseDate(req.SignatureDate)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	plannedEndDate, err := parseDate(req.PlannedEndDate)
	if err != nil {
		return nil, err
	}
	actualEndDate, err := parseDatePtr(req.ActualEndDate)
	if err != nil {
		return nil, err
	}

	contract := &model.Contract{
		ContractNumber:           req.ContractNumber,
		TenderID:                 req.TenderID,
		BidID:                    req.BidID,
		SupplierID:               req.SupplierID,
		Title:                    req.Title,
		ContractAmount:           *req.ContractAmount,
		Currency:                 "MAD",
		SignatureDate:            signatureDate,
		StartDate:                startDate,
		PlannedEndDate:           plannedEndDate,
		ActualEndDate:            actualEndDate,
		ExecutionDelay:           req.ExecutionDelay,
		Status:                   model.ContractSigned,
		GuaranteeAmount:          req.GuaranteeAmount,
		GuaranteeType:            req.GuaranteeType,
		RetentionPercentage:      req.RetentionPercentage,
		AdvancePaymentPercentage: req.AdvancePaymentPercentage,
		PenaltyRatePerDay:        req.PenaltyRatePerDay,
	}
	if req.Currency != nil {
		contract.Currency = *req.Currency
	}
	if req.Status != nil {
		if !model.ValidContractStatus(*req.Status) {
			return nil, ErrInvalidContractStatus
		}
		contract.Status = *req.Status
	}
	if createdBy != "" {
		contract.CreatedBy = &createdBy
	}

	if err := s.repo.Contract.Create(ctx, contract); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrContractNumberExists
		}
		s.logger.Error("create contract failed", zap.Error(err))
		return nil, err
	}

	return contract, nil
}

func (s *contractService) GetByID(ctx context.Context, id string) (*model.Contract, error) {
	contract, err := s.repo.Contract.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("get contract failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return contract, nil
}

func (s *contractService) List(ctx context.Context, status string) ([]model.Contract, error) {
	contracts, err := s.repo.Contract.List(ctx, status)
	if err != nil {
		s.logger.Error("list contracts failed", zap.Error(err))
		return nil, err
	}
	return contracts, nil
}

func (s *contractService) Update(ctx context.Context, id string, req *dto.UpdateContractRequest) (*model.Contract, error) {
	contract, err := s.repo.Contract.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("get contract failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.ContractNumber != nil {
		contract.ContractNumber = *req.ContractNumber
	}
	if req.Title != nil {
		contract.Title = *req.Title
	}
	if req.ContractAmount != nil {
		contract.ContractAmount = *req.ContractAmount
	}
	if req.Currency != nil {
		contract.Currency = *req.Currency
	}
	if req.SignatureDate != nil {
		t, err := parseDate(*req.SignatureDate)
		if err != nil {
			return nil, err
		}
		contract.SignatureDate = t
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		contract.StartDate = t
	}
	if req.PlannedEndDate != nil {
		t, err := parseDate(*req.PlannedEndDate)
		if err != nil {
			return nil, err
		}
		contract.PlannedEndDate = t
	}
	if req.ActualEndDate != nil {
		t, err := parseDate(*req.ActualEndDate)
		if err != nil {
			return nil, err
		}
		contract.ActualEndDate = &t
	}
	if req.ExecutionDelay != nil {
		contract.ExecutionDelay = req.ExecutionDelay
	}
	if req.Status != nil {
		if !model.ValidContractStatus(*req.Status) {
			return nil, ErrInvalidContractStatus
		}
		contract.Status = *req.Status
	}
	if req.GuaranteeAmount != nil {
		contract.GuaranteeAmount = req.GuaranteeAmount
	}
	if req.GuaranteeType != nil {
		contract.GuaranteeType = req.GuaranteeType
	}
	if req.RetentionPercentage != nil {
		contract.RetentionPercentage = req.RetentionPercentage
	}
	if req.AdvancePaymentPercentage != nil {
		contract.AdvancePaymentPercentage = req.AdvancePaymentPercentage
	}
	if req.PenaltyRatePerDay != nil {
		contract.PenaltyRatePerDay = req.PenaltyRatePerDay
	}
	if req.AccumulatedPenalties != nil {
		contract.AccumulatedPenalties = req.AccumulatedPenalties
	}

	if err := s.repo.Contract.Update(ctx, contract); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrContractNumberExists
		}
		s.logger.Error("update contract failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return contract, nil
}

func (s *contractService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Contract.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete contract failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrContractNotFound
	}
	return nil
}

func (s *contractService) RecalculatePenalties(ctx context.Context, id string, now time.Time) (*dto.PenaltyRecalculationResponse, error) {
	contract, err := s.repo.Contract.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("get contract failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if contract.PenaltyRatePerDay == nil {
		return nil, ErrMissingPenaltyRate
	}

	amendments, err := s.repo.Amendment.List(ctx, id)
	if err != nil {
		s.logger.Error("list amendments failed", zap.String("contract_id", id), zap.Error(err))
		return nil, err
	}

	// Amendment delay extensions push the contractual end date out.
	effectiveEnd := contract.PlannedEndDate
	for _, a := range amendments {
		if a.DelayExtension != nil {
			effectiveEnd = effectiveEnd.AddDate(0, 0, *a.DelayExtension)
		}
	}

	// Measure lateness against the actual end when the works are done,
	// otherwise against now.
	reference := now
	if contract.ActualEndDate != nil {
		reference = *contract.ActualEndDate
	}

	daysLate := 0
	if reference.After(effectiveEnd) {
		daysLate = int(reference.Sub(effectiveEnd).Hours() / 24)
	}

	penalties := contract.PenaltyRatePerDay.
		Mul(contract.ContractAmount).
		Mul(decimal.NewFromInt(int64(daysLate))).
		Round(2)

	contract.AccumulatedPenalties = &penalties
	if err := s.repo.Contract.Update(ctx, contract); err != nil {
		s.logger.Error("persist penalties failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.PenaltyRecalculationResponse{
		ContractID:           contract.ID,
		DaysLate:             daysLate,
		EffectiveEndDate:     effectiveEnd.Format("2006-01-02"),
		AccumulatedPenalties: penalties,
	}, nil
}
