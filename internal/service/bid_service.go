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

// ── bid module business errors ──

var (
	ErrBidNotFound      = errors.New("bid not found")
	ErrInvalidBidStatus = errors.New("invalid bid status")
)

// BidService is the bid business interface.
type BidService interface {
	Create(ctx context.Context, req *dto.CreateBidRequest) (*model.Bid, error)
	GetByID(ctx context.Context, id string) (*model.Bid, error)
	// List narrows by tender and/or supplier when the ids are non-empty.
	List(ctx context.Context, tenderID, supplierID string) ([]model.Bid, error)
	Update(ctx context.Context, id string, req *dto.UpdateBidRequest) (*model.Bid, error)
	Delete(ctx context.Context, id string) error
}

type bidService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBidService creates a BidService instance.
func NewBidService(repo *repository.Repository, logger *zap.Logger) BidService {
	return &bidService{repo: repo, logger: logger}
}

func (s *bidService) Create(ctx context.Context, req *dto.CreateBidRequest) (*model.Bid, error) {
	// Referential checks up front so the caller gets a named error
	// instead of a raw FK violation.
	if _, err := s.repo.Tender.GetByID(ctx, req.TenderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Supplier.GetByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	bid := &model.Bid{
		TenderID:               req.TenderID,
		SupplierID:             req.SupplierID,
		TechnicalScore:         req.TechnicalScore,
		FinancialScore:         req.FinancialScore,
		TotalScore:             req.TotalScore,
		ProposedAmount:         *req.ProposedAmount,
		Currency:               "MAD",
		Discount:               req.Discount,
		FinalAmount:            *req.FinalAmount,
		DeliveryTime:           req.DeliveryTime,
		Status:                 model.BidSubmitted,
		DisqualificationReason: req.DisqualificationReason,
		Notes:                  req.Notes,
	}
	if req.Currency != nil {
		bid.Currency = *req.Currency
	}
	if req.Status != nil {
		if !model.ValidBidStatus(*req.Status) {
			return nil, ErrInvalidBidStatus
		}
		bid.Status = *req.Status
	}

	if err := s.repo.Bid.Create(ctx, bid); err != nil {
		s.logger.Error("create bid failed", zap.Error(err))
		return nil, err
	}

	return bid, nil
}

func (s *bidService) GetByID(ctx context.Context, id string) (*model.Bid, error) {
	bid, err := s.repo.Bid.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		s.logger.Error("get bid failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (s *bidService) List(ctx context.Context, tenderID, supplierID string) ([]model.Bid, error) {
	bids, err := s.repo.Bid.List(ctx, tenderID, supplierID)
	if err != nil {
		s.logger.Error("list bids failed", zap.Error(err))
		return nil, err
	}
	return bids, nil
}

func (s *bidService) Update(ctx context.Context, id string, req *dto.UpdateBidRequest) (*model.Bid, error) {
	bid, err := s.repo.Bid.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		s.logger.Error("get bid failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.TechnicalScore != nil {
		bid.TechnicalScore = req.TechnicalScore
	}
	if req.FinancialScore != nil {
		bid.FinancialScore = req.FinancialScore
	}
	if req.TotalScore != nil {
		bid.TotalScore = req.TotalScore
	}
	if req.ProposedAmount != nil {
		bid.ProposedAmount = *req.ProposedAmount
	}
	if req.Currency != nil {
		bid.Currency = *req.Currency
	}
	if req.Discount != nil {
		bid.Discount = req.Discount
	}
	if req.FinalAmount != nil {
		bid.FinalAmount = *req.FinalAmount
	}
	if req.DeliveryTime != nil {
		bid.DeliveryTime = req.DeliveryTime
	}
	if req.Status != nil {
		if !model.ValidBidStatus(*req.Status) {
			return nil, ErrInvalidBidStatus
		}
		bid.Status = *req.Status
	}
	if req.DisqualificationReason != nil {
		bid.DisqualificationReason = req.DisqualificationReason
	}
	if req.Rank != nil {
		bid.Rank = req.Rank
	}
	if req.Notes != nil {
		bid.Notes = req.Notes
	}

	if err := s.repo.Bid.Update(ctx, bid); err != nil {
		s.logger.Error("update bid failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return bid, nil
}

func (s *bidService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Bid.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete bid failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrBidNotFound
	}
	return nil
}
