package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/model"
)

// BidRepository is the bid data-access interface.
type BidRepository interface {
	Create(ctx context.Context, bid *model.Bid) error
	GetByID(ctx context.Context, id string) (*model.Bid, error)
	// List returns all bids, narrowed by tenderID and/or supplierID
	// when non-empty.
	List(ctx context.Context, tenderID, supplierID string) ([]model.Bid, error)
	Update(ctx context.Context, bid *model.Bid) error
	Delete(ctx context.Context, id string) (bool, error)
}

type bidRepo struct {
	db *gorm.DB
}

// NewBidRepo creates a GORM-backed BidRepository.
func NewBidRepo(db *gorm.DB) BidRepository {
	return &bidRepo{db: db}
}

func (r *bidRepo) Create(ctx context.Context, bid *model.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

func (r *bidRepo) GetByID(ctx context.Context, id string) (*model.Bid, error) {
	var bid model.Bid
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *bidRepo) List(ctx context.Context, tenderID, supplierID string) ([]model.Bid, error) {
	var bids []model.Bid
	db := r.db.WithContext(ctx)
	if tenderID != "" {
		db = db.Where("tender_id = ?", tenderID)
	}
	if supplierID != "" {
		db = db.Where("supplier_id = ?", supplierID)
	}
	if err := db.Order("created_at DESC").Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *bidRepo) Update(ctx context.Context, bid *model.Bid) error {
	return r.db.WithContext(ctx).Save(bid).Error
}

func (r *bidRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Bid{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
