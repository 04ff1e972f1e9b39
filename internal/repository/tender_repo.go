package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/model"
)

// TenderRepository is the tender data-access interface. Deleting a
// tender removes its bids through the FK cascade.
type TenderRepository interface {
	Create(ctx context.Context, tender *model.Tender) error
	GetByID(ctx context.Context, id string) (*model.Tender, error)
	// List returns all tenders, or only those matching status when it
	// is non-empty.
	List(ctx context.Context, status string) ([]model.Tender, error)
	Update(ctx context.Context, tender *model.Tender) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// UpcomingDeadlines returns published tenders whose submission
	// deadline falls in [from, to], nearest first, capped at limit.
	UpcomingDeadlines(ctx context.Context, from, to time.Time, limit int) ([]model.Tender, error)
}

type tenderRepo struct {
	db *gorm.DB
}

// NewTenderRepo creates a GORM-backed TenderRepository.
func NewTenderRepo(db *gorm.DB) TenderRepository {
	return &tenderRepo{db: db}
}

func (r *tenderRepo) Create(ctx context.Context, tender *model.Tender) error {
	return r.db.WithContext(ctx).Create(tender).Error
}

func (r *tenderRepo) GetByID(ctx context.Context, id string) (*model.Tender, error) {
	var tender model.Tender
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tender).Error; err != nil {
		return nil, err
	}
	return &tender, nil
}

func (r *tenderRepo) List(ctx context.Context, status string) ([]model.Tender, error) {
	var tenders []model.Tender
	db := r.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("created_at DESC").Find(&tenders).Error; err != nil {
		return nil, err
	}
	return tenders, nil
}

func (r *tenderRepo) Update(ctx context.Context, tender *model.Tender) error {
	return r.db.WithContext(ctx).Save(tender).Error
}

func (r *tenderRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tender{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *tenderRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Tender{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *tenderRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Tender{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *tenderRepo) UpcomingDeadlines(ctx context.Context, from, to time.Time, limit int) ([]model.Tender, error) {
	var tenders []model.Tender
	err := r.db.WithContext(ctx).
		Where("status = ?", model.TenderPublished).
		Where("submission_deadline >= ? AND submission_deadline <= ?", from, to).
		Order("submission_deadline ASC").
		Limit(limit).
		Find(&tenders).Error
	if err != nil {
		return nil, err
	}
	return tenders, nil
}
