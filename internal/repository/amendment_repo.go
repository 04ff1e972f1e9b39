package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/model"
)

// AmendmentRepository is the amendment data-access interface.
type AmendmentRepository interface {
	Create(ctx context.Context, amendment *model.Amendment) error
	GetByID(ctx context.Context, id string) (*model.Amendment, error)
	// List returns all amendments, or only those of contractID when it
	// is non-empty.
	List(ctx context.Context, contractID string) ([]model.Amendment, error)
	Update(ctx context.Context, amendment *model.Amendment) error
	Delete(ctx context.Context, id string) (bool, error)
}

type amendmentRepo struct {
	db *gorm.DB
}

// NewAmendmentRepo creates a GORM-backed AmendmentRepository.
func NewAmendmentRepo(db *gorm.DB) AmendmentRepository {
	return &amendmentRepo{db: db}
}

func (r *amendmentRepo) Create(ctx context.Context, amendment *model.Amendment) error {
	return r.db.WithContext(ctx).Create(amendment).Error
}

func (r *amendmentRepo) GetByID(ctx context.Context, id string) (*model.Amendment, error) {
	var amendment model.Amendment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&amendment).Error; err != nil {
		return nil, err
	}
	return &amendment, nil
}

func (r *amendmentRepo) List(ctx context.Context, contractID string) ([]model.Amendment, error) {
	var amendments []model.Amendment
	db := r.db.WithContext(ctx)
	if contractID != "" {
		db = db.Where("contract_id = ?", contractID)
	}
	if err := db.Order("created_at DESC").Find(&amendments).Error; err != nil {
		return nil, err
	}
	return amendments, nil
}

func (r *amendmentRepo) Update(ctx context.Context, amendment *model.Amendment) error {
	return r.db.WithContext(ctx).Save(amendment).Error
}

func (r *amendmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Amendment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
