package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/model"
)

// ContractRepository is the contract data-access interface. Deleting a
// contract removes its service orders, amendments and invoices through
// the FK cascade.
type ContractRepository interface {
	Create(ctx context.Context, contract *model.Contract) error
	GetByID(ctx context.Context, id string) (*model.Contract, error)
	// List returns all contracts, or only those matching status when
	// it is non-empty.
	List(ctx context.Context, status string) ([]model.Contract, error)
	Update(ctx context.Context, contract *model.Contract) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// SumAmounts totals contract_amount across all contracts; zero
	// when the table is empty.
	SumAmounts(ctx context.Context) (decimal.Decimal, error)
}

type contractRepo struct {
	db *gorm.DB
}

// NewContractRepo creates a GORM-backed ContractRepository.
func NewContractRepo(db *gorm.DB) ContractRepository {
	return &contractRepo{db: db}
}

func (r *contractRepo) Create(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *contractRepo) GetByID(ctx context.Context, id string) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contract).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepo) List(ctx context.Context, status string) ([]model.Contract, error) {
	var contracts []model.Contract
	db := r.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("created_at DESC").Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *contractRepo) Update(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *contractRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Contract{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *contractRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Contract{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *contractRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Contract{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *contractRepo) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	// The sum travels as text so the numeric column never passes
	// through a float.
	var sum string
	err := r.db.WithContext(ctx).Model(&model.Contract{}).
		Select("COALESCE(SUM(contract_amount), 0)::text").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(sum)
}
