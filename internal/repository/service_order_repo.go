package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/model"
)

// ServiceOrderRepository is the service-order data-access interface.
type ServiceOrderRepository interface {
	Create(ctx context.Context, order *model.ServiceOrder) error
	GetByID(ctx context.Context, id string) (*model.ServiceOrder, error)
	// List returns all service orders, or only those of contractID
	// when it is non-empty.
	List(ctx context.Context, contractID string) ([]model.ServiceOrder, error)
	Update(ctx context.Context, order *model.ServiceOrder) error
	Delete(ctx context.Context, id string) (bool, error)
}

type serviceOrderRepo struct {
	db *gorm.DB
}

// NewServiceOrderRepo creates a GORM-backed ServiceOrderRepository.
func NewServiceOrderRepo(db *gorm.DB) ServiceOrderRepository {
	return &serviceOrderRepo{db: db}
}

func (r *serviceOrderRepo) Create(ctx context.Context, order *model.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *serviceOrderRepo) GetByID(ctx context.Context, id string) (*model.ServiceOrder, error) {
	var order model.ServiceOrder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *serviceOrderRepo) List(ctx context.Context, contractID string) ([]model.ServiceOrder, error) {
	var orders []model.ServiceOrder
	db := r.db.WithContext(ctx)
	if contractID != "" {
		db = db.Where("contract_id = ?", contractID)
	}
	if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *serviceOrderRepo) Update(ctx context.Context, order *model.ServiceOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *serviceOrderRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ServiceOrder{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
