package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/model"
)

// InvoiceRepository is the invoice data-access interface.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	// List returns all invoices, or only those of contractID when it
	// is non-empty.
	List(ctx context.Context, contractID string) ([]model.Invoice, error)
	Update(ctx context.Context, invoice *model.Invoice) error
	Delete(ctx context.Context, id string) (bool, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

// NewInvoiceRepo creates a GORM-backed InvoiceRepository.
func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepo) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) List(ctx context.Context, contractID string) ([]model.Invoice, error) {
	var invoices []model.Invoice
	db := r.db.WithContext(ctx)
	if contractID != "" {
		db = db.Where("contract_id = ?", contractID)
	}
	if err := db.Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepo) Update(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Invoice{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
