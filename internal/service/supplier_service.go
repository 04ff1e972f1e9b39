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

// ── supplier module business errors ──

var (
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrInvalidSupplierStatus = errors.New("invalid supplier status")
)

// SupplierService is the supplier business interface.
type SupplierService interface {
	Create(ctx context.Context, req *dto.CreateSupplierRequest) (*model.Supplier, error)
	GetByID(ctx context.Context, id string) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, id string, req *dto.UpdateSupplierRequest) (*model.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type supplierService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSupplierService creates a SupplierService instance.
func NewSupplierService(repo *repository.Repository, logger *zap.Logger) SupplierService {
	return &supplierService{repo: repo, logger: logger}
}

func validSupplierStatus(s string) bool {
	switch s {
	case model.SupplierActive, model.SupplierSuspended, model.SupplierBlacklisted:
		return true
	}
	return false
}

func (s *supplierService) Create(ctx context.Context, req *dto.CreateSupplierRequest) (*model.Supplier, error) {
	supplier := &model.Supplier{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		TaxID:              req.TaxID,
		Address:            req.Address,
		City:               req.City,
		Phone:              req.Phone,
		Email:              req.Email,
		ContactPerson:      req.ContactPerson,
		Category:           req.Category,
		Status:             model.SupplierActive,
		PerformanceScore:   req.PerformanceScore,
	}
	if req.Status != nil {
		if !validSupplierStatus(*req.Status) {
			return nil, ErrInvalidSupplierStatus
		}
		supplier.Status = *req.Status
	}

	if err := s.repo.Supplier.Create(ctx, supplier); err != nil {
		s.logger.Error("create supplier failed", zap.Error(err))
		return nil, err
	}

	return supplier, nil
}

func (s *supplierService) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	supplier, err := s.repo.Supplier.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("get supplier failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	suppliers, err := s.repo.Supplier.List(ctx)
	if err != nil {
		s.logger.Error("list suppliers failed", zap.Error(err))
		return nil, err
	}
	return suppliers, nil
}

func (s *supplierService) Update(ctx context.Context, id string, req *dto.UpdateSupplierRequest) (*model.Supplier, error) {
	supplier, err := s.repo.Supplier.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("get supplier failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.RegistrationNumber != nil {
		supplier.RegistrationNumber = req.RegistrationNumber
	}
	if req.TaxID != nil {
		supplier.TaxID = req.TaxID
	}
	if req.Address != nil {
		supplier.Address = req.Address
	}
	if req.City != nil {
		supplier.City = req.City
	}
	if req.Phone != nil {
		supplier.Phone = req.Phone
	}
	if req.Email != nil {
		supplier.Email = req.Email
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = req.ContactPerson
	}
	if req.Category != nil {
		supplier.Category = req.Category
	}
	if req.Status != nil {
		if !validSupplierStatus(*req.Status) {
			return nil, ErrInvalidSupplierStatus
		}
		supplier.Status = *req.Status
	}
	if req.PerformanceScore != nil {
		supplier.PerformanceScore = req.PerformanceScore
	}

	if err := s.repo.Supplier.Update(ctx, supplier); err != nil {
		s.logger.Error("update supplier failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return supplier, nil
}

func (s *supplierService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Supplier.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete supplier failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrSupplierNotFound
	}
	return nil
}
