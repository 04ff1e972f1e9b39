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

// ── service order module business errors ──

var (
	ErrServiceOrderNotFound = errors.New("service order not found")
	ErrInvalidOrderType     = errors.New("invalid service order type")
	ErrOrderNumberExists    = errors.New("service order number already exists")
)

// ServiceOrderService is the service-order business interface.
type ServiceOrderService interface {
	Create(ctx context.Context, req *dto.CreateServiceOrderRequest, issuedBy string) (*model.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (*model.ServiceOrder, error)
	// List narrows to one contract when contractID is non-empty.
	List(ctx context.Context, contractID string) ([]model.ServiceOrder, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceOrderRequest) (*model.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}

type serviceOrderService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewServiceOrderService creates a ServiceOrderService instance.
func NewServiceOrderService(repo *repository.Repository, logger *zap.Logger) ServiceOrderService {
	return &serviceOrderService{repo: repo, logger: logger}
}

func (s *serviceOrderService) Create(ctx context.Context, req *dto.CreateServiceOrderRequest, issuedBy string) (*model.ServiceOrder, error) {
	if !model.ValidOrderType(req.OrderType) {
		return nil, ErrInvalidOrderType
	}
	if _, err := s.repo.Contract.GetByID(ctx, req.ContractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		return nil, err
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	order := &model.ServiceOrder{
		ContractID:    req.ContractID,
		OrderNumber:   req.OrderNumber,
		OrderType:     req.OrderType,
		OrderDate:     orderDate,
		EffectiveDate: effectiveDate,
		Description:   req.Description,
	}
	if issuedBy != "" {
		order.IssuedBy = &issuedBy
	}

	if err := s.repo.ServiceOrder.Create(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrOrderNumberExists
		}
		s.logger.Error("create service order failed", zap.Error(err))
		return nil, err
	}

	return order, nil
}

func (s *serviceOrderService) GetByID(ctx context.Context, id string) (*model.ServiceOrder, error) {
	order, err := s.repo.ServiceOrder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceOrderNotFound
		}
		s.logger.Error("get service order failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *serviceOrderService) List(ctx context.Context, contractID string) ([]model.ServiceOrder, error) {
	orders, err := s.repo.ServiceOrder.List(ctx, contractID)
	if err != nil {
		s.logger.Error("list service orders failed", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *serviceOrderService) Update(ctx context.Context, id string, req *dto.UpdateServiceOrderRequest) (*model.ServiceOrder, error) {
	order, err := s.repo.ServiceOrder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceOrderNotFound
		}
		s.logger.Error("get service order failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.OrderNumber != nil {
		order.OrderNumber = *req.OrderNumber
	}
	if req.OrderType != nil {
		if !model.ValidOrderType(*req.OrderType) {
			return nil, ErrInvalidOrderType
		}
		order.OrderType = *req.OrderType
	}
	if req.OrderDate != nil {
		t, err := parseDate(*req.OrderDate)
		if err != nil {
			return nil, err
		}
		order.OrderDate = t
	}
	if req.EffectiveDate != nil {
		t, err := parseDate(*req.EffectiveDate)
		if err != nil {
			return nil, err
		}
		order.EffectiveDate = t
	}
	if req.Description != nil {
		order.Description = *req.Description
	}

	if err := s.repo.ServiceOrder.Update(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrOrderNumberExists
		}
		s.logger.Error("update service order failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return order, nil
}

func (s *serviceOrderService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.ServiceOrder.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete service order failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrServiceOrderNotFound
	}
	return nil
}
