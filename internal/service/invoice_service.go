package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

// ── invoice module business errors ──

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceType   = errors.New("invalid invoice type")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrInvoiceNumberExists  = errors.New("invoice number already exists")
)

var oneHundred = decimal.NewFromInt(100)

// InvoiceService is the invoice business interface. On create, retention
// defaults to the contract's retention percentage of the gross amount
// and net defaults to gross minus retention minus penalties; explicit
// values win over both derivations.
type InvoiceService interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*model.Invoice, error)
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	// List narrows to one contract when contractID is non-empty.
	List(ctx context.Context, contractID string) ([]model.Invoice, error)
	Update(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*model.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type invoiceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInvoiceService creates an InvoiceService instance.
func NewInvoiceService(repo *repository.Repository, logger *zap.Logger) InvoiceService {
	return &invoiceService{repo: repo, logger: logger}
}

func (s *invoiceService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*model.Invoice, error) {
	if !model.ValidInvoiceType(req.InvoiceType) {
		return nil, ErrInvalidInvoiceType
	}

	contract, err := s.repo.Contract.GetByID(ctx, req.ContractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		return nil, err
	}
	submissionDate, err := parseDatePtr(req.SubmissionDate)
	if err != nil {
		return nil, err
	}
	approvalDate, err := parseDatePtr(req.ApprovalDate)
	if err != nil {
		return nil, err
	}
	paymentDate, err := parseDatePtr(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	gross := *req.GrossAmount

	retention := decimal.Zero
	if req.RetentionAmount != nil {
		retention = *req.RetentionAmount
	} else if contract.RetentionPercentage != nil {
		retention = gross.Mul(*contract.RetentionPercentage).Div(oneHundred).Round(2)
	}

	penalties := decimal.Zero
	if req.PenaltiesAmount != nil {
		penalties = *req.PenaltiesAmount
	}

	net := gross.Sub(retention).Sub(penalties)
	if req.NetAmount != nil {
		net = *req.NetAmount
	}

	invoice := &model.Invoice{
		ContractID:         req.ContractID,
		InvoiceNumber:      req.InvoiceNumber,
		InvoiceType:        req.InvoiceType,
		InvoiceDate:        invoiceDate,
		WorkDescription:    req.WorkDescription,
		GrossAmount:        gross,
		RetentionAmount:    &retention,
		PenaltiesAmount:    &penalties,
		NetAmount:          net,
		CumulativeAmount:   req.CumulativeAmount,
		ProgressPercentage: req.ProgressPercentage,
		Status:             model.InvoiceDraft,
		SubmissionDate:     submissionDate,
		ApprovalDate:       approvalDate,
		PaymentDate:        paymentDate,
	}
	if req.Status != nil {
		if !model.ValidInvoiceStatus(*req.Status) {
			return nil, ErrInvalidInvoiceStatus
		}
		invoice.Status = *req.Status
	}

	if err := s.repo.Invoice.Create(ctx, invoice); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrInvoiceNumberExists
		}
		s.logger.Error("create invoice failed", zap.Error(err))
		return nil, err
	}

	return invoice, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	invoice, err := s.repo.Invoice.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("get invoice failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) List(ctx context.Context, contractID string) ([]model.Invoice, error) {
	invoices, err := s.repo.Invoice.List(ctx, contractID)
	if err != nil {
		s.logger.Error("list invoices failed", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

func (s *invoiceService) Update(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*model.Invoice, error) {
	invoice, err := s.repo.Invoice.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("get invoice failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.InvoiceType != nil {
		if !model.ValidInvoiceType(*req.InvoiceType) {
			return nil, ErrInvalidInvoiceType
		}
		invoice.InvoiceType = *req.InvoiceType
	}
	if req.InvoiceDate != nil {
		t, err := parseDate(*req.InvoiceDate)
		if err != nil {
			return nil, err
		}
		invoice.InvoiceDate = t
	}
	if req.WorkDescription != nil {
		invoice.WorkDescription = req.WorkDescription
	}
	if req.GrossAmount != nil {
		invoice.GrossAmount = *req.GrossAmount
	}
	if req.RetentionAmount != nil {
		invoice.RetentionAmount = req.RetentionAmount
	}
	if req.PenaltiesAmount != nil {
		invoice.PenaltiesAmount = req.PenaltiesAmount
	}
	if req.NetAmount != nil {
		invoice.NetAmount = *req.NetAmount
	}
	if req.CumulativeAmount != nil {
		invoice.CumulativeAmount = req.CumulativeAmount
	}
	if req.ProgressPercentage != nil {
		invoice.ProgressPercentage = req.ProgressPercentage
	}
	if req.Status != nil {
		if !model.ValidInvoiceStatus(*req.Status) {
			return nil, ErrInvalidInvoiceStatus
		}
		invoice.Status = *req.Status
	}
	if req.SubmissionDate != nil {
		t, err := parseDate(*req.SubmissionDate)
		if err != nil {
			return nil, err
		}
		invoice.SubmissionDate = &t
	}
	if req.ApprovalDate != nil {
		t, err := parseDate(*req.ApprovalDate)
		if err != nil {
			return nil, err
		}
		invoice.ApprovalDate = &t
	}
	if req.PaymentDate != nil {
		t, err := parseDate(*req.PaymentDate)
		if err != nil {
			return nil, err
		}
		invoice.PaymentDate = &t
	}

	if err := s.repo.Invoice.Update(ctx, invoice); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrInvoiceNumberExists
		}
		s.logger.Error("update invoice failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return invoice, nil
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Invoice.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete invoice failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrInvoiceNotFound
	}
	return nil
}
