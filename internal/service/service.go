package service

import (
	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/config"
	"github.com/medlmo/gcpRSM/internal/repository"
	"github.com/medlmo/gcpRSM/pkg/session"
)

// Service aggregates every business-logic interface behind one entry
// point, wired once at startup.
type Service struct {
	Auth         AuthService
	User         UserService
	Supplier     SupplierService
	Tender       TenderService
	Bid          BidService
	Contract     ContractService
	ServiceOrder ServiceOrderService
	Amendment    AmendmentService
	Invoice      InvoiceService
	Notification NotificationService
	Dashboard    DashboardService
	Export       ExportService
}

// NewService builds the Service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	sessions session.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, sessions, logger),
		User:         NewUserService(cfg, repo, logger),
		Supplier:     NewSupplierService(repo, logger),
		Tender:       NewTenderService(repo, logger),
		Bid:          NewBidService(repo, logger),
		Contract:     NewContractService(repo, logger),
		ServiceOrder: NewServiceOrderService(repo, logger),
		Amendment:    NewAmendmentService(repo, logger),
		Invoice:      NewInvoiceService(repo, logger),
		Notification: NewNotificationService(repo, logger),
		Dashboard:    NewDashboardService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
