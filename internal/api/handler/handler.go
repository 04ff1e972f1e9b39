package handler

import (
	"github.com/medlmo/gcpRSM/config"
	"github.com/medlmo/gcpRSM/internal/service"
)

// Handler aggregates every HTTP handler behind one entry point.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Supplier     *SupplierHandler
	Tender       *TenderHandler
	Bid          *BidHandler
	Contract     *ContractHandler
	ServiceOrder *ServiceOrderHandler
	Amendment    *AmendmentHandler
	Invoice      *InvoiceHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
	Export       *ExportHandler
}

// NewHandler builds the Handler aggregate.
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(&cfg.Session, svc.Auth),
		User:         NewUserHandler(svc.User),
		Supplier:     NewSupplierHandler(svc.Supplier),
		Tender:       NewTenderHandler(svc.Tender),
		Bid:          NewBidHandler(svc.Bid),
		Contract:     NewContractHandler(svc.Contract),
		ServiceOrder: NewServiceOrderHandler(svc.ServiceOrder),
		Amendment:    NewAmendmentHandler(svc.Amendment),
		Invoice:      NewInvoiceHandler(svc.Invoice),
		Notification: NewNotificationHandler(svc.Notification),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
		Export:       NewExportHandler(svc.Export),
	}
}
