package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface behind one entry
// point, wired once at startup.
type Repository struct {
	User         UserRepository
	Supplier     SupplierRepository
	Tender       TenderRepository
	Bid          BidRepository
	Contract     ContractRepository
	ServiceOrder ServiceOrderRepository
	Amendment    AmendmentRepository
	Invoice      InvoiceRepository
	Notification NotificationRepository
}

// NewRepository builds the Repository aggregate on a shared *gorm.DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Supplier:     NewSupplierRepo(db),
		Tender:       NewTenderRepo(db),
		Bid:          NewBidRepo(db),
		Contract:     NewContractRepo(db),
		ServiceOrder: NewServiceOrderRepo(db),
		Amendment:    NewAmendmentRepo(db),
		Invoice:      NewInvoiceRepo(db),
		Notification: NewNotificationRepo(db),
	}
}
