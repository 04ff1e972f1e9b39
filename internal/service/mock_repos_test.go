package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

// Map-backed stand-ins for the repository interfaces. They keep the
// same not-found and duplicate-key semantics as the real store so the
// services' error mapping can be exercised without a database.

// ── users ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── suppliers ──

type mockSupplierRepo struct {
	suppliers map[string]*model.Supplier
}

func newMockSupplierRepo() *mockSupplierRepo {
	return &mockSupplierRepo{suppliers: make(map[string]*model.Supplier)}
}

func (m *mockSupplierRepo) Create(_ context.Context, supplier *model.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = fmt.Sprintf("supplier-%d", len(m.suppliers)+1)
	}
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *mockSupplierRepo) GetByID(_ context.Context, id string) (*model.Supplier, error) {
	if s, ok := m.suppliers[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(m.suppliers))
	for _, s := range m.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSupplierRepo) Update(_ context.Context, supplier *model.Supplier) error {
	if _, ok := m.suppliers[supplier.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *mockSupplierRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.suppliers[id]; !ok {
		return false, nil
	}
	delete(m.suppliers, id)
	return true, nil
}

func (m *mockSupplierRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.suppliers)), nil
}

// ── tenders ──

type mockTenderRepo struct {
	tenders map[string]*model.Tender
}

func newMockTenderRepo() *mockTenderRepo {
	return &mockTenderRepo{tenders: make(map[string]*model.Tender)}
}

func (m *mockTenderRepo) Create(_ context.Context, tender *model.Tender) error {
	for _, t := range m.tenders {
		if t.Reference == tender.Reference {
			return gorm.ErrDuplicatedKey
		}
	}
	if tender.ID == "" {
		tender.ID = fmt.Sprintf("tender-%d", len(m.tenders)+1)
	}
	m.tenders[tender.ID] = tender
	return nil
}

func (m *mockTenderRepo) GetByID(_ context.Context, id string) (*model.Tender, error) {
	if t, ok := m.tenders[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTenderRepo) List(_ context.Context, status string) ([]model.Tender, error) {
	out := make([]model.Tender, 0, len(m.tenders))
	for _, t := range m.tenders {
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTenderRepo) Update(_ context.Context, tender *model.Tender) error {
	if _, ok := m.tenders[tender.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.tenders[tender.ID] = tender
	return nil
}

func (m *mockTenderRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.tenders[id]; !ok {
		return false, nil
	}
	delete(m.tenders, id)
	return true, nil
}

func (m *mockTenderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.tenders)), nil
}

func (m *mockTenderRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, t := range m.tenders {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockTenderRepo) UpcomingDeadlines(_ context.Context, from, to time.Time, limit int) ([]model.Tender, error) {
	out := make([]model.Tender, 0)
	for _, t := range m.tenders {
		if t.Status != model.TenderPublished {
			continue
		}
		if t.SubmissionDeadline.Before(from) || t.SubmissionDeadline.After(to) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmissionDeadline.Before(out[j].SubmissionDeadline)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── bids ──

type mockBidRepo struct {
	bids map[string]*model.Bid
}

func newMockBidRepo() *mockBidRepo {
	return &mockBidRepo{bids: make(map[string]*model.Bid)}
}

func (m *mockBidRepo) Create(_ context.Context, bid *model.Bid) error {
	if bid.ID == "" {
		bid.ID = fmt.Sprintf("bid-%d", len(m.bids)+1)
	}
	m.bids[bid.ID] = bid
	return nil
}

func (m *mockBidRepo) GetByID(_ context.Context, id string) (*model.Bid, error) {
	if b, ok := m.bids[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBidRepo) List(_ context.Context, tenderID, supplierID string) ([]model.Bid, error) {
	out := make([]model.Bid, 0, len(m.bids))
	for _, b := range m.bids {
		if tenderID != "" && b.TenderID != tenderID {
			continue
		}
		if supplierID != "" && b.SupplierID != supplierID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (m *mockBidRepo) Update(_ context.Context, bid *model.Bid) error {
	if _, ok := m.bids[bid.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.bids[bid.ID] = bid
	return nil
}

func (m *mockBidRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.bids[id]; !ok {
		return false, nil
	}
	delete(m.bids, id)
	return true, nil
}

// ── contracts ──

type mockContractRepo struct {
	contracts map[string]*model.Contract
}

func newMockContractRepo() *mockContractRepo {
	return &mockContractRepo{contracts: make(map[string]*model.Contract)}
}

func (m *mockContractRepo) Create(_ context.Context, contract *model.Contract) error {
	for _, c := range m.contracts {
		if c.ContractNumber == contract.ContractNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if contract.ID == "" {
		contract.ID = fmt.Sprintf("contract-%d", len(m.contracts)+1)
	}
	m.contracts[contract.ID] = contract
	return nil
}

func (m *mockContractRepo) GetByID(_ context.Context, id string) (*model.Contract, error) {
	if c, ok := m.contracts[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContractRepo) List(_ context.Context, status string) ([]model.Contract, error) {
	out := make([]model.Contract, 0, len(m.contracts))
	for _, c := range m.contracts {
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockContractRepo) Update(_ context.Context, contract *model.Contract) error {
	if _, ok := m.contracts[contract.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.contracts[contract.ID] = contract
	return nil
}

func (m *mockContractRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.contracts[id]; !ok {
		return false, nil
	}
	delete(m.contracts, id)
	return true, nil
}

func (m *mockContractRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.contracts)), nil
}

func (m *mockContractRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, c := range m.contracts {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockContractRepo) SumAmounts(_ context.Context) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, c := range m.contracts {
		sum = sum.Add(c.ContractAmount)
	}
	return sum, nil
}

// ── service orders ──

type mockServiceOrderRepo struct {
	orders map[string]*model.ServiceOrder
}

func newMockServiceOrderRepo() *mockServiceOrderRepo {
	return &mockServiceOrderRepo{orders: make(map[string]*model.ServiceOrder)}
}

func (m *mockServiceOrderRepo) Create(_ context.Context, order *model.ServiceOrder) error {
	for _, o := range m.orders {
		if o.OrderNumber == order.OrderNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(m.orders)+1)
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockServiceOrderRepo) GetByID(_ context.Context, id string) (*model.ServiceOrder, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockServiceOrderRepo) List(_ context.Context, contractID string) ([]model.ServiceOrder, error) {
	out := make([]model.ServiceOrder, 0, len(m.orders))
	for _, o := range m.orders {
		if contractID != "" && o.ContractID != contractID {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockServiceOrderRepo) Update(_ context.Context, order *model.ServiceOrder) error {
	if _, ok := m.orders[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockServiceOrderRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	delete(m.orders, id)
	return true, nil
}

// ── amendments ──

type mockAmendmentRepo struct {
	amendments map[string]*model.Amendment
}

func newMockAmendmentRepo() *mockAmendmentRepo {
	return &mockAmendmentRepo{amendments: make(map[string]*model.Amendment)}
}

func (m *mockAmendmentRepo) Create(_ context.Context, amendment *model.Amendment) error {
	for _, a := range m.amendments {
		if a.AmendmentNumber == amendment.AmendmentNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if amendment.ID == "" {
		amendment.ID = fmt.Sprintf("amendment-%d", len(m.amendments)+1)
	}
	m.amendments[amendment.ID] = amendment
	return nil
}

func (m *mockAmendmentRepo) GetByID(_ context.Context, id string) (*model.Amendment, error) {
	if a, ok := m.amendments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAmendmentRepo) List(_ context.Context, contractID string) ([]model.Amendment, error) {
	out := make([]model.Amendment, 0, len(m.amendments))
	for _, a := range m.amendments {
		if contractID != "" && a.ContractID != contractID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAmendmentRepo) Update(_ context.Context, amendment *model.Amendment) error {
	if _, ok := m.amendments[amendment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.amendments[amendment.ID] = amendment
	return nil
}

func (m *mockAmendmentRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.amendments[id]; !ok {
		return false, nil
	}
	delete(m.amendments, id)
	return true, nil
}

// ── invoices ──

type mockInvoiceRepo struct {
	invoices map[string]*model.Invoice
}

func newMockInvoiceRepo() *mockInvoiceRepo {
	return &mockInvoiceRepo{invoices: make(map[string]*model.Invoice)}
}

func (m *mockInvoiceRepo) Create(_ context.Context, invoice *model.Invoice) error {
	for _, inv := range m.invoices {
		if inv.InvoiceNumber == invoice.InvoiceNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if invoice.ID == "" {
		invoice.ID = fmt.Sprintf("invoice-%d", len(m.invoices)+1)
	}
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *mockInvoiceRepo) GetByID(_ context.Context, id string) (*model.Invoice, error) {
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInvoiceRepo) List(_ context.Context, contractID string) ([]model.Invoice, error) {
	out := make([]model.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		if contractID != "" && inv.ContractID != contractID {
			continue
		}
		out = append(out, *inv)
	}
	return out, nil
}

func (m *mockInvoiceRepo) Update(_ context.Context, invoice *model.Invoice) error {
	if _, ok := m.invoices[invoice.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *mockInvoiceRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.invoices[id]; !ok {
		return false, nil
	}
	delete(m.invoices, id)
	return true, nil
}

// ── notifications ──

type mockNotificationRepo struct {
	notifications map[string]*model.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[string]*model.Notification)}
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if notification.ID == "" {
		notification.ID = fmt.Sprintf("notification-%d", len(m.notifications)+1)
	}
	m.notifications[notification.ID] = notification
	return nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string) ([]model.Notification, error) {
	out := make([]model.Notification, 0, len(m.notifications))
	for _, n := range m.notifications {
		if n.UserID != nil && *n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id string) (bool, error) {
	n, ok := m.notifications[id]
	if !ok {
		return false, nil
	}
	n.IsRead = true
	return true, nil
}

func (m *mockNotificationRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.notifications[id]; !ok {
		return false, nil
	}
	delete(m.notifications, id)
	return true, nil
}

// newTestRepository wires every mock into a Repository aggregate.
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:         newMockUserRepo(),
		Supplier:     newMockSupplierRepo(),
		Tender:       newMockTenderRepo(),
		Bid:          newMockBidRepo(),
		Contract:     newMockContractRepo(),
		ServiceOrder: newMockServiceOrderRepo(),
		Amendment:    newMockAmendmentRepo(),
		Invoice:      newMockInvoiceRepo(),
		Notification: newMockNotificationRepo(),
	}
}
