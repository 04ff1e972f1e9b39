package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice types (décomptes).
const (
	InvoiceAdvance     = "advance"
	InvoiceProvisional = "provisional"
	InvoiceFinal       = "final"
)

// Invoice statuses.
const (
	InvoiceDraft     = "draft"
	InvoiceSubmitted = "submitted"
	InvoiceApproved  = "approved"
	InvoicePaid      = "paid"
	InvoiceRejected  = "rejected"
)

// ValidInvoiceType reports whether s is part of the invoice type
// enumeration.
func ValidInvoiceType(s string) bool {
	switch s {
	case InvoiceAdvance, InvoiceProvisional, InvoiceFinal:
		return true
	}
	return false
}

// ValidInvoiceStatus reports whether s is part of the invoice status
// enumeration.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceDraft, InvoiceSubmitted, InvoiceApproved, InvoicePaid, InvoiceRejected:
		return true
	}
	return false
}

// Invoice is a payment claim against contract progress. Net amount is
// gross minus retention minus penalties.
type Invoice struct {
	ID                 string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContractID         string           `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	InvoiceNumber      string           `gorm:"not null;uniqueIndex"                           json:"invoice_number"`
	InvoiceType        string           `gorm:"not null"                                       json:"invoice_type"`
	InvoiceDate        time.Time        `gorm:"not null"                                       json:"invoice_date"`
	WorkDescription    *string          `json:"work_description,omitempty"`
	GrossAmount        decimal.Decimal  `gorm:"type:numeric(15,2);not null"                    json:"gross_amount"`
	RetentionAmount    *decimal.Decimal `gorm:"type:numeric(15,2);default:0"                   json:"retention_amount,omitempty"`
	PenaltiesAmount    *decimal.Decimal `gorm:"type:numeric(15,2);default:0"                   json:"penalties_amount,omitempty"`
	NetAmount          decimal.Decimal  `gorm:"type:numeric(15,2);not null"                    json:"net_amount"`
	CumulativeAmount   *decimal.Decimal `gorm:"type:numeric(15,2)"                             json:"cumulative_amount,omitempty"`
	ProgressPercentage *decimal.Decimal `gorm:"type:numeric(5,2)"                              json:"progress_percentage,omitempty"`
	Status             string           `gorm:"not null;default:'draft'"                       json:"status"`
	SubmissionDate     *time.Time       `json:"submission_date,omitempty"`
	ApprovalDate       *time.Time       `json:"approval_date,omitempty"`
	PaymentDate        *time.Time       `json:"payment_date,omitempty"`
	ApprovedBy         *string          `gorm:"type:uuid"                                      json:"approved_by,omitempty"`
	CreatedAt          time.Time        `gorm:"not null;default:now()"                         json:"created_at"`
}

// TableName sets the table name.
func (Invoice) TableName() string { return "invoices" }
