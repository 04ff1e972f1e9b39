package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract statuses.
const (
	ContractSigned     = "signed"
	ContractInProgress = "in_progress"
	ContractSuspended  = "suspended"
	ContractCompleted  = "completed"
	ContractTerminated = "terminated"
)

// ValidContractStatus reports whether s is part of the contract status
// enumeration.
func ValidContractStatus(s string) bool {
	switch s {
	case ContractSigned, ContractInProgress, ContractSuspended, ContractCompleted, ContractTerminated:
		return true
	}
	return false
}

// Contract is the legal award resulting from an accepted bid (marché).
// Owns service orders, amendments and invoices (deleted in cascade).
type Contract struct {
	ID                       string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContractNumber           string           `gorm:"not null;uniqueIndex"                           json:"contract_number"`
	TenderID                 string           `gorm:"type:uuid;not null"                             json:"tender_id"`
	BidID                    string           `gorm:"type:uuid;not null"                             json:"bid_id"`
	SupplierID               string           `gorm:"type:uuid;not null"                             json:"supplier_id"`
	Title                    string           `gorm:"not null"                                       json:"title"`
	ContractAmount           decimal.Decimal  `gorm:"type:numeric(15,2);not null"                    json:"contract_amount"`
	Currency                 string           `gorm:"not null;default:'MAD'"                         json:"currency"`
	SignatureDate            time.Time        `gorm:"not null"                                       json:"signature_date"`
	StartDate                time.Time        `gorm:"not null"                                       json:"start_date"`
	PlannedEndDate           time.Time        `gorm:"not null"                                       json:"planned_end_date"`
	ActualEndDate            *time.Time       `json:"actual_end_date,omitempty"`
	ExecutionDelay           *int             `json:"execution_delay,omitempty"`
	Status                   string           `gorm:"not null;default:'signed'"                      json:"status"`
	GuaranteeAmount          *decimal.Decimal `gorm:"type:numeric(15,2)"                             json:"guarantee_amount,omitempty"`
	GuaranteeType            *string          `json:"guarantee_type,omitempty"`
	RetentionPercentage      *decimal.Decimal `gorm:"type:numeric(5,2);default:10"                   json:"retention_percentage,omitempty"`
	AdvancePaymentPercentage *decimal.Decimal `gorm:"type:numeric(5,2)"                              json:"advance_payment_percentage,omitempty"`
	PenaltyRatePerDay        *decimal.Decimal `gorm:"type:numeric(5,4);default:0.001"                json:"penalty_rate_per_day,omitempty"`
	AccumulatedPenalties     *decimal.Decimal `gorm:"type:numeric(15,2);default:0"                   json:"accumulated_penalties,omitempty"`
	CreatedBy                *string          `gorm:"type:uuid"                                      json:"created_by,omitempty"`
	CreatedAt                time.Time        `gorm:"not null;default:now()"                         json:"created_at"`
	UpdatedAt                time.Time        `gorm:"not null;default:now()"                         json:"updated_at"`
}

// TableName sets the table name.
func (Contract) TableName() string { return "contracts" }
