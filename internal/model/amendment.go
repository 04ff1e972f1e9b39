package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amendment types (avenants).
const (
	AmendmentDelayExtension = "delay_extension"
	AmendmentPriceRevision  = "price_revision"
	AmendmentScopeChange    = "scope_change"
)

// ValidAmendmentType reports whether s is part of the amendment type
// enumeration.
func ValidAmendmentType(s string) bool {
	switch s {
	case AmendmentDelayExtension, AmendmentPriceRevision, AmendmentScopeChange:
		return true
	}
	return false
}

// Amendment is a formal modification of contract terms, carrying an
// amount adjustment and/or a delay extension in days.
type Amendment struct {
	ID               string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContractID       string           `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	AmendmentNumber  string           `gorm:"not null;uniqueIndex"                           json:"amendment_number"`
	AmendmentDate    time.Time        `gorm:"not null"                                       json:"amendment_date"`
	AmendmentType    string           `gorm:"not null"                                       json:"amendment_type"`
	Description      string           `gorm:"not null"                                       json:"description"`
	AmountAdjustment *decimal.Decimal `gorm:"type:numeric(15,2);default:0"                   json:"amount_adjustment,omitempty"`
	DelayExtension   *int             `gorm:"default:0"                                      json:"delay_extension,omitempty"`
	NewEndDate       *time.Time       `json:"new_end_date,omitempty"`
	Justification    *string          `json:"justification,omitempty"`
	ApprovedBy       *string          `gorm:"type:uuid"                                      json:"approved_by,omitempty"`
	CreatedAt        time.Time        `gorm:"not null;default:now()"                         json:"created_at"`
}

// TableName sets the table name.
func (Amendment) TableName() string { return "amendments" }
