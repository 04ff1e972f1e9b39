package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid statuses.
const (
	BidSubmitted    = "submitted"
	BidUnderReview  = "under_review"
	BidQualified    = "qualified"
	BidDisqualified = "disqualified"
	BidAwarded      = "awarded"
	BidRejected     = "rejected"
)

// ValidBidStatus reports whether s is part of the bid status enumeration.
func ValidBidStatus(s string) bool {
	switch s {
	case BidSubmitted, BidUnderReview, BidQualified, BidDisqualified, BidAwarded, BidRejected:
		return true
	}
	return false
}

// Bid is a supplier's priced response to a tender. Deleted in cascade
// with its tender.
type Bid struct {
	ID                     string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TenderID               string           `gorm:"type:uuid;not null;index"                       json:"tender_id"`
	SupplierID             string           `gorm:"type:uuid;not null;index"                       json:"supplier_id"`
	SubmissionDate         time.Time        `gorm:"not null;default:now()"                         json:"submission_date"`
	TechnicalScore         *decimal.Decimal `gorm:"type:numeric(5,2)"                              json:"technical_score,omitempty"`
	FinancialScore         *decimal.Decimal `gorm:"type:numeric(5,2)"                              json:"financial_score,omitempty"`
	TotalScore             *decimal.Decimal `gorm:"type:numeric(5,2)"                              json:"total_score,omitempty"`
	ProposedAmount         decimal.Decimal  `gorm:"type:numeric(15,2);not null"                    json:"proposed_amount"`
	Currency               string           `gorm:"not null;default:'MAD'"                         json:"currency"`
	Discount               *decimal.Decimal `gorm:"type:numeric(5,2);default:0"                    json:"discount,omitempty"`
	FinalAmount            decimal.Decimal  `gorm:"type:numeric(15,2);not null"                    json:"final_amount"`
	DeliveryTime           *int             `json:"delivery_time,omitempty"`
	Status                 string           `gorm:"not null;default:'submitted'"                   json:"status"`
	DisqualificationReason *string          `json:"disqualification_reason,omitempty"`
	Rank                   *int             `json:"rank,omitempty"`
	Notes                  *string          `json:"notes,omitempty"`
	CreatedAt              time.Time        `gorm:"not null;default:now()"                         json:"created_at"`
}

// TableName sets the table name.
func (Bid) TableName() string { return "bids" }
