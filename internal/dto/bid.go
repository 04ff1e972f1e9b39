package dto

import "github.com/shopspring/decimal"

// CreateBidRequest creates a bid against a tender.
type CreateBidRequest struct {
	TenderID               string           `json:"tender_id"               binding:"required,uuid"`
	SupplierID             string           `json:"supplier_id"             binding:"required,uuid"`
	TechnicalScore         *decimal.Decimal `json:"technical_score"`
	FinancialScore         *decimal.Decimal `json:"financial_score"`
	TotalScore             *decimal.Decimal `json:"total_score"`
	ProposedAmount         *decimal.Decimal `json:"proposed_amount"         binding:"required"`
	Currency               *string          `json:"currency"                binding:"omitempty,max=10"`
	Discount               *decimal.Decimal `json:"discount"`
	FinalAmount            *decimal.Decimal `json:"final_amount"            binding:"required"`
	DeliveryTime           *int             `json:"delivery_time"           binding:"omitempty,min=0"`
	Status                 *string          `json:"status"`
	DisqualificationReason *string          `json:"disqualification_reason"`
	Notes                  *string          `json:"notes"`
}

// UpdateBidRequest patches a bid. Nil fields are left unchanged.
type UpdateBidRequest struct {
	TechnicalScore         *decimal.Decimal `json:"technical_score"`
	FinancialScore         *decimal.Decimal `json:"financial_score"`
	TotalScore             *decimal.Decimal `json:"total_score"`
	ProposedAmount         *decimal.Decimal `json:"proposed_amount"`
	Currency               *string          `json:"currency"                binding:"omitempty,max=10"`
	Discount               *decimal.Decimal `json:"discount"`
	FinalAmount            *decimal.Decimal `json:"final_amount"`
	DeliveryTime           *int             `json:"delivery_time"           binding:"omitempty,min=0"`
	Status                 *string          `json:"status"`
	DisqualificationReason *string          `json:"disqualification_reason"`
	Rank                   *int             `json:"rank"                    binding:"omitempty,min=1"`
	Notes                  *string          `json:"notes"`
}
