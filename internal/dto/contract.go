package dto

import "github.com/shopspring/decimal"

// CreateContractRequest creates a contract from an awarded bid.
type CreateContractRequest struct {
	ContractNumber           string           `json:"contract_number"            binding:"required,max=100"`
	TenderID                 string           `json:"tender_id"                  binding:"required,uuid"`
	BidID                    string           `json:"bid_id"                     binding:"required,uuid"`
	SupplierID               string           `json:"supplier_id"                binding:"required,uuid"`
	Title                    string           `json:"title"                      binding:"required,max=500"`
	ContractAmount           *decimal.Decimal `json:"contract_amount"            binding:"required"`
	Currency                 *string          `json:"currency"                   binding:"omitempty,max=10"`
	SignatureDate            string           `json:"signature_date"             binding:"required"`
	StartDate                string           `json:"start_date"                 binding:"required"`
	PlannedEndDate           string           `json:"planned_end_date"           binding:"required"`
	ActualEndDate            *string          `json:"actual_end_date"`
	ExecutionDelay           *int             `json:"execution_delay"            binding:"omitempty,min=0"`
	Status                   *string          `json:"status"`
	GuaranteeAmount          *decimal.Decimal `json:"guarantee_amount"`
	GuaranteeType            *string          `json:"guarantee_type"`
	RetentionPercentage      *decimal.Decimal `json:"retention_percentage"`
	AdvancePaymentPercentage *decimal.Decimal `json:"advance_payment_percentage"`
	PenaltyRatePerDay        *decimal.Decimal `json:"penalty_rate_per_day"`
}

// UpdateContractRequest patches a contract. Nil fields are left unchanged.
type UpdateContractRequest struct {
	ContractNumber           *string          `json:"contract_number"            binding:"omitempty,max=100"`
	Title                    *string          `json:"title"                      binding:"omitempty,max=500"`
	ContractAmount           *decimal.Decimal `json:"contract_amount"`
	Currency                 *string          `json:"currency"                   binding:"omitempty,max=10"`
	SignatureDate            *string          `json:"signature_date"`
	StartDate                *string          `json:"start_date"`
	PlannedEndDate           *string          `json:"planned_end_date"`
	ActualEndDate            *string          `json:"actual_end_date"`
	ExecutionDelay           *int             `json:"execution_delay"            binding:"omitempty,min=0"`
	Status                   *string          `json:"status"`
	GuaranteeAmount          *decimal.Decimal `json:"guarantee_amount"`
	GuaranteeType            *string          `json:"guarantee_type"`
	RetentionPercentage      *decimal.Decimal `json:"retention_percentage"`
	AdvancePaymentPercentage *decimal.Decimal `json:"advance_payment_percentage"`
	PenaltyRatePerDay        *decimal.Decimal `json:"penalty_rate_per_day"`
	AccumulatedPenalties     *decimal.Decimal `json:"accumulated_penalties"`
}

// PenaltyRecalculationResponse reports the result of a penalty
// recalculation on a contract.
type PenaltyRecalculationResponse struct {
	ContractID           string          `json:"contract_id"`
	DaysLate             int             `json:"days_late"`
	EffectiveEndDate     string          `json:"effective_end_date"`
	AccumulatedPenalties decimal.Decimal `json:"accumulated_penalties"`
}
