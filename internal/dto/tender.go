package dto

import "github.com/shopspring/decimal"

// CreateTenderRequest creates a tender. Date fields accept 2006-01-02 or
// RFC 3339 strings and are coerced in the service layer.
type CreateTenderRequest struct {
	Reference                  string           `json:"reference"                    binding:"required,max=100"`
	Title                      string           `json:"title"                        binding:"required,max=500"`
	Description                *string          `json:"description"`
	MasterAgency               string           `json:"master_agency"                binding:"required,max=300"`
	ProcedureType              string           `json:"procedure_type"               binding:"required,max=100"`
	Category                   string           `json:"category"                     binding:"required,max=100"`
	EstimatedBudget            *decimal.Decimal `json:"estimated_budget"`
	Currency                   *string          `json:"currency"                     binding:"omitempty,max=10"`
	PublicationDate            *string          `json:"publication_date"`
	SubmissionDeadline         string           `json:"submission_deadline"          binding:"required"`
	OpeningDate                *string          `json:"opening_date"`
	Status                     *string          `json:"status"`
	LotsNumber                 *int             `json:"lots_number"                  binding:"omitempty,min=0"`
	ProvisionalGuaranteeAmount *decimal.Decimal `json:"provisional_guarantee_amount"`
	OpeningLocation            *string          `json:"opening_location"`
	ExecutionLocation          *string          `json:"execution_location"`
}

// UpdateTenderRequest patches a tender. Nil fields are left unchanged.
type UpdateTenderRequest struct {
	Reference                  *string          `json:"reference"                    binding:"omitempty,max=100"`
	Title                      *string          `json:"title"                        binding:"omitempty,max=500"`
	Description                *string          `json:"description"`
	MasterAgency               *string          `json:"master_agency"                binding:"omitempty,max=300"`
	ProcedureType              *string          `json:"procedure_type"               binding:"omitempty,max=100"`
	Category                   *string          `json:"category"                     binding:"omitempty,max=100"`
	EstimatedBudget            *decimal.Decimal `json:"estimated_budget"`
	Currency                   *string          `json:"currency"                     binding:"omitempty,max=10"`
	PublicationDate            *string          `json:"publication_date"`
	SubmissionDeadline         *string          `json:"submission_deadline"`
	OpeningDate                *string          `json:"opening_date"`
	Status                     *string          `json:"status"`
	LotsNumber                 *int             `json:"lots_number"                  binding:"omitempty,min=0"`
	ProvisionalGuaranteeAmount *decimal.Decimal `json:"provisional_guarantee_amount"`
	OpeningLocation            *string          `json:"opening_location"`
	ExecutionLocation          *string          `json:"execution_location"`
}
