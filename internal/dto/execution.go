package dto

import "github.com/shopspring/decimal"

// ── service orders ──

// CreateServiceOrderRequest creates an execution directive on a contract.
type CreateServiceOrderRequest struct {
	ContractID    string `json:"contract_id"    binding:"required,uuid"`
	OrderNumber   string `json:"order_number"   binding:"required,max=100"`
	OrderType     string `json:"order_type"     binding:"required"`
	OrderDate     string `json:"order_date"     binding:"required"`
	EffectiveDate string `json:"effective_date" binding:"required"`
	Description   string `json:"description"    binding:"required"`
}

// UpdateServiceOrderRequest patches a service order.
type UpdateServiceOrderRequest struct {
	OrderNumber   *string `json:"order_number"   binding:"omitempty,max=100"`
	OrderType     *string `json:"order_type"`
	OrderDate     *string `json:"order_date"`
	EffectiveDate *string `json:"effective_date"`
	Description   *string `json:"description"`
}

// ── amendments ──

// CreateAmendmentRequest creates a contract amendment.
type CreateAmendmentRequest struct {
	ContractID       string           `json:"contract_id"       binding:"required,uuid"`
	AmendmentNumber  string           `json:"amendment_number"  binding:"required,max=100"`
	AmendmentDate    string           `json:"amendment_date"    binding:"required"`
	AmendmentType    string           `json:"amendment_type"    binding:"required"`
	Description      string           `json:"description"       binding:"required"`
	AmountAdjustment *decimal.Decimal `json:"amount_adjustment"`
	DelayExtension   *int             `json:"delay_extension"   binding:"omitempty,min=0"`
	NewEndDate       *string          `json:"new_end_date"`
	Justification    *string          `json:"justification"`
}

// UpdateAmendmentRequest patches an amendment.
type UpdateAmendmentRequest struct {
	AmendmentNumber  *string          `json:"amendment_number"  binding:"omitempty,max=100"`
	AmendmentDate    *string          `json:"amendment_date"`
	AmendmentType    *string          `json:"amendment_type"`
	Description      *string          `json:"description"`
	AmountAdjustment *decimal.Decimal `json:"amount_adjustment"`
	DelayExtension   *int             `json:"delay_extension"   binding:"omitempty,min=0"`
	NewEndDate       *string          `json:"new_end_date"`
	Justification    *string          `json:"justification"`
}

// ── invoices ──

// CreateInvoiceRequest creates a payment claim against a contract.
// Retention defaults to the contract's retention percentage of the gross
// amount; net defaults to gross − retention − penalties. Explicit values
// win over the derivations.
type CreateInvoiceRequest struct {
	ContractID         string           `json:"contract_id"         binding:"required,uuid"`
	InvoiceNumber      string           `json:"invoice_number"      binding:"required,max=100"`
	InvoiceType        string           `json:"invoice_type"        binding:"required"`
	InvoiceDate        string           `json:"invoice_date"        binding:"required"`
	WorkDescription    *string          `json:"work_description"`
	GrossAmount        *decimal.Decimal `json:"gross_amount"        binding:"required"`
	RetentionAmount    *decimal.Decimal `json:"retention_amount"`
	PenaltiesAmount    *decimal.Decimal `json:"penalties_amount"`
	NetAmount          *decimal.Decimal `json:"net_amount"`
	CumulativeAmount   *decimal.Decimal `json:"cumulative_amount"`
	ProgressPercentage *decimal.Decimal `json:"progress_percentage"`
	Status             *string          `json:"status"`
	SubmissionDate     *string          `json:"submission_date"`
	ApprovalDate       *string          `json:"approval_date"`
	PaymentDate        *string          `json:"payment_date"`
}

// UpdateInvoiceRequest patches an invoice.
type UpdateInvoiceRequest struct {
	InvoiceNumber      *string          `json:"invoice_number"      binding:"omitempty,max=100"`
	InvoiceType        *string          `json:"invoice_type"`
	InvoiceDate        *string          `json:"invoice_date"`
	WorkDescription    *string          `json:"work_description"`
	GrossAmount        *decimal.Decimal `json:"gross_amount"`
	RetentionAmount    *decimal.Decimal `json:"retention_amount"`
	PenaltiesAmount    *decimal.Decimal `json:"penalties_amount"`
	NetAmount          *decimal.Decimal `json:"net_amount"`
	CumulativeAmount   *decimal.Decimal `json:"cumulative_amount"`
	ProgressPercentage *decimal.Decimal `json:"progress_percentage"`
	Status             *string          `json:"status"`
	SubmissionDate     *string          `json:"submission_date"`
	ApprovalDate       *string          `json:"approval_date"`
	PaymentDate        *string          `json:"payment_date"`
}
