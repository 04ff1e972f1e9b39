package dto

import "github.com/shopspring/decimal"

// CreateSupplierRequest creates a supplier.
type CreateSupplierRequest struct {
	Name               string           `json:"name"                binding:"required,max=300"`
	RegistrationNumber *string          `json:"registration_number" binding:"omitempty,max=100"`
	TaxID              *string          `json:"tax_id"              binding:"omitempty,max=100"`
	Address            *string          `json:"address"`
	City               *string          `json:"city"`
	Phone              *string          `json:"phone"               binding:"omitempty,max=50"`
	Email              *string          `json:"email"               binding:"omitempty,email"`
	ContactPerson      *string          `json:"contact_person"`
	Category           *string          `json:"category"`
	Status             *string          `json:"status"`
	PerformanceScore   *decimal.Decimal `json:"performance_score"`
}

// UpdateSupplierRequest patches a supplier. Nil fields are left unchanged.
type UpdateSupplierRequest struct {
	Name               *string          `json:"name"                binding:"omitempty,max=300"`
	RegistrationNumber *string          `json:"registration_number" binding:"omitempty,max=100"`
	TaxID              *string          `json:"tax_id"              binding:"omitempty,max=100"`
	Address            *string          `json:"address"`
	City               *string          `json:"city"`
	Phone              *string          `json:"phone"               binding:"omitempty,max=50"`
	Email              *string          `json:"email"               binding:"omitempty,email"`
	ContactPerson      *string          `json:"contact_person"`
	Category           *string          `json:"category"`
	Status             *string          `json:"status"`
	PerformanceScore   *decimal.Decimal `json:"performance_score"`
}
