package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier statuses.
const (
	SupplierActive      = "active"
	SupplierSuspended   = "suspended"
	SupplierBlacklisted = "blacklisted"
)

// Procurement categories, shared by suppliers and tenders.
const (
	CategoryTravaux     = "travaux"
	CategoryFournitures = "fournitures"
	CategoryServices    = "services"
)

// Supplier is a vendor eligible to bid on tenders.
type Supplier struct {
	ID                 string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name               string           `gorm:"not null"                                       json:"name"`
	RegistrationNumber *string          `gorm:"uniqueIndex"                                    json:"registration_number,omitempty"`
	TaxID              *string          `json:"tax_id,omitempty"`
	Address            *string          `json:"address,omitempty"`
	City               *string          `json:"city,omitempty"`
	Phone              *string          `json:"phone,omitempty"`
	Email              *string          `json:"email,omitempty"`
	ContactPerson      *string          `json:"contact_person,omitempty"`
	Category           *string          `json:"category,omitempty"`
	Status             string           `gorm:"not null;default:'active'"                      json:"status"`
	PerformanceScore   *decimal.Decimal `gorm:"type:numeric(3,2);default:0"                    json:"performance_score,omitempty"`
	CreatedAt          time.Time        `gorm:"not null;default:now()"                         json:"created_at"`
}

// TableName sets the table name.
func (Supplier) TableName() string { return "suppliers" }
