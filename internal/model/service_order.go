package model

import "time"

// Service order types (ordres de service).
const (
	OrderStart        = "start"
	OrderSuspension   = "suspension"
	OrderResumption   = "resumption"
	OrderModification = "modification"
)

// ValidOrderType reports whether s is part of the order type enumeration.
func ValidOrderType(s string) bool {
	switch s {
	case OrderStart, OrderSuspension, OrderResumption, OrderModification:
		return true
	}
	return false
}

// ServiceOrder is an execution directive against a contract: start,
// suspend, resume or modify the works.
type ServiceOrder struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContractID    string    `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	OrderNumber   string    `gorm:"not null;uniqueIndex"                           json:"order_number"`
	OrderType     string    `gorm:"not null"                                       json:"order_type"`
	OrderDate     time.Time `gorm:"not null"                                       json:"order_date"`
	EffectiveDate time.Time `gorm:"not null"                                       json:"effective_date"`
	Description   string    `gorm:"not null"                                       json:"description"`
	IssuedBy      *string   `gorm:"type:uuid"                                      json:"issued_by,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:now()"                         json:"created_at"`
}

// TableName sets the table name.
func (ServiceOrder) TableName() string { return "service_orders" }
