package model

import "time"

// Notification priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification types.
const (
	NotifDeadlineApproaching = "deadline_approaching"
	NotifPaymentDue          = "payment_due"
	NotifContractExpiring    = "contract_expiring"
	NotifNewTender           = "new_tender"
)

// Notification is a user-directed alert. Deleted in cascade with its user.
type Notification struct {
	ID                string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            *string   `gorm:"type:uuid;index"                                json:"user_id,omitempty"`
	Type              string    `gorm:"not null"                                       json:"type"`
	Title             string    `gorm:"not null"                                       json:"title"`
	Message           string    `gorm:"not null"                                       json:"message"`
	RelatedEntityType *string   `json:"related_entity_type,omitempty"`
	RelatedEntityID   *string   `gorm:"type:uuid"                                      json:"related_entity_id,omitempty"`
	Priority          string    `gorm:"not null;default:'medium'"                      json:"priority"`
	IsRead            bool      `gorm:"not null;default:false"                         json:"is_read"`
	CreatedAt         time.Time `gorm:"not null;default:now()"                         json:"created_at"`
}

// TableName sets the table name.
func (Notification) TableName() string { return "notifications" }
