package dto

// CreateNotificationRequest creates a user-directed alert.
type CreateNotificationRequest struct {
	UserID            *string `json:"user_id"             binding:"omitempty,uuid"`
	Type              string  `json:"type"                binding:"required,max=100"`
	Title             string  `json:"title"               binding:"required,max=300"`
	Message           string  `json:"message"             binding:"required"`
	RelatedEntityType *string `json:"related_entity_type" binding:"omitempty,max=50"`
	RelatedEntityID   *string `json:"related_entity_id"   binding:"omitempty,uuid"`
	Priority          *string `json:"priority"`
}
