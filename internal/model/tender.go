package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tender statuses: the canonical stored vocabulary. Display-language
// translation is a client concern; these exact values are persisted and
// filtered on.
const (
	TenderUnderStudy     = "en cours d'étude"
	TenderPublished      = "publié"
	TenderUnderJudgement = "en cours de jugement"
	TenderAwarded        = "attribué"
	TenderCancelled      = "annulé"
)

// ValidTenderStatus reports whether s is part of the tender status
// enumeration. Transitions between statuses are not enforced.
func ValidTenderStatus(s string) bool {
	switch s {
	case TenderUnderStudy, TenderPublished, TenderUnderJudgement, TenderAwarded, TenderCancelled:
		return true
	}
	return false
}

// Tender is a procurement announcement (appel d'offres).
type Tender struct {
	ID                         string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Reference                  string           `gorm:"not null;uniqueIndex"                           json:"reference"`
	Title                      string           `gorm:"not null"                                       json:"title"`
	Description                *string          `json:"description,omitempty"`
	MasterAgency               string           `gorm:"not null"                                       json:"master_agency"`
	ProcedureType              string           `gorm:"not null"                                       json:"procedure_type"`
	Category                   string           `gorm:"not null"                                       json:"category"`
	EstimatedBudget            *decimal.Decimal `gorm:"type:numeric(15,2)"                             json:"estimated_budget,omitempty"`
	Currency                   string           `gorm:"not null;default:'MAD'"                         json:"currency"`
	PublicationDate            *time.Time       `json:"publication_date,omitempty"`
	SubmissionDeadline         time.Time        `gorm:"not null"                                       json:"submission_deadline"`
	OpeningDate                *time.Time       `json:"opening_date,omitempty"`
	Status                     string           `gorm:"not null;default:'en cours d''étude'"           json:"status"`
	LotsNumber                 *int             `json:"lots_number,omitempty"`
	ProvisionalGuaranteeAmount *decimal.Decimal `gorm:"type:numeric(15,2)"                             json:"provisional_guarantee_amount,omitempty"`
	OpeningLocation            *string          `json:"opening_location,omitempty"`
	ExecutionLocation          *string          `json:"execution_location,omitempty"`
	CreatedBy                  *string          `gorm:"type:uuid"                                      json:"created_by,omitempty"`
	CreatedAt                  time.Time        `gorm:"not null;default:now()"                         json:"created_at"`
	UpdatedAt                  time.Time        `gorm:"not null;default:now()"                         json:"updated_at"`
}

// TableName sets the table name.
func (Tender) TableName() string { return "tenders" }
