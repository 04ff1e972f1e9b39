package dto

import "github.com/shopspring/decimal"

// UpcomingDeadline is one near-term tender submission deadline.
type UpcomingDeadline struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Title     string `json:"title"`
	Deadline  string `json:"deadline"` // RFC 3339
	Type      string `json:"type"`     // always "tender"
}

// DashboardStats is the landing-dashboard snapshot. RecentActivity is
// declared by the API contract but no write path populates it; it is
// always an empty list.
type DashboardStats struct {
	TotalTenders      int64              `json:"total_tenders"`
	ActiveTenders     int64              `json:"active_tenders"`
	TotalContracts    int64              `json:"total_contracts"`
	ActiveContracts   int64              `json:"active_contracts"`
	TotalSuppliers    int64              `json:"total_suppliers"`
	TotalBudget       decimal.Decimal    `json:"total_budget"`
	UpcomingDeadlines []UpcomingDeadline `json:"upcoming_deadlines"`
	RecentActivity    []any              `json:"recent_activity"`
}
