package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

func setupTestDashboardService() (DashboardService, *repository.Repository) {
	repo := newTestRepository()
	return NewDashboardService(repo, zap.NewNop()), repo
}

func seedDashboardTender(repo *repository.Repository, reference, status string, deadline time.Time) *model.Tender {
	t := &model.Tender{
		Reference:          reference,
		Title:              "AO " + reference,
		Status:             status,
		SubmissionDeadline: deadline,
	}
	_ = repo.Tender.Create(context.Background(), t)
	return t
}

func TestGetStatsEmptyStore(t *testing.T) {
	svc, _ := setupTestDashboardService()

	stats, err := svc.GetStats(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalTenders != 0 || stats.TotalContracts != 0 || stats.TotalSuppliers != 0 {
		t.Error("counts non-zero on an empty store")
	}
	if !stats.TotalBudget.IsZero() {
		t.Errorf("total budget = %s, want 0", stats.TotalBudget)
	}
	if stats.UpcomingDeadlines == nil || len(stats.UpcomingDeadlines) != 0 {
		t.Errorf("upcoming deadlines = %v, want an empty slice", stats.UpcomingDeadlines)
	}
	if stats.RecentActivity == nil || len(stats.RecentActivity) != 0 {
		t.Errorf("recent activity = %v, want an empty slice", stats.RecentActivity)
	}
}

func TestGetStatsCountsAndBudget(t *testing.T) {
	svc, repo := setupTestDashboardService()
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	seedDashboardTender(repo, "AO-2026-001", model.TenderPublished, now.AddDate(0, 1, 0))
	seedDashboardTender(repo, "AO-2026-002", model.TenderUnderStudy, now.AddDate(0, 2, 0))

	_ = repo.Supplier.Create(ctx, &model.Supplier{Name: "Atlas BTP", Status: model.SupplierActive})

	for i, amount := range []string{"150000.25", "849999.75"} {
		status := model.ContractInProgress
		if i == 1 {
			status = model.ContractCompleted
		}
		_ = repo.Contract.Create(ctx, &model.Contract{
			ContractNumber: fmt.Sprintf("M-2026-%03d", i+1),
			ContractAmount: decimal.RequireFromString(amount),
			Status:         status,
		})
	}

	stats, err := svc.GetStats(ctx, now)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalTenders != 2 || stats.ActiveTenders != 1 {
		t.Errorf("tenders = %d/%d active, want 2/1", stats.TotalTenders, stats.ActiveTenders)
	}
	if stats.TotalContracts != 2 || stats.ActiveContracts != 1 {
		t.Errorf("contracts = %d/%d active, want 2/1", stats.TotalContracts, stats.ActiveContracts)
	}
	if stats.TotalSuppliers != 1 {
		t.Errorf("suppliers = %d, want 1", stats.TotalSuppliers)
	}
	if want := decimal.RequireFromString("1000000.00"); !stats.TotalBudget.Equal(want) {
		t.Errorf("total budget = %s, want %s", stats.TotalBudget, want)
	}
}

func TestGetStatsDeadlineWindow(t *testing.T) {
	svc, repo := setupTestDashboardService()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Both window bounds are inclusive: exactly now and exactly seven
	// days out both count.
	atNow := seedDashboardTender(repo, "AO-NOW", model.TenderPublished, now)
	atEdge := seedDashboardTender(repo, "AO-EDGE", model.TenderPublished, now.Add(7*24*time.Hour))
	seedDashboardTender(repo, "AO-PAST", model.TenderPublished, now.Add(-time.Hour))
	seedDashboardTender(repo, "AO-FAR", model.TenderPublished, now.Add(7*24*time.Hour+time.Minute))
	seedDashboardTender(repo, "AO-DRAFT", model.TenderUnderStudy, now.Add(24*time.Hour))

	stats, err := svc.GetStats(context.Background(), now)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if len(stats.UpcomingDeadlines) != 2 {
		t.Fatalf("deadlines = %d, want 2", len(stats.UpcomingDeadlines))
	}
	if stats.UpcomingDeadlines[0].ID != atNow.ID || stats.UpcomingDeadlines[1].ID != atEdge.ID {
		t.Error("deadlines not ordered nearest first")
	}
	if stats.UpcomingDeadlines[0].Type != "tender" {
		t.Errorf("deadline type = %q, want tender", stats.UpcomingDeadlines[0].Type)
	}
}

func TestGetStatsDeadlineCap(t *testing.T) {
	svc, repo := setupTestDashboardService()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		seedDashboardTender(repo, fmt.Sprintf("AO-%d", i), model.TenderPublished, now.Add(time.Duration(i+1)*time.Hour))
	}

	stats, err := svc.GetStats(context.Background(), now)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if len(stats.UpcomingDeadlines) != 5 {
		t.Errorf("deadlines = %d, want the cap of 5", len(stats.UpcomingDeadlines))
	}
	// The nearest five survive the cap.
	if stats.UpcomingDeadlines[0].Reference != "AO-0" || stats.UpcomingDeadlines[4].Reference != "AO-4" {
		t.Error("cap did not keep the nearest deadlines")
	}
}
