package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

func setupTestContractService() (ContractService, *repository.Repository) {
	repo := newTestRepository()
	return NewContractService(repo, zap.NewNop()), repo
}

// seedAwardChain plants the tender, bid and supplier a contract refers to.
func seedAwardChain(repo *repository.Repository) (tenderID, bidID, supplierID string) {
	ctx := context.Background()
	tender := &model.Tender{Reference: "AO-2026-001", Title: "Voirie", SubmissionDeadline: time.Now()}
	_ = repo.Tender.Create(ctx, tender)
	supplier := &model.Supplier{Name: "Atlas BTP", Status: model.SupplierActive}
	_ = repo.Supplier.Create(ctx, supplier)
	bid := &model.Bid{
		TenderID:       tender.ID,
		SupplierID:     supplier.ID,
		ProposedAmount: decimal.NewFromInt(1000000),
		FinalAmount:    decimal.NewFromInt(1000000),
		Status:         model.BidAwarded,
	}
	_ = repo.Bid.Create(ctx, bid)
	return tender.ID, bid.ID, supplier.ID
}

func newContractRequest(tenderID, bidID, supplierID string) *dto.CreateContractRequest {
	amount := decimal.NewFromInt(1000000)
	rate := decimal.RequireFromString("0.001")
	return &dto.CreateContractRequest{
		ContractNumber:    "M-2026-001",
		TenderID:          tenderID,
		BidID:             bidID,
		SupplierID:        supplierID,
		Title:             "Marché de voirie",
		ContractAmount:    &amount,
		SignatureDate:     "2026-01-10",
		StartDate:         "2026-01-15",
		PlannedEndDate:    "2026-06-30",
		PenaltyRatePerDay: &rate,
	}
}

func TestCreateContractChecksReferences(t *testing.T) {
	svc, repo := setupTestContractService()
	tenderID, bidID, supplierID := seedAwardChain(repo)

	ctx := context.Background()

	req := newContractRequest("missing", bidID, supplierID)
	if _, err := svc.Create(ctx, req, ""); !errors.Is(err, ErrTenderNotFound) {
		t.Errorf("Create() error = %v, want ErrTenderNotFound", err)
	}

	req = newContractRequest(tenderID, "missing", supplierID)
	if _, err := svc.Create(ctx, req, ""); !errors.Is(err, ErrBidNotFound) {
		t.Errorf("Create() error = %v, want ErrBidNotFound", err)
	}

	req = newContractRequest(tenderID, bidID, "missing")
	if _, err := svc.Create(ctx, req, ""); !errors.Is(err, ErrSupplierNotFound) {
		t.Errorf("Create() error = %v, want ErrSupplierNotFound", err)
	}

	contract, err := svc.Create(ctx, newContractRequest(tenderID, bidID, supplierID), "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if contract.Status != model.ContractSigned {
		t.Errorf("status = %q, want %q", contract.Status, model.ContractSigned)
	}
}

func TestCreateContractDuplicateNumber(t *testing.T) {
	svc, repo := setupTestContractService()
	tenderID, bidID, supplierID := seedAwardChain(repo)

	ctx := context.Background()
	if _, err := svc.Create(ctx, newContractRequest(tenderID, bidID, supplierID), ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, newContractRequest(tenderID, bidID, supplierID), ""); !errors.Is(err, ErrContractNumberExists) {
		t.Errorf("Create() error = %v, want ErrContractNumberExists", err)
	}
}

func TestRecalculatePenaltiesLate(t *testing.T) {
	svc, repo := setupTestContractService()
	tenderID, bidID, supplierID := seedAwardChain(repo)

	ctx := context.Background()
	contract, err := svc.Create(ctx, newContractRequest(tenderID, bidID, supplierID), "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Ten days past the planned end at 0.001/day on 1,000,000.
	now := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	result, err := svc.RecalculatePenalties(ctx, contract.ID, now)
	if err != nil {
		t.Fatalf("RecalculatePenalties() error = %v", err)
	}
	if result.DaysLate != 10 {
		t.Errorf("days late = %d, want 10", result.DaysLate)
	}
	if want := decimal.RequireFromString("10000.00"); !result.AccumulatedPenalties.Equal(want) {
		t.Errorf("penalties = %s, want %s", result.AccumulatedPenalties, want)
	}
	if result.EffectiveEndDate != "2026-06-30" {
		t.Errorf("effective end = %s, want 2026-06-30", result.EffectiveEndDate)
	}

	// The result is persisted on the contract.
	stored, err := repo.Contract.GetByID(ctx, contract.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.AccumulatedPenalties == nil || !stored.AccumulatedPenalties.Equal(result.AccumulatedPenalties) {
		t.Errorf("stored penalties = %v, want %s", stored.AccumulatedPenalties, result.AccumulatedPenalties)
	}
}

func TestRecalculatePenaltiesDelayExtension(t *testing.T) {
	svc, repo := setupTestContractService()
	tenderID, bidID, supplierID := seedAwardChain(repo)

	ctx := context.Background()
	contract, err := svc.Create(ctx, newContractRequest(tenderID, bidID, supplierID), "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// An amendment grants five extra days, shifting the effective end.
	extension := 5
	_ = repo.Amendment.Create(ctx, &model.Amendment{
		ContractID:      contract.ID,
		AmendmentNumber: "AV-2026-001",
		AmendmentDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		AmendmentType:   model.AmendmentDelayExtension,
		Description:     "Prolongation de délai",
		DelayExtension:  &extension,
	})

	now := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	result, err := svc.RecalculatePenalties(ctx, contract.ID, now)
	if err != nil {
		t.Fatalf("RecalculatePenalties() error = %v", err)
	}
	if result.EffectiveEndDate != "2026-07-05" {
		t.Errorf("effective end = %s, want 2026-07-05", result.EffectiveEndDate)
	}
	if result.DaysLate != 5 {
		t.Errorf("days late = %d, want 5", result.DaysLate)
	}
	if want := decimal.RequireFromString("5000.00"); !result.AccumulatedPenalties.Equal(want) {
		t.Errorf("penalties = %s, want %s", result.AccumulatedPenalties, want)
	}
}

func TestRecalculatePenaltiesNotLate(t *testing.T) {
	svc, repo := setupTestContractService()
	tenderID, bidID, supplierID := seedAwardChain(repo)

	ctx := context.Background()
	contract, err := svc.Create(ctx, newContractRequest(tenderID, bidID, supplierID), "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.RecalculatePenalties(ctx, contract.ID, now)
	if err != nil {
		t.Fatalf("RecalculatePenalties() error = %v", err)
	}
	if result.DaysLate != 0 {
		t.Errorf("days late = %d, want 0", result.DaysLate)
	}
	if !result.AccumulatedPenalties.IsZero() {
		t.Errorf("penalties = %s, want 0", result.AccumulatedPenalties)
	}
}

func TestRecalculatePenaltiesUsesActualEnd(t *testing.T) {
	svc, repo := setupTestContractService()
	tenderID, bidID, supplierID := seedAwardChain(repo)

	ctx := context.Background()
	req := newContractRequest(tenderID, bidID, supplierID)
	actualEnd := "2026-07-03"
	req.ActualEndDate = &actualEnd
	contract, err := svc.Create(ctx, req, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Works finished on July 3; the clock stops there even long after.
	now := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.RecalculatePenalties(ctx, contract.ID, now)
	if err != nil {
		t.Fatalf("RecalculatePenalties() error = %v", err)
	}
	if result.DaysLate != 3 {
		t.Errorf("days late = %d, want 3", result.DaysLate)
	}
}

func TestRecalculatePenaltiesMissingRate(t *testing.T) {
	svc, repo := setupTestContractService()
	tenderID, bidID, supplierID := seedAwardChain(repo)

	ctx := context.Background()
	req := newContractRequest(tenderID, bidID, supplierID)
	req.PenaltyRatePerDay = nil
	contract, err := svc.Create(ctx, req, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.RecalculatePenalties(ctx, contract.ID, time.Now()); !errors.Is(err, ErrMissingPenaltyRate) {
		t.Errorf("RecalculatePenalties() error = %v, want ErrMissingPenaltyRate", err)
	}
}
