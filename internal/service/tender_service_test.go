package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

func setupTestTenderService() (TenderService, *repository.Repository) {
	repo := newTestRepository()
	return NewTenderService(repo, zap.NewNop()), repo
}

func newTenderRequest(reference string) *dto.CreateTenderRequest {
	return &dto.CreateTenderRequest{
		Reference:          reference,
		Title:              "Réhabilitation de la voirie communale",
		MasterAgency:       "Commune de Rabat",
		ProcedureType:      "appel d'offres ouvert",
		Category:           model.CategoryTravaux,
		SubmissionDeadline: "2026-10-15",
	}
}

func TestCreateTenderDefaults(t *testing.T) {
	svc, _ := setupTestTenderService()

	tender, err := svc.Create(context.Background(), newTenderRequest("AO-2026-001"), "user-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if tender.Status != model.TenderUnderStudy {
		t.Errorf("status = %q, want %q", tender.Status, model.TenderUnderStudy)
	}
	if tender.Currency != "MAD" {
		t.Errorf("currency = %q, want MAD", tender.Currency)
	}
	if tender.CreatedBy == nil || *tender.CreatedBy != "user-1" {
		t.Errorf("created_by = %v, want user-1", tender.CreatedBy)
	}
	if got := tender.SubmissionDeadline.Format("2006-01-02"); got != "2026-10-15" {
		t.Errorf("deadline = %s, want 2026-10-15", got)
	}
}

func TestCreateTenderInvalidStatus(t *testing.T) {
	svc, _ := setupTestTenderService()

	req := newTenderRequest("AO-2026-001")
	bad := "archived"
	req.Status = &bad
	if _, err := svc.Create(context.Background(), req, ""); !errors.Is(err, ErrInvalidTenderStatus) {
		t.Errorf("Create() error = %v, want ErrInvalidTenderStatus", err)
	}
}

func TestCreateTenderInvalidDate(t *testing.T) {
	svc, _ := setupTestTenderService()

	req := newTenderRequest("AO-2026-001")
	req.SubmissionDeadline = "15/10/2026"
	if _, err := svc.Create(context.Background(), req, ""); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Create() error = %v, want ErrInvalidDate", err)
	}
}

func TestCreateTenderDuplicateReference(t *testing.T) {
	svc, _ := setupTestTenderService()

	ctx := context.Background()
	if _, err := svc.Create(ctx, newTenderRequest("AO-2026-001"), ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, newTenderRequest("AO-2026-001"), ""); !errors.Is(err, ErrReferenceExists) {
		t.Errorf("Create() error = %v, want ErrReferenceExists", err)
	}
}

func TestUpdateTenderPartial(t *testing.T) {
	svc, _ := setupTestTenderService()

	ctx := context.Background()
	tender, err := svc.Create(ctx, newTenderRequest("AO-2026-001"), "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	published := model.TenderPublished
	updated, err := svc.Update(ctx, tender.ID, &dto.UpdateTenderRequest{Status: &published})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != model.TenderPublished {
		t.Errorf("status = %q, want %q", updated.Status, model.TenderPublished)
	}
	if updated.Reference != "AO-2026-001" || updated.Currency != "MAD" {
		t.Error("fields not named in the patch changed")
	}
}

func TestUpdateTenderNotFound(t *testing.T) {
	svc, _ := setupTestTenderService()

	title := "nouveau titre"
	if _, err := svc.Update(context.Background(), "missing", &dto.UpdateTenderRequest{Title: &title}); !errors.Is(err, ErrTenderNotFound) {
		t.Errorf("Update() error = %v, want ErrTenderNotFound", err)
	}
}

func TestListTendersByStatus(t *testing.T) {
	svc, _ := setupTestTenderService()

	ctx := context.Background()
	published := model.TenderPublished
	reqA := newTenderRequest("AO-2026-001")
	reqA.Status = &published
	if _, err := svc.Create(ctx, reqA, ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, newTenderRequest("AO-2026-002"), ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.List(ctx, model.TenderPublished)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].Reference != "AO-2026-001" {
		t.Errorf("List(publié) = %d tenders, want the single published one", len(got))
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List(\"\") = %d tenders, want 2", len(all))
	}

	// An unknown status is matched verbatim and finds nothing.
	none, err := svc.List(ctx, "archived")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("List(archived) = %d tenders, want 0", len(none))
	}
}

func TestDeleteTenderNotFound(t *testing.T) {
	svc, _ := setupTestTenderService()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrTenderNotFound) {
		t.Errorf("Delete() error = %v, want ErrTenderNotFound", err)
	}
}
