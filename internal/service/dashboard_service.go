package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/model"
	"github.com/medlmo/gcpRSM/internal/repository"
)

const (
	deadlineWindow = 7 * 24 * time.Hour
	deadlineLimit  = 5
)

// DashboardService computes the landing-dashboard snapshot. Every call
// recomputes from the current store state; nothing is cached.
type DashboardService interface {
	GetStats(ctx context.Context, now time.Time) (*dto.DashboardStats, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService creates a DashboardService instance.
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) GetStats(ctx context.Context, now time.Time) (*dto.DashboardStats, error) {
	totalTenders, err := s.repo.Tender.Count(ctx)
	if err != nil {
		s.logger.Error("count tenders failed", zap.Error(err))
		return nil, err
	}
	activeTenders, err := s.repo.Tender.CountByStatus(ctx, model.TenderPublished)
	if err != nil {
		s.logger.Error("count published tenders failed", zap.Error(err))
		return nil, err
	}
	totalContracts, err := s.repo.Contract.Count(ctx)
	if err != nil {
		s.logger.Error("count contracts failed", zap.Error(err))
		return nil, err
	}
	activeContracts, err := s.repo.Contract.CountByStatus(ctx, model.ContractInProgress)
	if err != nil {
		s.logger.Error("count in-progress contracts failed", zap.Error(err))
		return nil, err
	}
	totalSuppliers, err := s.repo.Supplier.Count(ctx)
	if err != nil {
		s.logger.Error("count suppliers failed", zap.Error(err))
		return nil, err
	}
	totalBudget, err := s.repo.Contract.SumAmounts(ctx)
	if err != nil {
		s.logger.Error("sum contract amounts failed", zap.Error(err))
		return nil, err
	}

	// Published tenders closing within the next seven days, both bounds
	// inclusive, nearest first.
	tenders, err := s.repo.Tender.UpcomingDeadlines(ctx, now, now.Add(deadlineWindow), deadlineLimit)
	if err != nil {
		s.logger.Error("upcoming deadlines query failed", zap.Error(err))
		return nil, err
	}

	deadlines := make([]dto.UpcomingDeadline, 0, len(tenders))
	for _, t := range tenders {
		deadlines = append(deadlines, dto.UpcomingDeadline{
			ID:        t.ID,
			Reference: t.Reference,
			Title:     t.Title,
			Deadline:  t.SubmissionDeadline.Format(time.RFC3339),
			Type:      "tender",
		})
	}

	return &dto.DashboardStats{
		TotalTenders:      totalTenders,
		ActiveTenders:     activeTenders,
		TotalContracts:    totalContracts,
		ActiveContracts:   activeContracts,
		TotalSuppliers:    totalSuppliers,
		TotalBudget:       totalBudget,
		UpcomingDeadlines: deadlines,
		RecentActivity:    []any{},
	}, nil
}
