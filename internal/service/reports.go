package service

import (
	"context"
	"time"

	"betdiary/internal/apperr"
	"betdiary/internal/models"
	"betdiary/internal/report"
	"betdiary/internal/repository"
)

// ReportService fetches the rows the pure report package needs and
// hands back its output. No aggregation logic lives here.
type ReportService struct {
	Repo repository.Repository
}

func (s *ReportService) Dashboard(ctx context.Context, now time.Time) (report.Dashboard, error) {
	if s == nil || s.Repo == nil {
		return report.Dashboard{}, apperr.Internal(nil)
	}
	details, err := s.Repo.ListItemDetails(ctx, repository.ItemDetailParams{SettledOnly: true})
	if err != nil {
		return report.Dashboard{}, err
	}
	return report.BuildDashboard(report.FromDetails(details), now), nil
}

func (s *ReportService) AnnualSummary(ctx context.Context, year int) ([]report.MonthRow, error) {
	if s == nil || s.Repo == nil {
		return nil, apperr.Internal(nil)
	}
	if year < 2000 || year > 2200 {
		return nil, apperr.Validation("year %d out of range", year)
	}
	cash, err := s.Repo.ListAllCashTransactions(ctx)
	if err != nil {
		return nil, err
	}
	details, err := s.Repo.ListItemDetails(ctx, repository.ItemDetailParams{SettledOnly: true})
	if err != nil {
		return nil, err
	}
	return report.AnnualSummary(year, cash, report.FromDetails(details)), nil
}

// RawAggregate returns operations with their items plus the flattened
// detail rows, for clients that aggregate on their side.
type RawAggregate struct {
	Operations []models.Operation      `json:"operations"`
	Items      []repository.ItemDetail `json:"items"`
}

func (s *ReportService) Aggregate(ctx context.Context) (RawAggregate, error) {
	if s == nil || s.Repo == nil {
		return RawAggregate{}, apperr.Internal(nil)
	}
	ops, err := s.Repo.ListOperationsWithItems(ctx)
	if err != nil {
		return RawAggregate{}, err
	}
	details, err := s.Repo.ListItemDetails(ctx, repository.ItemDetailParams{})
	if err != nil {
		return RawAggregate{}, err
	}
	return RawAggregate{Operations: ops, Items: details}, nil
}
