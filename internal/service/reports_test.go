package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"betdiary/internal/apperr"
	"betdiary/internal/models"
)

// The annual summary must fold over the complete cash history. A long
// history (well past any listing page size) still has every prior-year
// deposit land in January's opening balance.
func TestAnnualSummaryFoldsFullCashHistory(t *testing.T) {
	repo := newStubRepo()
	for i := 0; i < 1500; i++ {
		repo.cash = append(repo.cash, models.CashTransaction{
			TxDate: "2025-06-01",
			TxTime: "10:00",
			Amount: decimal.NewFromInt(1),
			Type:   models.CashTypeDeposit,
		})
	}
	svc := &ReportService{Repo: repo}

	rows, err := svc.AnnualSummary(context.Background(), 2026)
	if err != nil {
		t.Fatalf("AnnualSummary: %v", err)
	}
	if !rows[0].OpeningBalance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("january opening = %s, want 1500 (full history)", rows[0].OpeningBalance)
	}
}

func TestAnnualSummaryYearRange(t *testing.T) {
	svc := &ReportService{Repo: newStubRepo()}
	for _, year := range []int{1999, 2201} {
		_, err := svc.AnnualSummary(context.Background(), year)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("year %d: got %v, want validation", year, err)
		}
	}
}
