package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"betdiary/internal/models"
)

func TestAnnualSummaryChainInvariant(t *testing.T) {
	cash := []models.CashTransaction{
		{TxDate: "2026-01-05", Amount: dec("1000"), Type: models.CashTypeDeposit},
		{TxDate: "2026-06-10", Amount: dec("200"), Type: models.CashTypeWithdrawal},
	}
	items := []Item{
		{Stake: dec("100"), Result: decPtr("50"), MatchDate: "2026-01-20"},
		{Stake: dec("100"), Result: decPtr("-30"), MatchDate: "2026-03-05"},
		{Stake: dec("100"), Result: decPtr("80"), MatchDate: "2026-03-28"},
	}
	rows := AnnualSummary(2026, cash, items)
	if len(rows) != 12 {
		t.Fatalf("rows = %d, want 12", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if !rows[i].OpeningBalance.Equal(rows[i-1].ClosingBalance) {
			t.Fatalf("month %d opening %s != month %d closing %s",
				rows[i].Month, rows[i].OpeningBalance, rows[i-1].Month, rows[i-1].ClosingBalance)
		}
	}
	for _, r := range rows {
		if !r.ClosingBalance.Equal(r.OpeningBalance.Add(r.Profit)) {
			t.Fatalf("month %d: closing %s != opening %s + profit %s",
				r.Month, r.ClosingBalance, r.OpeningBalance, r.Profit)
		}
	}
	// March carries the two settled results.
	if !rows[2].Profit.Equal(dec("50")) {
		t.Fatalf("march profit = %s, want 50", rows[2].Profit)
	}
	// Deposits and withdrawals are reported but never enter the chain.
	if !rows[0].Deposits.Equal(dec("1000")) {
		t.Fatalf("january deposits = %s, want 1000", rows[0].Deposits)
	}
	if !rows[5].Withdrawals.Equal(dec("200")) {
		t.Fatalf("june withdrawals = %s, want 200", rows[5].Withdrawals)
	}
}

func TestAnnualSummaryOpeningFromPriorHistory(t *testing.T) {
	cash := []models.CashTransaction{
		{TxDate: "2025-02-01", Amount: dec("500"), Type: models.CashTypeDeposit},
		{TxDate: "2025-11-15", Amount: dec("100"), Type: models.CashTypeWithdrawal},
	}
	items := []Item{
		{Stake: dec("100"), Result: decPtr("40"), MatchDate: "2025-06-30"},
	}
	rows := AnnualSummary(2026, cash, items)
	// 500 - 100 + 40 = 440
	if !rows[0].OpeningBalance.Equal(dec("440")) {
		t.Fatalf("january opening = %s, want 440", rows[0].OpeningBalance)
	}
}

func TestAnnualSummaryROIGuard(t *testing.T) {
	items := []Item{
		{Stake: dec("50"), Result: decPtr("25"), MatchDate: "2026-01-10"},
	}
	rows := AnnualSummary(2026, nil, items)
	// Zero opening balance: ROI must stay 0 even with profit.
	if !rows[0].ROI.Equal(decimal.Zero) {
		t.Fatalf("january roi = %s, want 0 with zero opening", rows[0].ROI)
	}
	if !rows[0].Profit.Equal(dec("25")) {
		t.Fatalf("january profit = %s, want 25", rows[0].Profit)
	}
}

func TestAnnualSummaryROI(t *testing.T) {
	cash := []models.CashTransaction{
		{TxDate: "2025-12-01", Amount: dec("1000"), Type: models.CashTypeDeposit},
	}
	items := []Item{
		{Stake: dec("100"), Result: decPtr("100"), MatchDate: "2026-01-15"},
	}
	rows := AnnualSummary(2026, cash, items)
	if !rows[0].ROI.Equal(dec("10")) {
		t.Fatalf("january roi = %s, want 10", rows[0].ROI)
	}
}

func TestAnnualSummarySkipsUnsettledAndUndated(t *testing.T) {
	items := []Item{
		{Stake: dec("100"), Result: nil, MatchDate: "2026-01-10"},
		{Stake: dec("100"), Result: decPtr("10"), MatchDate: ""},
		{Stake: dec("100"), Result: decPtr("30"), MatchDate: "2026-01-12"},
	}
	rows := AnnualSummary(2026, nil, items)
	if !rows[0].Profit.Equal(dec("30")) {
		t.Fatalf("january profit = %s, want 30", rows[0].Profit)
	}
	if !rows[0].OpeningBalance.Equal(decimal.Zero) {
		t.Fatalf("opening = %s, want 0", rows[0].OpeningBalance)
	}
}
