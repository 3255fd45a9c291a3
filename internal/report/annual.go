package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"betdiary/internal/models"
)

// MonthRow is one line of the annual summary. Balances chain strictly:
// opening(n) = closing(n-1), closing = opening + profit. Deposits and
// withdrawals are reported per month but do not enter the chain.
type MonthRow struct {
	Month          int             `json:"month"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Profit         decimal.Decimal `json:"profit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	ROI            decimal.Decimal `json:"roi"`
	Deposits       decimal.Decimal `json:"deposits"`
	Withdrawals    decimal.Decimal `json:"withdrawals"`
}

// AnnualSummary folds the full cash and trading history into twelve
// monthly rows for the given year. January's opening balance is the
// cumulative balance of everything before the year started: deposits
// minus withdrawals plus trading profit.
func AnnualSummary(year int, cash []models.CashTransaction, items []Item) []MonthRow {
	yearPrefix := fmt.Sprintf("%04d", year)

	opening := decimal.Zero
	profitByMonth := map[string]decimal.Decimal{}
	for _, item := range items {
		if item.Result == nil || yearOf(item.MatchDate) == "" {
			continue
		}
		switch {
		case yearOf(item.MatchDate) < yearPrefix:
			opening = opening.Add(*item.Result)
		case yearOf(item.MatchDate) == yearPrefix:
			m := monthOf(item.MatchDate)
			profitByMonth[m] = profitByMonth[m].Add(*item.Result)
		}
	}

	depositsByMonth := map[string]decimal.Decimal{}
	withdrawalsByMonth := map[string]decimal.Decimal{}
	for _, tx := range cash {
		if yearOf(tx.TxDate) == "" {
			continue
		}
		switch {
		case yearOf(tx.TxDate) < yearPrefix:
			if tx.Type == models.CashTypeWithdrawal {
				opening = opening.Sub(tx.Amount)
			} else {
				opening = opening.Add(tx.Amount)
			}
		case yearOf(tx.TxDate) == yearPrefix:
			m := monthOf(tx.TxDate)
			if tx.Type == models.CashTypeWithdrawal {
				withdrawalsByMonth[m] = withdrawalsByMonth[m].Add(tx.Amount)
			} else {
				depositsByMonth[m] = depositsByMonth[m].Add(tx.Amount)
			}
		}
	}

	rows := make([]MonthRow, 0, 12)
	for month := 1; month <= 12; month++ {
		key := fmt.Sprintf("%04d-%02d", year, month)
		profit := profitByMonth[key]
		closing := opening.Add(profit)
		roi := decimal.Zero
		if opening.IsPositive() {
			roi = profit.Div(opening).Mul(hundred)
		}
		rows = append(rows, MonthRow{
			Month:          month,
			OpeningBalance: opening.Round(2),
			Profit:         profit.Round(2),
			ClosingBalance: closing.Round(2),
			ROI:            roi.Round(2),
			Deposits:       depositsByMonth[key].Round(2),
			Withdrawals:    withdrawalsByMonth[key].Round(2),
		})
		opening = closing
	}
	return rows
}
