package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CashTypeDeposit    = "DEPOSIT"
	CashTypeWithdrawal = "WITHDRAWAL"
)

// CashTransaction is a bankroll movement independent of trading results.
type CashTransaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	TxDate      string          `gorm:"type:date;not null;index" json:"tx_date"`
	TxTime      string          `gorm:"type:varchar(5);not null" json:"tx_time"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(12);not null;index" json:"type"`
	Description *string         `gorm:"type:varchar(200)" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (CashTransaction) TableName() string {
	return "cash_transactions"
}
