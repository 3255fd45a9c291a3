package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OperationStatusPending   = "PENDING"
	OperationStatusCompleted = "COMPLETED"
)

// Close types for an operation item. Exit odds are meaningful only for
// manual closes.
const (
	CloseTypeAutomatic = "AUTOMATIC"
	CloseTypeManual    = "MANUAL"
	CloseTypePartial   = "PARTIAL"
)

// Operation is the decision to trade on a match. One operation per
// match, enforced by the unique index on MatchID.
type Operation struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID uint64 `gorm:"not null;uniqueIndex" json:"match_id"`
	Match   *Match `gorm:"foreignKey:MatchID;constraint:OnDelete:RESTRICT" json:"match,omitempty"`

	Status       string     `gorm:"type:varchar(16);not null;default:PENDING;index" json:"status"`
	RegisteredAt time.Time  `gorm:"type:timestamptz;not null;index" json:"registered_at"`
	CompletedAt  *time.Time `gorm:"type:timestamptz" json:"completed_at,omitempty"`

	Items []OperationItem `gorm:"foreignKey:OperationID" json:"items,omitempty"`
}

func (Operation) TableName() string {
	return "operations"
}

// OperationItem is one trade leg: the unit over which all aggregation
// happens. FinancialResult stays nil until the leg is settled.
type OperationItem struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OperationID uint64    `gorm:"not null;index" json:"operation_id"`
	MarketID    uint64    `gorm:"not null;index" json:"market_id"`
	StrategyID  uint64    `gorm:"not null;index" json:"strategy_id"`
	Market      *Market   `gorm:"foreignKey:MarketID;constraint:OnDelete:RESTRICT" json:"market,omitempty"`
	Strategy    *Strategy `gorm:"foreignKey:StrategyID;constraint:OnDelete:RESTRICT" json:"strategy,omitempty"`

	Stake           decimal.Decimal  `gorm:"type:numeric(20,2);not null" json:"stake"`
	EntryOdds       decimal.Decimal  `gorm:"type:numeric(10,3);not null" json:"entry_odds"`
	CloseType       string           `gorm:"type:varchar(12);not null" json:"close_type"`
	ExitOdds        *decimal.Decimal `gorm:"type:numeric(10,3)" json:"exit_odds,omitempty"`
	FinancialResult *decimal.Decimal `gorm:"type:numeric(20,2)" json:"financial_result,omitempty"`
	ExposureMinutes int              `gorm:"not null;default:0" json:"exposure_minutes"`
	FollowedPlan    bool             `gorm:"not null;default:true" json:"followed_plan"`

	EmotionalState  string  `gorm:"type:varchar(60)" json:"emotional_state"`
	EntryMotivation string  `gorm:"type:varchar(60)" json:"entry_motivation"`
	SelfAssessment  string  `gorm:"type:varchar(60)" json:"self_assessment"`
	ExitNote        *string `gorm:"type:text" json:"exit_note,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (OperationItem) TableName() string {
	return "operation_items"
}

// Settled reports whether the leg has a financial result recorded.
func (i OperationItem) Settled() bool {
	return i.FinancialResult != nil
}
