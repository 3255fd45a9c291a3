package models

import "time"

// Reference entities. Each carries a normalized shadow column (NormName)
// with a unique index so duplicate checks are DB-enforced rather than
// client-side.

type Team struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	NormName  string    `gorm:"type:varchar(120);not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

type Competition struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	NormName  string    `gorm:"type:varchar(120);not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Competition) TableName() string {
	return "competitions"
}

type Market struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	NormName  string    `gorm:"type:varchar(120);not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Market) TableName() string {
	return "markets"
}

// Strategy name uniqueness is scoped to its market.
type Strategy struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	NormName  string    `gorm:"type:varchar(120);not null;uniqueIndex:ux_strategies_norm_name_market" json:"-"`
	MarketID  uint64    `gorm:"not null;index;uniqueIndex:ux_strategies_norm_name_market" json:"market_id"`
	Market    *Market   `gorm:"foreignKey:MarketID;constraint:OnDelete:RESTRICT" json:"market,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Strategy) TableName() string {
	return "strategies"
}
