package models

import "time"

// CustomOption is a user-added enum value for a logical field
// (emotional_state, entry_motivation, ...). Read paths union these with
// the hard-coded defaults; NormValue backs the per-field uniqueness
// check so a custom value cannot shadow a default or another custom.
type CustomOption struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Field     string    `gorm:"type:varchar(40);not null;index;uniqueIndex:ux_custom_options_field_value" json:"field"`
	Value     string    `gorm:"type:varchar(60);not null" json:"value"`
	NormValue string    `gorm:"type:varchar(60);not null;uniqueIndex:ux_custom_options_field_value" json:"-"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (CustomOption) TableName() string {
	return "custom_options"
}
