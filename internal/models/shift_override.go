package models

import "time"

// ShiftOverride assigns a shift to a stylist for a date range. While
// active it replaces the weekly templates for every covered date.
type ShiftOverride struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"index:idx_shift_overrides_lookup,priority:1;not null" json:"stylist_id"`

	StartDate string `gorm:"size:10;index:idx_shift_overrides_lookup,priority:2;not null" json:"start_date"`
	EndDate   string `gorm:"size:10;index:idx_shift_overrides_lookup,priority:3;not null" json:"end_date"`
	Shift     string `gorm:"size:10;not null" json:"shift"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
