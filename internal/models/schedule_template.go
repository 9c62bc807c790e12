package models

import "time"

// ScheduleTemplate is a weekly working block. Weekday follows the salon
// convention: Monday=0 ... Sunday=6.
type ScheduleTemplate struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"index:idx_schedule_templates_lookup,priority:1;not null" json:"stylist_id"`

	Weekday int `gorm:"index:idx_schedule_templates_lookup,priority:2;not null" json:"weekday"`

	StartTime string `gorm:"size:8;not null" json:"start_time"`
	EndTime   string `gorm:"size:8;not null" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
