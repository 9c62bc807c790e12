package models

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Stored appointment states.
const (
	StatusPending   = "pending"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	StylistID uint    `gorm:"index:idx_appointments_stylist_day,priority:1;not null" json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stylist"`

	// A deleted service leaves the appointment in place with no duration.
	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date      string `gorm:"size:10;index:idx_appointments_stylist_day,priority:2;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Reason string `gorm:"size:255" json:"reason"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
