package models

import (
	"strings"
	"time"
)

type Stylist struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:150;not null" json:"last_name"`

	Services  []Service          `gorm:"many2many:stylist_services;" json:"services,omitempty"`
	Schedules []ScheduleTemplate `json:"schedules,omitempty"`
	Shifts    []ShiftOverride    `json:"shifts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Stylist) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
