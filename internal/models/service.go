package models

import "time"

const DefaultServiceDuration = 30

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	DurationMin int     `gorm:"not null;default:30" json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Duration falls back to the default slot when the service is gone or has
// no usable duration.
func (s *Service) Duration() int {
	if s == nil || s.DurationMin <= 0 {
		return DefaultServiceDuration
	}
	return s.DurationMin
}
