package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

// StylistOption is the shape the booking form expects.
type StylistOption struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

func StylistOptions(stylists []models.Stylist) []StylistOption {
	out := make([]StylistOption, 0, len(stylists))
	for _, s := range stylists {
		out = append(out, StylistOption{ID: s.ID, Nombre: s.FullName()})
	}
	return out
}
