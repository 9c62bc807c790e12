package dto

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	StylistID   uint   `json:"stylist_id"`
	StylistName string `json:"stylist_name,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	ServiceID   *uint  `json:"service_id"`
	ServiceName string `json:"service_name,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// AppointmentFromModel flattens an appointment with whatever relations were
// preloaded.
func AppointmentFromModel(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		StartTime:   ap.StartTime,
		Status:      ap.Status,
		StylistID:   ap.StylistID,
		StylistName: ap.Stylist.FullName(),
		ClientName:  ap.Client.FullName(),
		ServiceID:   ap.ServiceID,
		Reason:      ap.Reason,
	}

	if start, err := timeslot.ParseHM(ap.StartTime); err == nil {
		out.EndTime = start.Add(ap.Service.Duration()).String()
	}
	if ap.Service != nil {
		out.ServiceName = ap.Service.Name
	}

	return out
}

func AppointmentsFromModels(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentFromModel(ap))
	}
	return out
}
