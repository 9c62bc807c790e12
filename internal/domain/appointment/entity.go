package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDone)
	ap.CompletedAt = &now
	return nil
}

// Reschedule moves a pending appointment. The caller validates the new
// slot before persisting.
func Reschedule(ap *models.Appointment, stylistID uint, serviceID *uint, date, start string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.StylistID = stylistID
	ap.Stylist = models.Stylist{}
	ap.ServiceID = serviceID
	ap.Service = nil
	ap.Date = date
	ap.StartTime = start
	return nil
}
