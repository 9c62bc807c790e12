package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	now   func() time.Time
	audit Auditor
}

func NewCancelAppointment(
	repo domain.Repository,
	now func() time.Time,
	audit Auditor,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		now:   now,
		audit: audit,
	}
}

// Execute cancels one of the caller's own appointments. The row stays; only
// its status changes, which frees the slot.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	client, err := clientFor(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForClient(ctx, appointmentID, client.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
