package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateAppointmentInput struct {
	UserID        uint
	AppointmentID uint

	StylistID uint
	ServiceID uint

	Date      string
	StartTime string
	Reason    string
}

// UpdateAppointment lets a client move their own pending appointment. The
// appointment's current slot does not count against the new one.
type UpdateAppointment struct {
	repo    domain.Repository
	hours   schedule.Hours
	today   func() time.Time
	locker  lock.Locker
	audit   Auditor
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	hours schedule.Hours,
	today func() time.Time,
	locker lock.Locker,
	audit Auditor,
	m *metrics.Metrics,
	log *slog.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		hours:   hours,
		today:   today,
		locker:  locker,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if err := requireIDs(in.StylistID, in.ServiceID); err != nil {
		return nil, err
	}
	start := normalizeStart(in.StartTime)

	client, err := clientFor(ctx, uc.repo, in.UserID)
	if err != nil {
		return nil, err
	}

	release, err := holdSlot(ctx, uc.locker, uc.log, in.StylistID, in.Date, start)
	if err != nil {
		uc.metrics.Booking(metrics.BookingSlotTaken)
		return nil, err
	}
	defer release()

	var ap *models.Appointment
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.GetAppointmentForClient(ctx, in.AppointmentID, client.ID)
		if err != nil {
			return err
		}
		if err := domain.CanReschedule(domain.Status(current.Status)); err != nil {
			return err
		}

		stylist, err := tx.GetStylist(ctx, in.StylistID)
		if err != nil {
			return err
		}
		service, err := tx.GetService(ctx, in.ServiceID)
		if err != nil {
			return err
		}

		v := domain.NewValidatorFor(tx, uc.hours, uc.today)
		if err := v.Validate(ctx, domain.Candidate{
			ID:        current.ID,
			StylistID: stylist.ID,
			Service:   service,
			Date:      in.Date,
			StartTime: start,
		}); err != nil {
			return err
		}

		if err := domain.Reschedule(current, stylist.ID, &service.ID, in.Date, start); err != nil {
			return err
		}
		current.Stylist = *stylist
		current.Service = service
		current.Reason = in.Reason

		ap = current
		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		uc.metrics.Booking(bookingFailure(err))
		return nil, err
	}

	uc.metrics.Booking(metrics.BookingRescheduled)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"stylist_id": ap.StylistID,
			"date":       ap.Date,
			"start_time": ap.StartTime,
		},
	})

	return ap, nil
}
