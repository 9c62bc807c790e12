package appointment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	StylistID uint
	ServiceID uint

	Date      string
	StartTime string
	Reason    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	hours   schedule.Hours
	today   func() time.Time
	locker  lock.Locker
	audit   Auditor
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	hours schedule.Hours,
	today func() time.Time,
	locker lock.Locker,
	audit Auditor,
	m *metrics.Metrics,
	log *slog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		hours:   hours,
		today:   today,
		locker:  locker,
		audit:   audit,
		metrics: m,
		log:     log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := requireIDs(in.StylistID, in.ServiceID); err != nil {
		return nil, err
	}
	start := normalizeStart(in.StartTime)

	// --------------------------------------------------
	// Client (get or create)
	// --------------------------------------------------
	client, err := clientFor(ctx, uc.repo, in.UserID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Slot hold
	// --------------------------------------------------
	release, err := holdSlot(ctx, uc.locker, uc.log, in.StylistID, in.Date, start)
	if err != nil {
		uc.metrics.Booking(metrics.BookingSlotTaken)
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// Validate + insert in one transaction
	// --------------------------------------------------
	var ap *models.Appointment
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
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
			StylistID: stylist.ID,
			Service:   service,
			Date:      in.Date,
			StartTime: start,
		}); err != nil {
			return err
		}

		ap = &models.Appointment{
			ClientID:  client.ID,
			StylistID: stylist.ID,
			Stylist:   *stylist,
			ServiceID: &service.ID,
			Service:   service,
			Date:      in.Date,
			StartTime: start,
			Status:    string(domain.InitialStatus()),
			Reason:    in.Reason,
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		uc.metrics.Booking(bookingFailure(err))
		return nil, err
	}

	uc.metrics.Booking(metrics.BookingCreated)

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
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

// holdSlot takes the cross-instance hold for a slot. A lock backend that
// fails is logged and skipped: the unique index still protects the write.
func holdSlot(
	ctx context.Context,
	locker lock.Locker,
	log *slog.Logger,
	stylistID uint,
	date string,
	start string,
) (func(), error) {

	release, err := locker.Acquire(ctx, lock.SlotKey(stylistID, date, start))
	switch {
	case errors.Is(err, lock.ErrHeld):
		return nil, httperr.ErrField("start_time", "slot_unavailable")
	case err != nil:
		log.Warn("slot hold unavailable", "stylist_id", stylistID, "date", date, "start_time", start, "err", err)
		return func() {}, nil
	}

	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			log.Warn("slot hold release failed", "stylist_id", stylistID, "err", err)
		}
	}, nil
}

func bookingFailure(err error) string {
	if httperr.IsBusiness(err, "slot_unavailable") {
		return metrics.BookingSlotTaken
	}
	return metrics.BookingRejected
}
