package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

type GetAvailabilityInput struct {
	UserID    uint
	StylistID uint
	ServiceID uint
	Date      time.Time

	// ExcludeAppointmentID is honoured only for the caller's own appointment.
	ExcludeAppointmentID uint
}

type GetAvailability struct {
	repo    domain.Repository
	engine  *availability.Engine
	metrics *metrics.Metrics
}

func NewGetAvailability(
	repo domain.Repository,
	hours schedule.Hours,
	today func() time.Time,
	m *metrics.Metrics,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		engine:  availability.New(repo, hours, today),
		metrics: m,
	}
}

// Execute returns the bookable "HH:MM" starts. Unknown stylist or service
// is an error; every other degenerate input yields an empty list.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]string, error) {

	stylist, err := uc.repo.GetStylist(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	starts, err := uc.engine.AvailableStarts(ctx, availability.Query{
		StylistID:            stylist.ID,
		Date:                 in.Date,
		ServiceDuration:      service.Duration(),
		ExcludeAppointmentID: uc.ownAppointment(ctx, in),
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveAvailability(len(starts))

	return timeslot.Strings(starts), nil
}

func (uc *GetAvailability) ownAppointment(ctx context.Context, in GetAvailabilityInput) uint {
	if in.ExcludeAppointmentID == 0 || in.UserID == 0 {
		return 0
	}

	ap, err := uc.repo.GetAppointment(ctx, in.ExcludeAppointmentID)
	if err != nil {
		return 0
	}
	if ap.Client.UserID == nil || *ap.Client.UserID != in.UserID {
		return 0
	}
	return ap.ID
}
