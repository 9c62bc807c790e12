package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Candidate is an appointment about to be written.
type Candidate struct {
	// ID is zero for new appointments.
	ID uint

	StylistID uint
	Service   *models.Service
	Date      string
	StartTime string
}

type Validator struct {
	engine  *availability.Engine
	catalog Catalog
	hours   schedule.Hours
	today   func() time.Time
}

func NewValidator(
	engine *availability.Engine,
	catalog Catalog,
	hours schedule.Hours,
	today func() time.Time,
) *Validator {
	return &Validator{
		engine:  engine,
		catalog: catalog,
		hours:   hours,
		today:   today,
	}
}

// NewValidatorFor reads everything through repo, so a validator built on a
// transaction-bound repository sees the transaction's view.
func NewValidatorFor(repo Repository, hours schedule.Hours, today func() time.Time) *Validator {
	return NewValidator(availability.New(repo, hours, today), repo, hours, today)
}

// Validate rejects a candidate with the first failing rule. The earlier
// rules only produce clearer reasons; the final membership test against
// the engine's starts is the one that decides.
func (v *Validator) Validate(ctx context.Context, c Candidate) error {
	if c.StylistID == 0 {
		return httperr.ErrField("stylist_id", "missing_stylist")
	}

	date, err := time.Parse(models.DateLayout, c.Date)
	if err != nil {
		return httperr.ErrField("date", "invalid_date")
	}
	if schedule.IsPast(date, v.today()) {
		return httperr.ErrField("date", "date_in_past")
	}

	start, sec, err := timeslot.Parse(c.StartTime)
	if err != nil {
		return httperr.ErrField("start_time", "invalid_time")
	}
	if sec != 0 || !start.Aligned(v.hours.SlotMinutes) {
		return httperr.ErrField("start_time", "time_not_aligned")
	}

	if schedule.IsSunday(date) {
		return httperr.ErrField("date", "closed_on_sunday")
	}

	duration := c.Service.Duration()
	if timeslot.NewInterval(start, duration).Overlaps(v.hours.Lunch()) {
		return httperr.ErrField("start_time", "overlaps_lunch")
	}

	if c.Service != nil {
		ok, err := v.catalog.StylistOffersService(ctx, c.StylistID, c.Service.ID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrField("service_id", "service_not_offered")
		}
	}

	starts, err := v.engine.AvailableStarts(ctx, availability.Query{
		StylistID:            c.StylistID,
		Date:                 date,
		ServiceDuration:      duration,
		ExcludeAppointmentID: c.ID,
	})
	if err != nil {
		return err
	}
	for _, s := range starts {
		if s == start {
			return nil
		}
	}

	return httperr.ErrField("start_time", "slot_unavailable")
}
