package availability

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Bookings is the appointment read side of the engine.
type Bookings interface {
	// ActiveAppointments returns the non-cancelled appointments of a stylist
	// on a date, with Service loaded when it still exists.
	ActiveAppointments(
		ctx context.Context,
		stylistID uint,
		date time.Time,
	) ([]models.Appointment, error)
}

type DayResolver interface {
	Resolve(ctx context.Context, stylistID uint, date time.Time) (schedule.Day, error)
}

// Store is everything the engine reads, as one storage handle.
type Store interface {
	schedule.Repository
	Bookings
}

type Query struct {
	StylistID uint
	Date      time.Time

	// ServiceDuration in minutes; zero or negative means the default slot.
	ServiceDuration int

	// ExcludeAppointmentID lets an appointment being edited keep its slot.
	ExcludeAppointmentID uint
}

// Engine computes bookable start times. It holds no state between calls
// and never writes.
type Engine struct {
	days     DayResolver
	bookings Bookings
	hours    schedule.Hours
	today    func() time.Time
}

func NewEngine(
	days DayResolver,
	bookings Bookings,
	hours schedule.Hours,
	today func() time.Time,
) *Engine {
	return &Engine{
		days:     days,
		bookings: bookings,
		hours:    hours,
		today:    today,
	}
}

// New wires a resolver and an engine over the same store.
func New(store Store, hours schedule.Hours, today func() time.Time) *Engine {
	return NewEngine(schedule.NewResolver(store, hours, today), store, hours, today)
}

// Occupied lists the busy ranges of a stylist on a date. Ranges are not
// merged: conflicts are tested pairwise.
func (e *Engine) Occupied(
	ctx context.Context,
	stylistID uint,
	date time.Time,
	excludeID uint,
) ([]timeslot.Interval, error) {

	appointments, err := e.bookings.ActiveAppointments(ctx, stylistID, date)
	if err != nil {
		return nil, err
	}

	occupied := make([]timeslot.Interval, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Status == models.StatusCancelled {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		start, err := timeslot.ParseHM(ap.StartTime)
		if err != nil {
			continue
		}
		occupied = append(occupied, timeslot.NewInterval(start, ap.Service.Duration()))
	}

	return occupied, nil
}

// AvailableStarts returns the ascending, distinct start times at which a
// service of the requested duration can be booked. Missing stylist or
// date, past dates and Sundays yield an empty list.
func (e *Engine) AvailableStarts(ctx context.Context, q Query) ([]timeslot.Clock, error) {
	empty := []timeslot.Clock{}

	if q.StylistID == 0 || q.Date.IsZero() {
		return empty, nil
	}
	if schedule.IsPast(q.Date, e.today()) || schedule.IsSunday(q.Date) {
		return empty, nil
	}

	duration := q.ServiceDuration
	if duration <= 0 {
		duration = models.DefaultServiceDuration
	}

	day, err := e.days.Resolve(ctx, q.StylistID, q.Date)
	if err != nil {
		return nil, err
	}
	if !day.Open() {
		return empty, nil
	}

	occupied, err := e.Occupied(ctx, q.StylistID, q.Date, q.ExcludeAppointmentID)
	if err != nil {
		return nil, err
	}

	return Starts(day.Intervals, occupied, duration, e.hours), nil
}

// Starts is the pure part of the computation. Each open interval is walked
// on slot boundaries; a candidate survives when the whole service fits in
// the interval and touches neither lunch nor an occupied range. Intervals
// are not assumed to be split at lunch.
func Starts(
	open []timeslot.Interval,
	occupied []timeslot.Interval,
	duration int,
	h schedule.Hours,
) []timeslot.Clock {

	lunch := h.Lunch()
	seen := make(map[timeslot.Clock]struct{})

	for _, iv := range open {
		lastStart := iv.End.Add(-duration)
		if lastStart < iv.Start {
			continue
		}

		for _, start := range timeslot.Walk(iv.Start, lastStart, h.SlotMinutes) {
			candidate := timeslot.NewInterval(start, duration)

			if candidate.Overlaps(lunch) {
				continue
			}
			if timeslot.OverlapsAny(candidate, occupied) {
				continue
			}
			seen[start] = struct{}{}
		}
	}

	out := make([]timeslot.Clock, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })

	return out
}
