package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository is the read side the resolver needs from storage.
type Repository interface {
	// ActiveOverrides returns active overrides whose range covers date.
	ActiveOverrides(
		ctx context.Context,
		stylistID uint,
		date time.Time,
	) ([]models.ShiftOverride, error)

	ActiveTemplates(
		ctx context.Context,
		stylistID uint,
		weekday Weekday,
	) ([]models.ScheduleTemplate, error)
}

// Source tells where a day's intervals came from.
type Source int

const (
	SourceNone Source = iota
	SourceOverride
	SourceTemplate
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceTemplate:
		return "template"
	}
	return "none"
}

// Day is the resolved working time of one stylist on one date.
type Day struct {
	Source    Source
	Intervals []timeslot.Interval

	// OverrideID is set when Source is SourceOverride.
	OverrideID uint
}

func (d Day) Open() bool {
	return len(d.Intervals) > 0
}

type Resolver struct {
	repo  Repository
	hours Hours
	today func() time.Time
}

func NewResolver(repo Repository, hours Hours, today func() time.Time) *Resolver {
	return &Resolver{
		repo:  repo,
		hours: hours,
		today: today,
	}
}

// Resolve returns the ordered, disjoint open intervals of a stylist on a
// date. A covering override wins outright over the weekly templates.
func (r *Resolver) Resolve(
	ctx context.Context,
	stylistID uint,
	date time.Time,
) (Day, error) {

	if IsSunday(date) || IsPast(date, r.today()) {
		return Day{}, nil
	}

	overrides, err := r.repo.ActiveOverrides(ctx, stylistID, date)
	if err != nil {
		return Day{}, err
	}
	if ov, ok := pickOverride(overrides); ok {
		kind, valid := ParseShiftKind(ov.Shift)
		if !valid {
			kind = ShiftFull
		}
		return Day{
			Source:     SourceOverride,
			Intervals:  kind.Intervals(r.hours),
			OverrideID: ov.ID,
		}, nil
	}

	templates, err := r.repo.ActiveTemplates(ctx, stylistID, WeekdayOf(date))
	if err != nil {
		return Day{}, err
	}
	if len(templates) == 0 {
		return Day{}, nil
	}

	intervals := make([]timeslot.Interval, 0, len(templates))
	for _, t := range templates {
		start, err := timeslot.ParseHM(t.StartTime)
		if err != nil {
			continue
		}
		end, err := timeslot.ParseHM(t.EndTime)
		if err != nil || end <= start {
			continue
		}
		intervals = append(intervals, timeslot.Interval{Start: start, End: end})
	}

	merged := timeslot.Merge(intervals)
	if len(merged) == 0 {
		return Day{}, nil
	}

	return Day{
		Source:    SourceTemplate,
		Intervals: merged,
	}, nil
}

// pickOverride takes the most recently started override, highest ID on ties.
func pickOverride(overrides []models.ShiftOverride) (models.ShiftOverride, bool) {
	var best models.ShiftOverride
	found := false
	for _, ov := range overrides {
		if !found ||
			ov.StartDate > best.StartDate ||
			(ov.StartDate == best.StartDate && ov.ID > best.ID) {
			best = ov
			found = true
		}
	}
	return best, found
}
