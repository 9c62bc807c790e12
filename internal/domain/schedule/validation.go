package schedule

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ValidateTemplate checks a weekly block before it is stored and returns
// its normalized interval. Rules run in a fixed order so the first
// reported reason is the most specific one.
func ValidateTemplate(t models.ScheduleTemplate, h Hours) (timeslot.Interval, error) {
	day := Weekday(t.Weekday)
	if !day.Valid() {
		return timeslot.Interval{}, httperr.ErrField("weekday", "invalid_weekday")
	}
	if day == Sunday {
		return timeslot.Interval{}, httperr.ErrField("weekday", "closed_on_sunday")
	}

	if strings.TrimSpace(t.StartTime) == "" {
		return timeslot.Interval{}, httperr.ErrField("start_time", "missing_time")
	}
	if strings.TrimSpace(t.EndTime) == "" {
		return timeslot.Interval{}, httperr.ErrField("end_time", "missing_time")
	}

	start, startSec, err := timeslot.Parse(t.StartTime)
	if err != nil {
		return timeslot.Interval{}, httperr.ErrField("start_time", "invalid_time")
	}
	end, endSec, err := timeslot.Parse(t.EndTime)
	if err != nil {
		return timeslot.Interval{}, httperr.ErrField("end_time", "invalid_time")
	}

	if int(end)*60+endSec <= int(start)*60+startSec {
		return timeslot.Interval{}, httperr.ErrField("end_time", "end_before_start")
	}

	if startSec != 0 || !start.Aligned(h.SlotMinutes) {
		return timeslot.Interval{}, httperr.ErrField("start_time", "not_aligned")
	}
	if endSec != 0 || !end.Aligned(h.SlotMinutes) {
		return timeslot.Interval{}, httperr.ErrField("end_time", "not_aligned")
	}

	iv := timeslot.Interval{Start: start, End: end}

	if !h.Business().Contains(iv) {
		return timeslot.Interval{}, httperr.ErrBusiness("outside_opening_hours")
	}
	if iv.Overlaps(h.Lunch()) {
		return timeslot.Interval{}, httperr.ErrBusiness("overlaps_lunch")
	}

	return iv, nil
}

// ValidateOverride checks a date-range shift and returns its parsed range
// and shift kind.
func ValidateOverride(o models.ShiftOverride) (time.Time, time.Time, ShiftKind, error) {
	start, err := time.Parse(models.DateLayout, strings.TrimSpace(o.StartDate))
	if err != nil {
		return time.Time{}, time.Time{}, "", httperr.ErrField("start_date", "invalid_date")
	}
	end, err := time.Parse(models.DateLayout, strings.TrimSpace(o.EndDate))
	if err != nil {
		return time.Time{}, time.Time{}, "", httperr.ErrField("end_date", "invalid_date")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, "", httperr.ErrField("end_date", "end_date_before_start_date")
	}

	kind, ok := ParseShiftKind(o.Shift)
	if !ok {
		return time.Time{}, time.Time{}, "", httperr.ErrField("shift", "invalid_shift")
	}

	return start, end, kind, nil
}
