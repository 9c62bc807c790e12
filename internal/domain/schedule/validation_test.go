package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name      string
		weekday   int
		start     string
		end       string
		wantCode  string
		wantField string
	}{
		{name: "morning block", weekday: 0, start: "08:00", end: "13:30"},
		{name: "afternoon block", weekday: 5, start: "15:00", end: "21:00"},
		{name: "seconds zero accepted", weekday: 2, start: "09:00:00", end: "12:30:00"},
		{name: "sunday", weekday: 6, start: "09:00", end: "12:00", wantCode: "closed_on_sunday", wantField: "weekday"},
		{name: "bad weekday", weekday: 9, start: "09:00", end: "12:00", wantCode: "invalid_weekday", wantField: "weekday"},
		{name: "missing start", weekday: 1, start: "", end: "12:00", wantCode: "missing_time", wantField: "start_time"},
		{name: "missing end", weekday: 1, start: "09:00", end: " ", wantCode: "missing_time", wantField: "end_time"},
		{name: "garbage", weekday: 1, start: "nine", end: "12:00", wantCode: "invalid_time", wantField: "start_time"},
		{name: "end before start", weekday: 1, start: "12:00", end: "09:00", wantCode: "end_before_start", wantField: "end_time"},
		{name: "equal", weekday: 1, start: "12:00", end: "12:00", wantCode: "end_before_start", wantField: "end_time"},
		{name: "start misaligned", weekday: 1, start: "09:15", end: "12:00", wantCode: "not_aligned", wantField: "start_time"},
		{name: "end misaligned", weekday: 1, start: "09:00", end: "12:45", wantCode: "not_aligned", wantField: "end_time"},
		{name: "start seconds", weekday: 1, start: "09:00:30", end: "12:00", wantCode: "not_aligned", wantField: "start_time"},
		{name: "too early", weekday: 1, start: "07:30", end: "12:00", wantCode: "outside_opening_hours"},
		{name: "too late", weekday: 1, start: "16:00", end: "21:30", wantCode: "outside_opening_hours"},
		{name: "into lunch", weekday: 1, start: "12:00", end: "14:00", wantCode: "overlaps_lunch"},
		{name: "across lunch", weekday: 1, start: "08:00", end: "21:00", wantCode: "overlaps_lunch"},
		{name: "touching lunch end", weekday: 1, start: "15:00", end: "16:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := ValidateTemplate(models.ScheduleTemplate{
				Weekday:   tt.weekday,
				StartTime: tt.start,
				EndTime:   tt.end,
			}, DefaultHours())

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.False(t, iv.Empty())
				return
			}

			be, ok := httperr.AsBusiness(err)
			require.True(t, ok, "expected business error, got %v", err)
			assert.Equal(t, tt.wantCode, be.Code)
			assert.Equal(t, tt.wantField, be.Field)
		})
	}
}

func TestValidateTemplateNormalizes(t *testing.T) {
	iv, err := ValidateTemplate(models.ScheduleTemplate{Weekday: 0, StartTime: "09:00:00", EndTime: "12:30"}, DefaultHours())
	require.NoError(t, err)
	assert.Equal(t, timeslot.At(9, 0), iv.Start)
	assert.Equal(t, "12:30", iv.End.String())
}

func TestValidateOverride(t *testing.T) {
	_, _, kind, err := ValidateOverride(models.ShiftOverride{StartDate: "2026-10-19", EndDate: "2026-10-19", Shift: "morning"})
	require.NoError(t, err)
	assert.Equal(t, ShiftMorning, kind)

	_, _, _, err = ValidateOverride(models.ShiftOverride{StartDate: "2026-10-20", EndDate: "2026-10-19", Shift: "FULL"})
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "end_date_before_start_date", be.Code)
	assert.Equal(t, "end_date", be.Field)

	_, _, _, err = ValidateOverride(models.ShiftOverride{StartDate: "2026-10-19", EndDate: "2026-10-20", Shift: "NIGHT"})
	assert.True(t, httperr.IsBusiness(err, "invalid_shift"))

	_, _, _, err = ValidateOverride(models.ShiftOverride{StartDate: "19/10/2026", EndDate: "2026-10-20", Shift: "FULL"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestHoursValidate(t *testing.T) {
	require.NoError(t, DefaultHours().Validate())

	h := DefaultHours()
	h.LunchStart = timeslot.At(7, 0)
	assert.Error(t, h.Validate())

	for _, slot := range []int{0, 15, 60} {
		h = DefaultHours()
		h.SlotMinutes = slot
		assert.Error(t, h.Validate(), slot)
	}
}

func TestShiftIntervals(t *testing.T) {
	h := DefaultHours()
	assert.Equal(t, ivs("08:00", "13:30"), ShiftMorning.Intervals(h))
	assert.Equal(t, ivs("15:00", "21:00"), ShiftAfternoon.Intervals(h))
	assert.Equal(t, ivs("08:00", "13:30", "15:00", "21:00"), ShiftFull.Intervals(h))
	assert.Nil(t, ShiftKind("NIGHT").Intervals(h))
}
