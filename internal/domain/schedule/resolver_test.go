package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeRepo struct {
	overrides []models.ShiftOverride
	templates []models.ScheduleTemplate
	err       error

	templateCalls int
}

func (f *fakeRepo) ActiveOverrides(_ context.Context, stylistID uint, date time.Time) ([]models.ShiftOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := date.Format(models.DateLayout)
	var out []models.ShiftOverride
	for _, o := range f.overrides {
		if o.StylistID == stylistID && o.Active && o.StartDate <= key && o.EndDate >= key {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) ActiveTemplates(_ context.Context, stylistID uint, weekday Weekday) ([]models.ScheduleTemplate, error) {
	f.templateCalls++
	var out []models.ScheduleTemplate
	for _, t := range f.templates {
		if t.StylistID == stylistID && t.Active && Weekday(t.Weekday) == weekday {
			out = append(out, t)
		}
	}
	return out, nil
}

// 2026-10-19 is a Monday.
var (
	today  = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
)

func fixedToday() time.Time { return today }

func ivs(pairs ...string) []timeslot.Interval {
	var out []timeslot.Interval
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, timeslot.Interval{
			Start: timeslot.MustParse(pairs[i]),
			End:   timeslot.MustParse(pairs[i+1]),
		})
	}
	return out
}

func TestResolveTemplatesAreMerged(t *testing.T) {
	repo := &fakeRepo{templates: []models.ScheduleTemplate{
		{ID: 1, StylistID: 7, Weekday: 0, StartTime: "10:00", EndTime: "12:00", Active: true},
		{ID: 2, StylistID: 7, Weekday: 0, StartTime: "08:00", EndTime: "10:00", Active: true},
		{ID: 3, StylistID: 7, Weekday: 0, StartTime: "16:00", EndTime: "20:00", Active: true},
		{ID: 4, StylistID: 7, Weekday: 0, StartTime: "18:00", EndTime: "17:00", Active: true},
		{ID: 5, StylistID: 7, Weekday: 0, StartTime: "12:00", EndTime: "13:00", Active: false},
		{ID: 6, StylistID: 7, Weekday: 1, StartTime: "08:00", EndTime: "13:30", Active: true},
	}}

	day, err := NewResolver(repo, DefaultHours(), fixedToday).Resolve(context.Background(), 7, monday)
	require.NoError(t, err)

	assert.Equal(t, SourceTemplate, day.Source)
	assert.Equal(t, ivs("08:00", "12:00", "16:00", "20:00"), day.Intervals)
}

func TestResolveOverrideTakesPriority(t *testing.T) {
	repo := &fakeRepo{
		templates: []models.ScheduleTemplate{
			{ID: 1, StylistID: 7, Weekday: 0, StartTime: "08:00", EndTime: "13:30", Active: true},
		},
		overrides: []models.ShiftOverride{
			{ID: 3, StylistID: 7, StartDate: "2026-10-01", EndDate: "2026-10-31", Shift: "FULL", Active: true},
		},
	}

	day, err := NewResolver(repo, DefaultHours(), fixedToday).Resolve(context.Background(), 7, monday)
	require.NoError(t, err)

	assert.Equal(t, SourceOverride, day.Source)
	assert.Equal(t, uint(3), day.OverrideID)
	assert.Equal(t, ivs("08:00", "13:30", "15:00", "21:00"), day.Intervals)
	assert.Zero(t, repo.templateCalls, "templates must not be consulted when an override applies")
}

func TestResolvePicksLatestOverride(t *testing.T) {
	repo := &fakeRepo{overrides: []models.ShiftOverride{
		{ID: 1, StylistID: 7, StartDate: "2026-10-01", EndDate: "2026-10-31", Shift: "FULL", Active: true},
		{ID: 5, StylistID: 7, StartDate: "2026-10-15", EndDate: "2026-10-20", Shift: "MORNING", Active: true},
		{ID: 9, StylistID: 7, StartDate: "2026-10-15", EndDate: "2026-10-25", Shift: "AFTERNOON", Active: true},
		{ID: 12, StylistID: 7, StartDate: "2026-10-19", EndDate: "2026-10-19", Shift: "MORNING", Active: false},
	}}

	day, err := NewResolver(repo, DefaultHours(), fixedToday).Resolve(context.Background(), 7, monday)
	require.NoError(t, err)

	assert.Equal(t, uint(9), day.OverrideID)
	assert.Equal(t, ivs("15:00", "21:00"), day.Intervals)
}

func TestResolveEmptyCases(t *testing.T) {
	repo := &fakeRepo{
		templates: []models.ScheduleTemplate{
			{StylistID: 7, Weekday: 6, StartTime: "08:00", EndTime: "13:30", Active: true},
			{StylistID: 7, Weekday: 5, StartTime: "08:00", EndTime: "13:30", Active: true},
		},
		overrides: []models.ShiftOverride{
			{ID: 1, StylistID: 7, StartDate: "2026-01-01", EndDate: "2026-12-31", Shift: "FULL", Active: true},
		},
	}
	r := NewResolver(repo, DefaultHours(), fixedToday)

	t.Run("sunday", func(t *testing.T) {
		day, err := r.Resolve(context.Background(), 7, time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.False(t, day.Open())
		assert.Equal(t, SourceNone, day.Source)
	})

	t.Run("past", func(t *testing.T) {
		day, err := r.Resolve(context.Background(), 7, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.False(t, day.Open())
	})

	t.Run("no templates", func(t *testing.T) {
		day, err := NewResolver(&fakeRepo{}, DefaultHours(), fixedToday).Resolve(context.Background(), 7, monday)
		require.NoError(t, err)
		assert.False(t, day.Open())
	})
}

func TestResolveTodayIsNotPast(t *testing.T) {
	saturday := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	repo := &fakeRepo{templates: []models.ScheduleTemplate{
		{StylistID: 7, Weekday: int(Saturday), StartTime: "08:00", EndTime: "13:30", Active: true},
	}}
	r := NewResolver(repo, DefaultHours(), func() time.Time { return saturday })

	day, err := r.Resolve(context.Background(), 7, DateOnly(saturday))
	require.NoError(t, err)
	assert.True(t, day.Open())
}

func TestResolvePropagatesStorageErrors(t *testing.T) {
	boom := errors.New("db down")
	_, err := NewResolver(&fakeRepo{err: boom}, DefaultHours(), fixedToday).Resolve(context.Background(), 7, monday)
	assert.ErrorIs(t, err, boom)
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
	assert.Equal(t, "sábado", Saturday.String())
}
