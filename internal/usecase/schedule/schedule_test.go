package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type countingAuditor struct{ events []audit.Event }

func (a *countingAuditor) Dispatch(ev audit.Event) { a.events = append(a.events, ev) }

func setup(t *testing.T) (*repository.ScheduleGormRepository, *countingAuditor, models.Stylist) {
	t.Helper()
	gdb := dbtest.Open(t)

	st := models.Stylist{FirstName: "Ana", LastName: "Ruiz"}
	require.NoError(t, gdb.Create(&st).Error)

	return repository.NewScheduleGormRepository(gdb), &countingAuditor{}, st
}

func TestManageTemplates(t *testing.T) {
	store, aud, st := setup(t)
	ctx := context.Background()
	uc := NewManageTemplates(store, domain.DefaultHours(), aud)

	created, err := uc.Create(ctx, 1, st.ID, TemplateInput{
		Weekday: int(domain.Monday), StartTime: "08:00:00", EndTime: "13:30", Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00", created.StartTime)

	_, err = uc.Create(ctx, 1, st.ID, TemplateInput{
		Weekday: int(domain.Sunday), StartTime: "08:00", EndTime: "13:30", Active: true,
	})
	assert.True(t, httperr.IsBusiness(err, "closed_on_sunday"))

	_, err = uc.Create(ctx, 1, 999, TemplateInput{Weekday: 0, StartTime: "08:00", EndTime: "09:00"})
	assert.True(t, httperr.IsBusiness(err, "stylist_not_found"))

	updated, err := uc.Update(ctx, 1, created.ID, TemplateInput{
		Weekday: int(domain.Tuesday), StartTime: "15:00", EndTime: "21:00", Active: false,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = uc.Update(ctx, 1, created.ID, TemplateInput{
		Weekday: int(domain.Tuesday), StartTime: "12:00", EndTime: "14:00", Active: true,
	})
	assert.True(t, httperr.IsBusiness(err, "overlaps_lunch"))

	list, err := uc.List(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int(domain.Tuesday), list[0].Weekday)
	assert.False(t, list[0].Active)

	require.NoError(t, uc.Delete(ctx, 1, created.ID))
	assert.True(t, httperr.IsBusiness(uc.Delete(ctx, 1, created.ID), "schedule_not_found"))

	assert.Len(t, aud.events, 3)
}

func TestManageOverrides(t *testing.T) {
	store, aud, st := setup(t)
	ctx := context.Background()
	uc := NewManageOverrides(store, aud)

	o, err := uc.Create(ctx, 1, st.ID, OverrideInput{
		StartDate: "2026-10-19", EndDate: "2026-10-23", Shift: "morning", Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "MORNING", o.Shift)

	_, err = uc.Create(ctx, 1, st.ID, OverrideInput{
		StartDate: "2026-10-23", EndDate: "2026-10-19", Shift: "FULL", Active: true,
	})
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "end_date_before_start_date", be.Code)
	assert.Equal(t, "end_date", be.Field)

	_, err = uc.Update(ctx, 1, o.ID, OverrideInput{
		StartDate: "2026-10-19", EndDate: "2026-10-23", Shift: "NIGHT", Active: true,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_shift"))

	// The stored override now drives the resolver.
	r := domain.NewResolver(store, domain.DefaultHours(), func() time.Time {
		return time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	})
	day, err := r.Resolve(ctx, st.ID, time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.SourceOverride, day.Source)
	assert.Equal(t, o.ID, day.OverrideID)
	require.Len(t, day.Intervals, 1)
	assert.Equal(t, "08:00", day.Intervals[0].Start.String())

	list, err := uc.List(ctx, st.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, 1, o.ID))
	assert.True(t, httperr.IsBusiness(uc.Delete(ctx, 1, o.ID), "shift_not_found"))
}
