package appointment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const monday = "2026-10-19"

var now = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

type heldLocker struct{}

func (heldLocker) Acquire(context.Context, string) (lock.Release, error) {
	return nil, lock.ErrHeld
}

type brokenLocker struct{}

func (brokenLocker) Acquire(context.Context, string) (lock.Release, error) {
	return nil, errors.New("redis: connection refused")
}

type env struct {
	repo    *repository.AppointmentGormRepository
	auditor *recordingAuditor
	metrics *metrics.Metrics
	log     *slog.Logger

	ana, bruno models.Stylist
	cut, dye   models.Service
	lucia, pau models.User
}

func setup(t *testing.T) *env {
	t.Helper()
	gdb := dbtest.Open(t)

	e := &env{
		repo:    repository.NewAppointmentGormRepository(gdb),
		auditor: &recordingAuditor{},
		metrics: metrics.New("test"),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ana:     models.Stylist{FirstName: "Ana", LastName: "Ruiz"},
		bruno:   models.Stylist{FirstName: "Bruno", LastName: "Alonso"},
		cut:     models.Service{Name: "Corte", DurationMin: 30, Active: true},
		dye:     models.Service{Name: "Tinte", DurationMin: 90, Active: true},
		lucia:   models.User{Username: "lucia", FirstName: "Lucía", PasswordHash: "x", Role: models.RoleClient},
		pau:     models.User{Username: "pau", PasswordHash: "x", Role: models.RoleClient},
	}

	for _, v := range []any{&e.cut, &e.dye, &e.ana, &e.bruno, &e.lucia, &e.pau} {
		require.NoError(t, gdb.Create(v).Error)
	}
	require.NoError(t, gdb.Model(&e.ana).Association("Services").Append(&e.cut, &e.dye))
	require.NoError(t, gdb.Model(&e.bruno).Association("Services").Append(&e.cut))

	for _, st := range []models.Stylist{e.ana, e.bruno} {
		for _, block := range [][2]string{{"08:00", "13:30"}, {"15:00", "21:00"}} {
			require.NoError(t, gdb.Create(&models.ScheduleTemplate{
				StylistID: st.ID,
				Weekday:   int(schedule.Monday),
				StartTime: block[0],
				EndTime:   block[1],
				Active:    true,
			}).Error)
		}
	}

	return e
}

func (e *env) today() time.Time { return now }

func (e *env) create(locker lock.Locker) *CreateAppointment {
	return NewCreateAppointment(e.repo, schedule.DefaultHours(), e.today, locker, e.auditor, e.metrics, e.log)
}

func (e *env) availability() *GetAvailability {
	return NewGetAvailability(e.repo, schedule.DefaultHours(), e.today, e.metrics)
}

func (e *env) book(t *testing.T, user models.User, stylist models.Stylist, service models.Service, start string) *models.Appointment {
	t.Helper()
	ap, err := e.create(lock.NoopLocker{}).Execute(context.Background(), CreateAppointmentInput{
		UserID:    user.ID,
		StylistID: stylist.ID,
		ServiceID: service.ID,
		Date:      monday,
		StartTime: start,
	})
	require.NoError(t, err)
	return ap
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok, "expected %s, got %v", code, err)
	assert.Equal(t, code, be.Code)
}

func mondayDate() time.Time {
	d, _ := time.Parse(models.DateLayout, monday)
	return d
}

func TestCreateAppointment(t *testing.T) {
	e := setup(t)

	ap, err := e.create(lock.NoopLocker{}).Execute(context.Background(), CreateAppointmentInput{
		UserID:    e.lucia.ID,
		StylistID: e.ana.ID,
		ServiceID: e.dye.ID,
		Date:      monday,
		StartTime: "10:00:00",
		Reason:    "mechas",
	})
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, "10:00", ap.StartTime)
	assert.Equal(t, models.StatusPending, ap.Status)
	assert.Equal(t, []string{"appointment_created"}, e.auditor.actions())

	client, err := e.repo.GetOrCreateClientForUser(context.Background(), &e.lucia)
	require.NoError(t, err)
	assert.Equal(t, client.ID, ap.ClientID)
}

func TestCreateAppointmentRejections(t *testing.T) {
	tests := []struct {
		name string
		in   func(e *env) CreateAppointmentInput
		code string
	}{
		{"missing service", func(e *env) CreateAppointmentInput {
			return CreateAppointmentInput{UserID: e.lucia.ID, StylistID: e.ana.ID, Date: monday, StartTime: "10:00"}
		}, "missing_service"},
		{"unknown stylist", func(e *env) CreateAppointmentInput {
			return CreateAppointmentInput{UserID: e.lucia.ID, StylistID: 999, ServiceID: e.cut.ID, Date: monday, StartTime: "10:00"}
		}, "stylist_not_found"},
		{"not offered", func(e *env) CreateAppointmentInput {
			return CreateAppointmentInput{UserID: e.lucia.ID, StylistID: e.bruno.ID, ServiceID: e.dye.ID, Date: monday, StartTime: "10:00"}
		}, "service_not_offered"},
		{"lunch", func(e *env) CreateAppointmentInput {
			return CreateAppointmentInput{UserID: e.lucia.ID, StylistID: e.ana.ID, ServiceID: e.dye.ID, Date: monday, StartTime: "12:30"}
		}, "overlaps_lunch"},
		{"past", func(e *env) CreateAppointmentInput {
			return CreateAppointmentInput{UserID: e.lucia.ID, StylistID: e.ana.ID, ServiceID: e.cut.ID, Date: "2026-10-16", StartTime: "10:00"}
		}, "date_in_past"},
		{"unknown user", func(e *env) CreateAppointmentInput {
			return CreateAppointmentInput{UserID: 999, StylistID: e.ana.ID, ServiceID: e.cut.ID, Date: monday, StartTime: "10:00"}
		}, "user_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setup(t)
			_, err := e.create(lock.NoopLocker{}).Execute(context.Background(), tt.in(e))
			requireCode(t, err, tt.code)
			assert.Empty(t, e.auditor.actions())
		})
	}
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	e := setup(t)
	e.book(t, e.lucia, e.ana, e.cut, "10:00")

	_, err := e.create(lock.NoopLocker{}).Execute(context.Background(), CreateAppointmentInput{
		UserID:    e.pau.ID,
		StylistID: e.ana.ID,
		ServiceID: e.cut.ID,
		Date:      monday,
		StartTime: "10:00",
	})
	requireCode(t, err, "slot_unavailable")
}

func TestCreateAppointmentHeldSlot(t *testing.T) {
	e := setup(t)

	_, err := e.create(heldLocker{}).Execute(context.Background(), CreateAppointmentInput{
		UserID:    e.lucia.ID,
		StylistID: e.ana.ID,
		ServiceID: e.cut.ID,
		Date:      monday,
		StartTime: "10:00",
	})
	requireCode(t, err, "slot_unavailable")
}

func TestCreateAppointmentLockBackendDown(t *testing.T) {
	e := setup(t)

	_, err := e.create(brokenLocker{}).Execute(context.Background(), CreateAppointmentInput{
		UserID:    e.lucia.ID,
		StylistID: e.ana.ID,
		ServiceID: e.cut.ID,
		Date:      monday,
		StartTime: "10:00",
	})
	assert.NoError(t, err)
}

func TestGetAvailability(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	ap := e.book(t, e.lucia, e.ana, e.cut, "10:00")

	horas, err := e.availability().Execute(ctx, GetAvailabilityInput{
		StylistID: e.ana.ID,
		ServiceID: e.dye.ID,
		Date:      mondayDate(),
	})
	require.NoError(t, err)
	assert.Contains(t, horas, "08:30")
	assert.NotContains(t, horas, "09:00")
	assert.NotContains(t, horas, "10:00")
	assert.NotContains(t, horas, "12:30")
	assert.Contains(t, horas, "15:00")
	assert.Equal(t, "19:30", horas[len(horas)-1])

	// The owner may see their own slot as free while editing.
	own, err := e.availability().Execute(ctx, GetAvailabilityInput{
		UserID:               e.lucia.ID,
		StylistID:            e.ana.ID,
		ServiceID:            e.cut.ID,
		Date:                 mondayDate(),
		ExcludeAppointmentID: ap.ID,
	})
	require.NoError(t, err)
	assert.Contains(t, own, "10:00")

	other, err := e.availability().Execute(ctx, GetAvailabilityInput{
		UserID:               e.pau.ID,
		StylistID:            e.ana.ID,
		ServiceID:            e.cut.ID,
		Date:                 mondayDate(),
		ExcludeAppointmentID: ap.ID,
	})
	require.NoError(t, err)
	assert.NotContains(t, other, "10:00")
}

func TestGetAvailabilityNotFound(t *testing.T) {
	e := setup(t)

	_, err := e.availability().Execute(context.Background(), GetAvailabilityInput{
		StylistID: 999, ServiceID: e.cut.ID, Date: mondayDate(),
	})
	requireCode(t, err, "stylist_not_found")

	_, err = e.availability().Execute(context.Background(), GetAvailabilityInput{
		StylistID: e.ana.ID, ServiceID: 999, Date: mondayDate(),
	})
	requireCode(t, err, "service_not_found")
}

func TestGetAvailabilitySundayIsEmpty(t *testing.T) {
	e := setup(t)

	horas, err := e.availability().Execute(context.Background(), GetAvailabilityInput{
		StylistID: e.ana.ID,
		ServiceID: e.cut.ID,
		Date:      time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotNil(t, horas)
	assert.Empty(t, horas)
}

func TestUpdateAppointment(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	ap := e.book(t, e.lucia, e.ana, e.cut, "10:00")
	e.book(t, e.pau, e.ana, e.cut, "11:00")

	uc := NewUpdateAppointment(e.repo, schedule.DefaultHours(), e.today, lock.NoopLocker{}, e.auditor, e.metrics, e.log)

	// Keeping its own slot while changing the service is allowed.
	same, err := uc.Execute(ctx, UpdateAppointmentInput{
		UserID: e.lucia.ID, AppointmentID: ap.ID,
		StylistID: e.ana.ID, ServiceID: e.dye.ID, Date: monday, StartTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", same.StartTime)

	_, err = uc.Execute(ctx, UpdateAppointmentInput{
		UserID: e.lucia.ID, AppointmentID: ap.ID,
		StylistID: e.ana.ID, ServiceID: e.cut.ID, Date: monday, StartTime: "11:00",
	})
	requireCode(t, err, "slot_unavailable")

	moved, err := uc.Execute(ctx, UpdateAppointmentInput{
		UserID: e.lucia.ID, AppointmentID: ap.ID,
		StylistID: e.bruno.ID, ServiceID: e.cut.ID, Date: monday, StartTime: "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, e.bruno.ID, moved.StylistID)

	_, err = uc.Execute(ctx, UpdateAppointmentInput{
		UserID: e.pau.ID, AppointmentID: ap.ID,
		StylistID: e.bruno.ID, ServiceID: e.cut.ID, Date: monday, StartTime: "12:00",
	})
	requireCode(t, err, "appointment_not_found")
}

func TestCancelAndComplete(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	clock := func() time.Time { return now }

	first := e.book(t, e.lucia, e.ana, e.cut, "10:00")
	second := e.book(t, e.lucia, e.ana, e.cut, "11:00")

	cancel := NewCancelAppointment(e.repo, clock, e.auditor)
	complete := NewCompleteAppointment(e.repo, clock, e.auditor)

	_, err := cancel.Execute(ctx, e.pau.ID, first.ID)
	requireCode(t, err, "appointment_not_found")

	cancelled, err := cancel.Execute(ctx, e.lucia.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	_, err = cancel.Execute(ctx, e.lucia.ID, first.ID)
	requireCode(t, err, "invalid_state")

	// The freed slot can be booked again.
	e.book(t, e.pau, e.ana, e.cut, "10:00")

	done, err := complete.Execute(ctx, 77, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, done.Status)

	_, err = complete.Execute(ctx, 77, second.ID)
	requireCode(t, err, "invalid_state")
}

func TestListings(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	e.book(t, e.lucia, e.ana, e.cut, "09:00")
	e.book(t, e.lucia, e.bruno, e.cut, "16:00")
	e.book(t, e.pau, e.ana, e.dye, "16:00")

	mine, err := NewListClientAppointments(e.repo).Execute(ctx, e.lucia.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "16:00", mine[0].StartTime)
	assert.Equal(t, "Bruno Alonso", mine[0].StylistName)
	assert.Equal(t, "16:30", mine[0].EndTime)

	day, err := NewListAppointmentsByDate(e.repo).Execute(ctx, e.ana.ID, mondayDate())
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "09:00", day[0].StartTime)
	assert.Equal(t, "17:30", day[1].EndTime)
	assert.Equal(t, "Tinte", day[1].ServiceName)

	stylists, err := NewListStylistsForService(e.repo).Execute(ctx, e.dye.ID)
	require.NoError(t, err)
	require.Len(t, stylists, 1)
	assert.Equal(t, "Ana Ruiz", stylists[0].Nombre)
}
