package schedule

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type TemplateInput struct {
	Weekday   int
	StartTime string
	EndTime   string
	Active    bool
}

// ======================================================
// USE CASE
// ======================================================

// ManageTemplates is the staff CRUD over weekly blocks. Every write is
// checked by domain.ValidateTemplate first.
type ManageTemplates struct {
	store domain.Store
	hours domain.Hours
	audit Auditor
}

func NewManageTemplates(
	store domain.Store,
	hours domain.Hours,
	audit Auditor,
) *ManageTemplates {
	return &ManageTemplates{
		store: store,
		hours: hours,
		audit: audit,
	}
}

func (uc *ManageTemplates) List(
	ctx context.Context,
	stylistID uint,
) ([]models.ScheduleTemplate, error) {

	if _, err := uc.store.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}
	return uc.store.ListTemplates(ctx, stylistID)
}

func (uc *ManageTemplates) Create(
	ctx context.Context,
	userID uint,
	stylistID uint,
	in TemplateInput,
) (*models.ScheduleTemplate, error) {

	if _, err := uc.store.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	t := &models.ScheduleTemplate{StylistID: stylistID}
	if err := uc.apply(t, in); err != nil {
		return nil, err
	}

	if err := uc.store.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}

	uc.record(userID, "schedule_created", t.ID, t)
	return t, nil
}

func (uc *ManageTemplates) Update(
	ctx context.Context,
	userID uint,
	id uint,
	in TemplateInput,
) (*models.ScheduleTemplate, error) {

	t, err := uc.store.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(t, in); err != nil {
		return nil, err
	}

	if err := uc.store.UpdateTemplate(ctx, t); err != nil {
		return nil, err
	}

	uc.record(userID, "schedule_updated", t.ID, t)
	return t, nil
}

func (uc *ManageTemplates) Delete(
	ctx context.Context,
	userID uint,
	id uint,
) error {

	if err := uc.store.DeleteTemplate(ctx, id); err != nil {
		return err
	}

	uc.record(userID, "schedule_deleted", id, nil)
	return nil
}

// apply validates the input and writes the normalized values into t.
func (uc *ManageTemplates) apply(t *models.ScheduleTemplate, in TemplateInput) error {
	candidate := models.ScheduleTemplate{
		Weekday:   in.Weekday,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	iv, err := domain.ValidateTemplate(candidate, uc.hours)
	if err != nil {
		return err
	}

	t.Weekday = in.Weekday
	t.StartTime = iv.Start.String()
	t.EndTime = iv.End.String()
	t.Active = in.Active
	return nil
}

func (uc *ManageTemplates) record(userID uint, action string, id uint, meta any) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "schedule_template",
		EntityID: &id,
		Metadata: meta,
	})
}
