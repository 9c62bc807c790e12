package schedule

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type OverrideInput struct {
	StartDate string
	EndDate   string
	Shift     string
	Active    bool
}

// ManageOverrides is the staff CRUD over date-range shifts.
type ManageOverrides struct {
	store domain.Store
	audit Auditor
}

func NewManageOverrides(store domain.Store, audit Auditor) *ManageOverrides {
	return &ManageOverrides{
		store: store,
		audit: audit,
	}
}

func (uc *ManageOverrides) List(
	ctx context.Context,
	stylistID uint,
) ([]models.ShiftOverride, error) {

	if _, err := uc.store.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}
	return uc.store.ListOverrides(ctx, stylistID)
}

func (uc *ManageOverrides) Create(
	ctx context.Context,
	userID uint,
	stylistID uint,
	in OverrideInput,
) (*models.ShiftOverride, error) {

	if _, err := uc.store.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	o := &models.ShiftOverride{StylistID: stylistID}
	if err := apply(o, in); err != nil {
		return nil, err
	}

	if err := uc.store.CreateOverride(ctx, o); err != nil {
		return nil, err
	}

	uc.record(userID, "shift_created", o.ID, o)
	return o, nil
}

func (uc *ManageOverrides) Update(
	ctx context.Context,
	userID uint,
	id uint,
	in OverrideInput,
) (*models.ShiftOverride, error) {

	o, err := uc.store.GetOverride(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(o, in); err != nil {
		return nil, err
	}

	if err := uc.store.UpdateOverride(ctx, o); err != nil {
		return nil, err
	}

	uc.record(userID, "shift_updated", o.ID, o)
	return o, nil
}

func (uc *ManageOverrides) Delete(
	ctx context.Context,
	userID uint,
	id uint,
) error {

	if err := uc.store.DeleteOverride(ctx, id); err != nil {
		return err
	}

	uc.record(userID, "shift_deleted", id, nil)
	return nil
}

func apply(o *models.ShiftOverride, in OverrideInput) error {
	start, end, kind, err := domain.ValidateOverride(models.ShiftOverride{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Shift:     in.Shift,
	})
	if err != nil {
		return err
	}

	o.StartDate = start.Format(models.DateLayout)
	o.EndDate = end.Format(models.DateLayout)
	o.Shift = string(kind)
	o.Active = in.Active
	return nil
}

func (uc *ManageOverrides) record(userID uint, action string, id uint, meta any) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "shift_override",
		EntityID: &id,
		Metadata: meta,
	})
}
