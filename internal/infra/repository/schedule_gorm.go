package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// notFound maps a missing row to the given business code.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// --------------------------------------------------
// Stylist
// --------------------------------------------------

func (r *ScheduleGormRepository) GetStylist(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var st models.Stylist
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, notFound(err, "stylist_not_found")
	}
	return &st, nil
}

// --------------------------------------------------
// Resolver reads
// --------------------------------------------------

func (r *ScheduleGormRepository) ActiveOverrides(
	ctx context.Context,
	stylistID uint,
	date time.Time,
) ([]models.ShiftOverride, error) {

	day := date.Format(models.DateLayout)

	var overrides []models.ShiftOverride
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND active = ? AND start_date <= ? AND end_date >= ?",
			stylistID, true, day, day,
		).
		Order("start_date DESC, id DESC").
		Find(&overrides).Error; err != nil {
		return nil, err
	}

	return overrides, nil
}

func (r *ScheduleGormRepository) ActiveTemplates(
	ctx context.Context,
	stylistID uint,
	weekday schedule.Weekday,
) ([]models.ScheduleTemplate, error) {

	var templates []models.ScheduleTemplate
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ? AND active = ?", stylistID, int(weekday), true).
		Order("start_time ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}

	return templates, nil
}

// --------------------------------------------------
// Templates
// --------------------------------------------------

func (r *ScheduleGormRepository) ListTemplates(
	ctx context.Context,
	stylistID uint,
) ([]models.ScheduleTemplate, error) {

	var templates []models.ScheduleTemplate
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("weekday ASC, start_time ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *ScheduleGormRepository) GetTemplate(
	ctx context.Context,
	id uint,
) (*models.ScheduleTemplate, error) {

	var t models.ScheduleTemplate
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, notFound(err, "schedule_not_found")
	}
	return &t, nil
}

func (r *ScheduleGormRepository) CreateTemplate(
	ctx context.Context,
	t *models.ScheduleTemplate,
) error {
	// Select keeps an explicit Active=false from being replaced by the
	// column default.
	return r.db.WithContext(ctx).Select("*").Omit("id").Create(t).Error
}

func (r *ScheduleGormRepository) UpdateTemplate(
	ctx context.Context,
	t *models.ScheduleTemplate,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *ScheduleGormRepository) DeleteTemplate(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.ScheduleTemplate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("schedule_not_found")
	}
	return nil
}

// --------------------------------------------------
// Overrides
// --------------------------------------------------

func (r *ScheduleGormRepository) ListOverrides(
	ctx context.Context,
	stylistID uint,
) ([]models.ShiftOverride, error) {

	var overrides []models.ShiftOverride
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("start_date DESC, id DESC").
		Find(&overrides).Error; err != nil {
		return nil, err
	}

	return overrides, nil
}

func (r *ScheduleGormRepository) GetOverride(
	ctx context.Context,
	id uint,
) (*models.ShiftOverride, error) {

	var o models.ShiftOverride
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, notFound(err, "shift_not_found")
	}
	return &o, nil
}

func (r *ScheduleGormRepository) CreateOverride(
	ctx context.Context,
	o *models.ShiftOverride,
) error {
	return r.db.WithContext(ctx).Select("*").Omit("id").Create(o).Error
}

func (r *ScheduleGormRepository) UpdateOverride(
	ctx context.Context,
	o *models.ShiftOverride,
) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *ScheduleGormRepository) DeleteOverride(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.ShiftOverride{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("shift_not_found")
	}
	return nil
}

// Compile-time check
var _ schedule.Store = (*ScheduleGormRepository)(nil)
