package schedule

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Store adds the staff-facing writes on templates and overrides.
type Store interface {
	Repository

	GetStylist(ctx context.Context, id uint) (*models.Stylist, error)

	// -------- Templates --------
	ListTemplates(ctx context.Context, stylistID uint) ([]models.ScheduleTemplate, error)
	GetTemplate(ctx context.Context, id uint) (*models.ScheduleTemplate, error)
	CreateTemplate(ctx context.Context, t *models.ScheduleTemplate) error
	UpdateTemplate(ctx context.Context, t *models.ScheduleTemplate) error
	DeleteTemplate(ctx context.Context, id uint) error

	// -------- Overrides --------
	ListOverrides(ctx context.Context, stylistID uint) ([]models.ShiftOverride, error)
	GetOverride(ctx context.Context, id uint) (*models.ShiftOverride, error)
	CreateOverride(ctx context.Context, o *models.ShiftOverride) error
	UpdateOverride(ctx context.Context, o *models.ShiftOverride) error
	DeleteOverride(ctx context.Context, id uint) error
}
