package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lists one stylist's day for staff, cancelled rows included.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	stylistID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForStylistDay(ctx, stylistID, date)
	if err != nil {
		return nil, err
	}

	return dto.AppointmentsFromModels(appointments), nil
}
