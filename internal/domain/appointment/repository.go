package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Catalog answers the stylist/service relationship.
type Catalog interface {
	StylistOffersService(
		ctx context.Context,
		stylistID uint,
		serviceID uint,
	) (bool, error)
}

type Repository interface {
	availability.Store
	Catalog

	// Transaction runs fn against a repository bound to one database
	// transaction. Returning an error rolls it back.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- Catalog --------
	GetStylist(ctx context.Context, id uint) (*models.Stylist, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// ListStylistsForService orders by first and last name.
	ListStylistsForService(
		ctx context.Context,
		serviceID uint,
	) ([]models.Stylist, error)

	// -------- Client --------
	GetUser(ctx context.Context, id uint) (*models.User, error)

	GetOrCreateClientForUser(
		ctx context.Context,
		user *models.User,
	) (*models.Client, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	// ListAppointmentsForClient returns newest first.
	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	// ListAppointmentsForStylistDay includes every status.
	ListAppointmentsForStylistDay(
		ctx context.Context,
		stylistID uint,
		date time.Time,
	) ([]models.Appointment, error)
}
