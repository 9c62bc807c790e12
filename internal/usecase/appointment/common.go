package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Auditor interface {
	Dispatch(ev audit.Event)
}

// clientFor returns the client record of a login, creating it on first use.
func clientFor(ctx context.Context, repo domain.Repository, userID uint) (*models.Client, error) {
	user, err := repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repo.GetOrCreateClientForUser(ctx, user)
}

// normalizeStart turns "09:00:00" into "09:00". Invalid input is returned
// as is for the validator to reject.
func normalizeStart(s string) string {
	c, sec, err := timeslot.Parse(s)
	if err != nil || sec != 0 {
		return s
	}
	return c.String()
}

func requireIDs(stylistID, serviceID uint) error {
	if stylistID == 0 {
		return httperr.ErrField("stylist_id", "missing_stylist")
	}
	if serviceID == 0 {
		return httperr.ErrField("service_id", "missing_service")
	}
	return nil
}
