package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type ListStylistsForService struct {
	repo domain.Repository
}

func NewListStylistsForService(repo domain.Repository) *ListStylistsForService {
	return &ListStylistsForService{repo: repo}
}

// Execute lists the stylists offering the service, ordered by name. An
// unknown service simply has no stylists.
func (uc *ListStylistsForService) Execute(
	ctx context.Context,
	serviceID uint,
) ([]dto.StylistOption, error) {

	stylists, err := uc.repo.ListStylistsForService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	return dto.StylistOptions(stylists), nil
}
