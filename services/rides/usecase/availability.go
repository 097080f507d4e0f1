package usecase

import (
	"context"

	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/models"
)

// SetAvailability registers the calling provider and toggles whether it takes new work.
// A provider bound to an active ride cannot become available.
func (uc *rideUC) SetAvailability(ctx context.Context, actor models.Actor, req models.AvailabilityRequest) (*models.Provider, error) {
	if actor.Role != models.ActorProvider {
		return nil, apperror.ErrProviderOnly
	}
	if req.IsAvailable == nil {
		return nil, apperror.Validation("is_available is required")
	}

	provider, err := uc.repo.UpsertProvider(ctx, &models.Provider{
		UserID:       actor.ID,
		DisplayName:  req.DisplayName,
		VehicleType:  req.VehicleType,
		VehiclePlate: req.VehiclePlate,
		IsAvailable:  *req.IsAvailable,
		UpdatedAt:    uc.now(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Provider availability updated",
		logger.UUID("provider_id", actor.ID),
		logger.Bool("is_available", provider.IsAvailable))

	return provider, nil
}
