package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/metrics"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/services/rides/lifecycle"
)

// TransitionRide moves a ride to target if the actor's role and binding allow it
func (uc *rideUC) TransitionRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, target models.RideStatus) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Authorize(ride, target, actor); err != nil {
		return nil, err
	}

	now := uc.now()
	updated, rejected, err := uc.repo.UpdateRideStatus(ctx, lifecycle.Plan(ride, target, actor, now))
	if err != nil {
		return nil, err
	}
	metrics.Transitions.WithLabelValues(string(ride.Status), string(target)).Inc()

	logger.InfoCtx(ctx, "Ride status changed",
		logger.UUID("ride_id", ride.ID),
		logger.String("from", string(ride.Status)),
		logger.String("to", string(target)),
		logger.String("actor_role", string(actor.Role)))

	uc.publishRideStatus(ctx, updated, ride.Status, actor, now)
	uc.publishRejected(ctx, rejected, ride.RequesterID, now)

	return updated, nil
}
