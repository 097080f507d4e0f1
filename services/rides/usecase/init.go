package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg  *models.Config
	repo rides.RideRepo
	gw   rides.RideGW
	now  func() time.Time
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
) (rides.RideUC, error) {
	return &rideUC{
		cfg:  cfg,
		repo: rideRepo,
		gw:   rideGW,
		now:  models.Now,
	}, nil
}

// publish sends an event after a committed write. A failed publish is only
// logged: the state change it describes has already happened.
func (uc *rideUC) publish(ctx context.Context, event string, fn func() error) {
	if err := fn(); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			logger.String("event", event),
			logger.Err(err))
	}
}

func (uc *rideUC) publishRideStatus(ctx context.Context, ride *models.Ride, previous models.RideStatus, actor models.Actor, at time.Time) {
	event := models.NewRideEvent(ride, previous, actor, at)
	uc.publish(ctx, "ride.status_changed", func() error {
		return uc.gw.PublishRideStatusChanged(ctx, event)
	})
}

func (uc *rideUC) publishRejected(ctx context.Context, rejected []*models.Proposal, requesterID uuid.UUID, at time.Time) {
	for _, p := range rejected {
		event := models.NewProposalEvent(p, requesterID, at)
		uc.publish(ctx, "proposal.rejected", func() error {
			return uc.gw.PublishProposalRejected(ctx, event)
		})
	}
}
