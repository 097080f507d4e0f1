package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/metrics"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/pkg/newrelic"
)

// SubmitProposal records a provider's bid on an open ride
func (uc *rideUC) SubmitProposal(ctx context.Context, actor models.Actor, rideID uuid.UUID, req models.SubmitProposalRequest) (*models.Proposal, error) {
	return newrelic.WithSegmentAndReturn(ctx, "RideUC.SubmitProposal", func() (*models.Proposal, error) {
		if actor.Role != models.ActorProvider {
			return nil, apperror.ErrProviderOnly
		}
		if req.Price <= 0 {
			return nil, apperror.Validation("price must be greater than 0")
		}
		if req.EstimatedTime <= 0 {
			return nil, apperror.Validation("estimated_time must be greater than 0")
		}

		ride, err := uc.repo.GetRide(ctx, rideID)
		if err != nil {
			return nil, err
		}
		if ride.Status != models.RideStatusPending || ride.ProviderID != nil {
			return nil, apperror.ErrRideNotAvailable
		}

		provider, err := uc.repo.GetProvider(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if !provider.IsAvailable {
			return nil, apperror.ErrProviderNotAvailable
		}
		if ride.IsRequester(actor.ID) {
			return nil, apperror.ErrOwnRide
		}

		now := uc.now()
		created, err := uc.repo.CreateProposal(ctx, &models.Proposal{
			ID:            uuid.New(),
			RideID:        ride.ID,
			ProviderID:    actor.ID,
			Price:         req.Price,
			EstimatedTime: req.EstimatedTime,
			Message:       req.Message,
			Status:        models.ProposalStatusPending,
			ExpiresAt:     now.Add(uc.cfg.Rides.ProposalTTL),
			CreatedAt:     now,
		})
		if err != nil {
			return nil, err
		}
		if created.Provider == nil {
			created.Provider = provider.Profile()
		}
		metrics.ProposalsSubmitted.Inc()

		logger.InfoCtx(ctx, "Proposal submitted",
			logger.UUID("ride_id", ride.ID),
			logger.UUID("proposal_id", created.ID),
			logger.UUID("provider_id", actor.ID),
			logger.Float64("price", created.Price))

		event := models.NewProposalEvent(created, ride.RequesterID, now)
		uc.publish(ctx, "proposal.submitted", func() error {
			return uc.gw.PublishProposalSubmitted(ctx, event)
		})

		return created, nil
	})
}

// ListProposals lists a ride's bids cheapest first. Providers only see their own.
func (uc *rideUC) ListProposals(ctx context.Context, actor models.Actor, rideID uuid.UUID) ([]*models.Proposal, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	var providerID *uuid.UUID
	switch actor.Role {
	case models.ActorAdmin:
	case models.ActorRequester:
		if !ride.IsRequester(actor.ID) {
			return nil, apperror.ErrNotRideRequester
		}
	case models.ActorProvider:
		providerID = &actor.ID
	default:
		return nil, apperror.ErrNotRideParty
	}

	return uc.repo.ListProposals(ctx, rideID, providerID)
}

// ExpireProposals expires every overdue PENDING proposal and announces each one
func (uc *rideUC) ExpireProposals(ctx context.Context) (int, error) {
	now := uc.now()
	expired, err := uc.repo.ExpireProposals(ctx, now)
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	metrics.ProposalsExpired.Add(float64(len(expired)))
	logger.InfoCtx(ctx, "Expired proposals", logger.Int("count", len(expired)))

	for _, e := range expired {
		event := models.NewProposalEvent(e.Proposal, e.RequesterID, now)
		uc.publish(ctx, "proposal.expired", func() error {
			return uc.gw.PublishProposalExpired(ctx, event)
		})
	}
	return len(expired), nil
}
