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

// AcceptProposal binds a ride to one proposal's provider and rejects the rest.
// The checks below fail fast with a precise error; the repository repeats each
// of them as a guarded write, so a request that loses a race after passing
// them still fails cleanly.
func (uc *rideUC) AcceptProposal(ctx context.Context, actor models.Actor, rideID, proposalID uuid.UUID) (*models.AcceptanceResult, error) {
	result, err := newrelic.WithSegmentAndReturn(ctx, "RideUC.AcceptProposal", func() (*models.AcceptanceResult, error) {
		return uc.acceptProposal(ctx, actor, rideID, proposalID)
	})

	outcome := "accepted"
	if err != nil {
		outcome = string(apperror.KindOf(err))
		if outcome == "" {
			outcome = "error"
		}
	}
	metrics.Acceptances.WithLabelValues(outcome).Inc()

	return result, err
}

func (uc *rideUC) acceptProposal(ctx context.Context, actor models.Actor, rideID, proposalID uuid.UUID) (*models.AcceptanceResult, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	proposal, err := uc.repo.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.RideID != ride.ID {
		return nil, apperror.ErrProposalNotFound
	}

	if actor.Role != models.ActorRequester || !ride.IsRequester(actor.ID) {
		return nil, apperror.ErrNotRideRequester
	}
	if ride.Status != models.RideStatusPending {
		return nil, apperror.ErrRideNotAvailable
	}

	now := uc.now()
	if !proposal.Acceptable(now) {
		return nil, apperror.ErrProposalNotAvailable
	}

	provider, err := uc.repo.GetProvider(ctx, proposal.ProviderID)
	if err != nil {
		return nil, err
	}
	if !provider.IsAvailable {
		return nil, apperror.ErrProviderNotAvailable
	}

	result, err := uc.repo.AcceptProposal(ctx, models.AcceptProposalParams{
		RideID:        ride.ID,
		ProposalID:    proposal.ID,
		ProviderID:    proposal.ProviderID,
		Price:         proposal.Price,
		EstimatedTime: proposal.EstimatedTime,
		At:            now,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Proposal acceptance failed",
			logger.UUID("ride_id", ride.ID),
			logger.UUID("proposal_id", proposal.ID),
			logger.Err(err))
		return nil, err
	}
	result.Accepted.Provider = provider.Profile()

	logger.InfoCtx(ctx, "Proposal accepted",
		logger.UUID("ride_id", ride.ID),
		logger.UUID("proposal_id", proposal.ID),
		logger.UUID("provider_id", proposal.ProviderID),
		logger.Int("rejected", len(result.Rejected)))

	accepted := models.NewProposalEvent(result.Accepted, ride.RequesterID, now)
	uc.publish(ctx, "proposal.accepted", func() error {
		return uc.gw.PublishProposalAccepted(ctx, accepted)
	})
	uc.publishRejected(ctx, result.Rejected, ride.RequesterID, now)
	uc.publishRideStatus(ctx, result.Ride, models.RideStatusPending, actor, now)

	return result, nil
}
