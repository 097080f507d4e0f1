package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
)

// AcceptProposal binds the ride to the proposal's provider, locks the provider,
// accepts the proposal and rejects the ride's other pending proposals in one
// transaction. Each step is a conditional update: a step that matches no row
// means another writer got there first, and the whole transaction rolls back.
func (r *RideRepo) AcceptProposal(ctx context.Context, params models.AcceptProposalParams) (*models.AcceptanceResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var rideDTO models.RideDTO
	err = tx.GetContext(ctx, &rideDTO, `
		UPDATE rides
		SET status = 'ACCEPTED', provider_id = $2, accepted_at = $3, updated_at = $3,
			agreed_price = $4, estimated_time = $5
		WHERE id = $1 AND status = 'PENDING' AND provider_id IS NULL
		RETURNING `+rideColumns,
		params.RideID, params.ProviderID, params.At, params.Price, params.EstimatedTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrRideNotAvailable
		}
		return nil, fmt.Errorf("failed to bind ride: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE providers
		SET is_available = FALSE, held_by_ride = $3, updated_at = $2
		WHERE user_id = $1 AND is_available`,
		params.ProviderID, params.At, params.RideID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to lock provider: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to lock provider: %w", err)
	} else if n == 0 {
		return nil, apperror.ErrProviderNotAvailable
	}

	var acceptedDTO models.ProposalDTO
	err = tx.GetContext(ctx, &acceptedDTO, `
		UPDATE proposals
		SET status = 'ACCEPTED', accepted_at = $3
		WHERE id = $1 AND ride_id = $2 AND status = 'PENDING' AND expires_at > $3
		RETURNING `+proposalColumns,
		params.ProposalID, params.RideID, params.At,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, apperror.ErrProposalNotAvailable
		case isUniqueViolation(err, "proposals_one_accepted_per_ride"):
			return nil, apperror.ErrRideNotAvailable.Wrap(err)
		}
		return nil, fmt.Errorf("failed to accept proposal: %w", err)
	}

	var rejectedDTOs []models.ProposalDTO
	err = tx.SelectContext(ctx, &rejectedDTOs, `
		UPDATE proposals
		SET status = 'REJECTED', rejected_at = $3
		WHERE ride_id = $1 AND id <> $2 AND status = 'PENDING'
		RETURNING `+proposalColumns,
		params.RideID, params.ProposalID, params.At,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reject competing proposals: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.AcceptanceResult{
		Ride:     rideDTO.ToRide(),
		Accepted: acceptedDTO.ToProposal(),
		Rejected: toProposals(rejectedDTOs),
	}, nil
}
