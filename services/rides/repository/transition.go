package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/services/rides/lifecycle"
)

// UpdateRideStatus applies a status change only if the ride is still in
// update.From. In the same transaction it rejects the pending bids of a
// cancelled open ride and frees the provider of a finished ride.
func (r *RideRepo) UpdateRideStatus(ctx context.Context, update models.RideStatusUpdate) (*models.Ride, []*models.Proposal, error) {
	column := lifecycle.TimestampColumn(update.To)
	if column == "" || update.To == models.RideStatusAccepted {
		return nil, nil, apperror.InvalidState("ride cannot be moved to %s directly", update.To)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dto models.RideDTO
	err = tx.GetContext(ctx, &dto, `
		UPDATE rides
		SET status = $3, updated_at = $4, `+column+` = $4,
			cancelled_by = COALESCE($5, cancelled_by),
			final_price = COALESCE($6, final_price)
		WHERE id = $1 AND status = $2
		RETURNING `+rideColumns,
		update.RideID, string(update.From), string(update.To), update.At,
		nullableRole(update.CancelledBy), update.FinalPrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperror.ErrStatusChanged
		}
		return nil, nil, fmt.Errorf("failed to update ride status: %w", err)
	}

	var rejected []models.ProposalDTO
	if update.From == models.RideStatusPending && update.To == models.RideStatusCancelled {
		err = tx.SelectContext(ctx, &rejected, `
			UPDATE proposals
			SET status = 'REJECTED', rejected_at = $2
			WHERE ride_id = $1 AND status = 'PENDING'
			RETURNING `+proposalColumns,
			update.RideID, update.At,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to reject proposals: %w", err)
		}
	}

	// Only the hold this ride placed is released. A provider who went
	// offline during the ride cleared it and stays offline.
	if update.ReleaseProviderID != nil {
		_, err = tx.ExecContext(ctx, `
			UPDATE providers
			SET is_available = TRUE, held_by_ride = NULL, updated_at = $2
			WHERE user_id = $1 AND held_by_ride = $3`,
			*update.ReleaseProviderID, update.At, update.RideID,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to release provider: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return dto.ToRide(), toProposals(rejected), nil
}
