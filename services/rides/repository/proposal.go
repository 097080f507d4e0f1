package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
)

// CreateProposal stores a PENDING bid only while the ride is still open.
// The ride row is share-locked for the insert. A bid that arrives while an
// acceptance or cancellation holds the ride waits for it, then re-reads the
// ride and inserts nothing. A bid that gets the lock first commits before the
// acceptance proceeds, so the acceptance sees it and rejects it.
func (r *RideRepo) CreateProposal(ctx context.Context, p *models.Proposal) (*models.Proposal, error) {
	query := `
		WITH inserted AS (
			INSERT INTO proposals (
				id, ride_id, provider_id, price, estimated_time, message, status, expires_at, created_at
			)
			SELECT $1, rd.id, $3, $4, $5, $6, 'PENDING', $7, $8
			FROM rides rd
			WHERE rd.id = $2 AND rd.status = 'PENDING' AND rd.provider_id IS NULL
			FOR SHARE OF rd
			RETURNING *
		)
		SELECT ` + proposalJoinedColumns + `
		FROM inserted p
		LEFT JOIN providers pr ON pr.user_id = p.provider_id
	`

	var dto models.ProposalDTO
	err := r.db.QueryRowxContext(ctx, query,
		p.ID,
		p.RideID,
		p.ProviderID,
		p.Price,
		p.EstimatedTime,
		p.Message,
		p.ExpiresAt,
		p.CreatedAt,
	).StructScan(&dto)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, apperror.ErrRideNotAvailable
		case isUniqueViolation(err, "proposals_ride_provider_key"):
			return nil, apperror.ErrDuplicateProposal.Wrap(err)
		case isForeignKeyViolation(err):
			return nil, apperror.ErrProviderNotFound.Wrap(err)
		}
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	return dto.ToProposal(), nil
}

// GetProposal retrieves a proposal with its provider profile
func (r *RideRepo) GetProposal(ctx context.Context, proposalID uuid.UUID) (*models.Proposal, error) {
	query := `
		SELECT ` + proposalJoinedColumns + `
		FROM proposals p
		LEFT JOIN providers pr ON pr.user_id = p.provider_id
		WHERE p.id = $1
	`

	var dto models.ProposalDTO
	if err := r.db.GetContext(ctx, &dto, query, proposalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return dto.ToProposal(), nil
}

// ListProposals returns a ride's proposals cheapest first, optionally only one provider's
func (r *RideRepo) ListProposals(ctx context.Context, rideID uuid.UUID, providerID *uuid.UUID) ([]*models.Proposal, error) {
	query := `
		SELECT ` + proposalJoinedColumns + `
		FROM proposals p
		LEFT JOIN providers pr ON pr.user_id = p.provider_id
		WHERE p.ride_id = $1`
	args := []interface{}{rideID}

	if providerID != nil {
		query += ` AND p.provider_id = $2`
		args = append(args, *providerID)
	}
	query += ` ORDER BY p.price ASC, p.created_at ASC`

	var dtos []models.ProposalDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return toProposals(dtos), nil
}

// ExpireProposals moves every PENDING proposal whose expiry has passed to EXPIRED
// and reports each one with the requester of its ride
func (r *RideRepo) ExpireProposals(ctx context.Context, now time.Time) ([]models.ExpiredProposal, error) {
	query := `
		UPDATE proposals p
		SET status = 'EXPIRED'
		FROM rides r
		WHERE r.id = p.ride_id AND p.status = 'PENDING' AND p.expires_at <= $1
		RETURNING ` + proposalQualifiedColumns + `, r.requester_id`

	var dtos []models.ExpiredProposalDTO
	if err := r.db.SelectContext(ctx, &dtos, query, now); err != nil {
		return nil, fmt.Errorf("failed to expire proposals: %w", err)
	}

	expired := make([]models.ExpiredProposal, 0, len(dtos))
	for i := range dtos {
		expired = append(expired, models.ExpiredProposal{
			Proposal:    dtos[i].ToProposal(),
			RequesterID: dtos[i].RequesterID,
		})
	}
	return expired, nil
}
