package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
)

// GetProvider retrieves a provider's marketplace state
func (r *RideRepo) GetProvider(ctx context.Context, providerID uuid.UUID) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.GetContext(ctx, &provider, `SELECT `+providerColumns+` FROM providers WHERE user_id = $1`, providerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return &provider, nil
}

// UpsertProvider registers a provider or updates its profile and availability.
// The provider row is locked before the active-ride check, so an acceptance
// that binds the provider concurrently is either visible to the check or
// waits for this transaction. Asking to become available while bound to an
// accepted or in-progress ride fails with ErrProviderBusy and writes nothing.
func (r *RideRepo) UpsertProvider(ctx context.Context, p *models.Provider) (*models.Provider, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO providers (user_id, is_available, updated_at)
		VALUES ($1, FALSE, $2)
		ON CONFLICT (user_id) DO NOTHING`,
		p.UserID, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register provider: %w", err)
	}

	var locked uuid.UUID
	err = tx.GetContext(ctx, &locked, `SELECT user_id FROM providers WHERE user_id = $1 FOR UPDATE`, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock provider: %w", err)
	}

	if p.IsAvailable {
		var busy bool
		err = tx.GetContext(ctx, &busy, `
			SELECT EXISTS (
				SELECT 1 FROM rides
				WHERE provider_id = $1 AND status IN ('ACCEPTED', 'IN_PROGRESS')
			)`,
			p.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to check active rides: %w", err)
		}
		if busy {
			return nil, apperror.ErrProviderBusy
		}
	}

	var provider models.Provider
	err = tx.GetContext(ctx, &provider, `
		UPDATE providers
		SET display_name  = COALESCE(NULLIF($2, ''), display_name),
			vehicle_type  = COALESCE(NULLIF($3, ''), vehicle_type),
			vehicle_plate = COALESCE(NULLIF($4, ''), vehicle_plate),
			is_available  = $5,
			held_by_ride  = NULL,
			updated_at    = $6
		WHERE user_id = $1
		RETURNING `+providerColumns,
		p.UserID, p.DisplayName, p.VehicleType, p.VehiclePlate, p.IsAvailable, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &provider, nil
}
