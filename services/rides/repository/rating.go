package repository

import (
	"context"
	"fmt"

	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
)

// CreateRating stores a rating and folds it into the evaluated provider's
// running average. Evaluated requesters have no providers row; the update is a no-op for them.
func (r *RideRepo) CreateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO ratings (id, ride_id, evaluator_id, evaluated_id, score, comment, created_at)
		VALUES (:id, :ride_id, :evaluator_id, :evaluated_id, :score, :comment, :created_at)
	`, rating)
	if err != nil {
		if isUniqueViolation(err, "ratings_ride_evaluator_key") {
			return nil, apperror.ErrDuplicateRating.Wrap(err)
		}
		return nil, fmt.Errorf("failed to insert rating: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE providers
		SET rating = (rating * rating_count + $2) / (rating_count + 1),
			rating_count = rating_count + 1
		WHERE user_id = $1`,
		rating.EvaluatedID, rating.Score,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update provider rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rating, nil
}
