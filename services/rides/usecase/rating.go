package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
)

// RateRide stores one party's rating of the other after completion
func (uc *rideUC) RateRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, req models.CreateRatingRequest) (*models.Rating, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, apperror.Validation("score must be between 1 and 5")
	}

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	isRequester := actor.Role == models.ActorRequester && ride.IsRequester(actor.ID)
	isProvider := actor.Role == models.ActorProvider && ride.IsProvider(actor.ID)
	if !isRequester && !isProvider {
		return nil, apperror.ErrNotRideParty
	}
	if ride.Status != models.RideStatusCompleted || ride.ProviderID == nil {
		return nil, apperror.ErrRideNotCompleted
	}

	evaluated := ride.RequesterID
	if isRequester {
		evaluated = *ride.ProviderID
	}

	now := uc.now()
	rating, err := uc.repo.CreateRating(ctx, &models.Rating{
		ID:          uuid.New(),
		RideID:      ride.ID,
		EvaluatorID: actor.ID,
		EvaluatedID: evaluated,
		Score:       req.Score,
		Comment:     req.Comment,
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	event := models.RatingEvent{
		RatingID:    rating.ID,
		RideID:      rating.RideID,
		EvaluatorID: rating.EvaluatorID,
		EvaluatedID: rating.EvaluatedID,
		Score:       rating.Score,
		OccurredAt:  now,
	}
	uc.publish(ctx, "ride.rated", func() error {
		return uc.gw.PublishRideRated(ctx, event)
	})

	return rating, nil
}
