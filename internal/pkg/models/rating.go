package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is post-completion feedback left by one party of a ride about the other
type Rating struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RideID      uuid.UUID `json:"ride_id" db:"ride_id"`
	EvaluatorID uuid.UUID `json:"evaluator_id" db:"evaluator_id"`
	EvaluatedID uuid.UUID `json:"evaluated_id" db:"evaluated_id"`
	Score       int       `json:"score" db:"score"`
	Comment     string    `json:"comment,omitempty" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateRatingRequest is the payload for rating a completed ride
type CreateRatingRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=1000"`
}
