package models

import (
	"time"

	"github.com/google/uuid"
)

// RideEvent is published when a ride is created or changes status
type RideEvent struct {
	RideID         uuid.UUID   `json:"ride_id"`
	RequesterID    uuid.UUID   `json:"requester_id"`
	ProviderID     *uuid.UUID  `json:"provider_id,omitempty"`
	ServiceType    ServiceType `json:"service_type"`
	Status         RideStatus  `json:"status"`
	PreviousStatus RideStatus  `json:"previous_status,omitempty"`
	ActorID        uuid.UUID   `json:"actor_id"`
	ActorRole      ActorRole   `json:"actor_role"`
	Origin         Location    `json:"origin"`
	OccurredAt     time.Time   `json:"occurred_at"`
}

// NewRideEvent builds the event for ride as changed by actor
func NewRideEvent(ride *Ride, previous RideStatus, actor Actor, at time.Time) RideEvent {
	return RideEvent{
		RideID:         ride.ID,
		RequesterID:    ride.RequesterID,
		ProviderID:     ride.ProviderID,
		ServiceType:    ride.ServiceType,
		Status:         ride.Status,
		PreviousStatus: previous,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		Origin:         ride.Origin,
		OccurredAt:     at,
	}
}

// ProposalEvent is published whenever a proposal is created or resolved
type ProposalEvent struct {
	ProposalID    uuid.UUID      `json:"proposal_id"`
	RideID        uuid.UUID      `json:"ride_id"`
	ProviderID    uuid.UUID      `json:"provider_id"`
	RequesterID   uuid.UUID      `json:"requester_id,omitempty"`
	Price         float64        `json:"price"`
	EstimatedTime int            `json:"estimated_time"`
	Status        ProposalStatus `json:"status"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// NewProposalEvent builds the event for p, addressed to the requester of its ride
func NewProposalEvent(p *Proposal, requesterID uuid.UUID, at time.Time) ProposalEvent {
	return ProposalEvent{
		ProposalID:    p.ID,
		RideID:        p.RideID,
		ProviderID:    p.ProviderID,
		RequesterID:   requesterID,
		Price:         p.Price,
		EstimatedTime: p.EstimatedTime,
		Status:        p.Status,
		OccurredAt:    at,
	}
}

// RatingEvent is published after a rating is stored
type RatingEvent struct {
	RatingID    uuid.UUID `json:"rating_id"`
	RideID      uuid.UUID `json:"ride_id"`
	EvaluatorID uuid.UUID `json:"evaluator_id"`
	EvaluatedID uuid.UUID `json:"evaluated_id"`
	Score       int       `json:"score"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// PaymentEvent is published after the payment status of a ride changes
type PaymentEvent struct {
	RideID        uuid.UUID     `json:"ride_id"`
	RequesterID   uuid.UUID     `json:"requester_id"`
	ProviderID    *uuid.UUID    `json:"provider_id,omitempty"`
	Amount        *float64      `json:"amount,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
