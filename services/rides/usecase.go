package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/towjek/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, actor models.Actor, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context, actor models.Actor, filter models.RideFilter) (*models.RidePage, error)
	TransitionRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, target models.RideStatus) (*models.Ride, error)
	UpdatePayment(ctx context.Context, actor models.Actor, rideID uuid.UUID, req models.PaymentUpdateRequest) (*models.Ride, error)

	SubmitProposal(ctx context.Context, actor models.Actor, rideID uuid.UUID, req models.SubmitProposalRequest) (*models.Proposal, error)
	ListProposals(ctx context.Context, actor models.Actor, rideID uuid.UUID) ([]*models.Proposal, error)
	AcceptProposal(ctx context.Context, actor models.Actor, rideID, proposalID uuid.UUID) (*models.AcceptanceResult, error)
	ExpireProposals(ctx context.Context) (int, error)

	RateRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, req models.CreateRatingRequest) (*models.Rating, error)
	SetAvailability(ctx context.Context, actor models.Actor, req models.AvailabilityRequest) (*models.Provider, error)
}
