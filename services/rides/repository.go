package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/towjek/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, int, error)
	UpdateRideStatus(ctx context.Context, update models.RideStatusUpdate) (*models.Ride, []*models.Proposal, error)
	UpdatePaymentStatus(ctx context.Context, rideID uuid.UUID, status models.PaymentStatus, at time.Time) (*models.Ride, error)

	CreateProposal(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error)
	GetProposal(ctx context.Context, proposalID uuid.UUID) (*models.Proposal, error)
	ListProposals(ctx context.Context, rideID uuid.UUID, providerID *uuid.UUID) ([]*models.Proposal, error)
	AcceptProposal(ctx context.Context, params models.AcceptProposalParams) (*models.AcceptanceResult, error)
	ExpireProposals(ctx context.Context, now time.Time) ([]models.ExpiredProposal, error)

	CreateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error)

	GetProvider(ctx context.Context, providerID uuid.UUID) (*models.Provider, error)
	UpsertProvider(ctx context.Context, provider *models.Provider) (*models.Provider, error)
}
