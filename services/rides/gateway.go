package rides

import (
	"context"

	"github.com/piresc/towjek/internal/pkg/models"
)

// RideGW defines the interface for ride event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/towjek/services/rides RideGW
type RideGW interface {
	PublishRideCreated(ctx context.Context, event models.RideEvent) error
	PublishRideStatusChanged(ctx context.Context, event models.RideEvent) error
	PublishRideRated(ctx context.Context, event models.RatingEvent) error
	PublishPaymentUpdated(ctx context.Context, event models.PaymentEvent) error
	PublishProposalSubmitted(ctx context.Context, event models.ProposalEvent) error
	PublishProposalAccepted(ctx context.Context, event models.ProposalEvent) error
	PublishProposalRejected(ctx context.Context, event models.ProposalEvent) error
	PublishProposalExpired(ctx context.Context, event models.ProposalEvent) error
}
