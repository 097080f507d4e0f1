package gateway

import (
	"context"

	"github.com/piresc/towjek/internal/pkg/circuitbreaker"
	"github.com/piresc/towjek/internal/pkg/constants"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/pkg/newrelic"
	"github.com/piresc/towjek/services/rides"
)

// JSONPublisher publishes a value marshalled as JSON; *nats.Client satisfies it
type JSONPublisher interface {
	PublishJSON(subject string, v interface{}) error
}

// RideGW handles NATS publishing for ride and proposal events
type RideGW struct {
	publisher JSONPublisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewRideGW creates a new ride gateway. Publishing fails fast while the
// broker keeps rejecting events.
func NewRideGW(publisher JSONPublisher) rides.RideGW {
	return &RideGW{
		publisher: publisher,
		breaker:   circuitbreaker.New(circuitbreaker.DefaultConfig("nats-publish")),
	}
}

func (g *RideGW) publish(ctx context.Context, subject string, event interface{}) error {
	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		return newrelic.WithPublishSegment(ctx, subject, func() error {
			return g.publisher.PublishJSON(subject, event)
		})
	})
}

// PublishRideCreated announces a new PENDING ride to nearby providers
func (g *RideGW) PublishRideCreated(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.SubjectRideCreated, event)
}

// PublishRideStatusChanged publishes every ride status transition
func (g *RideGW) PublishRideStatusChanged(ctx context.Context, event models.RideEvent) error {
	return g.publish(ctx, constants.SubjectRideStatusChanged, event)
}

func (g *RideGW) PublishRideRated(ctx context.Context, event models.RatingEvent) error {
	return g.publish(ctx, constants.SubjectRideRated, event)
}

func (g *RideGW) PublishPaymentUpdated(ctx context.Context, event models.PaymentEvent) error {
	return g.publish(ctx, constants.SubjectRidePaymentUpdated, event)
}

// PublishProposalSubmitted notifies the requester of a new bid
func (g *RideGW) PublishProposalSubmitted(ctx context.Context, event models.ProposalEvent) error {
	return g.publish(ctx, constants.SubjectProposalSubmitted, event)
}

func (g *RideGW) PublishProposalAccepted(ctx context.Context, event models.ProposalEvent) error {
	return g.publish(ctx, constants.SubjectProposalAccepted, event)
}

func (g *RideGW) PublishProposalRejected(ctx context.Context, event models.ProposalEvent) error {
	return g.publish(ctx, constants.SubjectProposalRejected, event)
}

func (g *RideGW) PublishProposalExpired(ctx context.Context, event models.ProposalEvent) error {
	return g.publish(ctx, constants.SubjectProposalExpired, event)
}
