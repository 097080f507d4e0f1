package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/models"
)

// UpdatePayment records whether a completed ride was paid
func (uc *rideUC) UpdatePayment(ctx context.Context, actor models.Actor, rideID uuid.UUID, req models.PaymentUpdateRequest) (*models.Ride, error) {
	if req.PaymentStatus != models.PaymentStatusPaid && req.PaymentStatus != models.PaymentStatusFailed {
		return nil, apperror.Validation("payment_status must be one of [PAID FAILED]")
	}

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !(actor.Role == models.ActorRequester && ride.IsRequester(actor.ID)) {
		return nil, apperror.ErrNotRideRequester
	}
	if ride.Status != models.RideStatusCompleted {
		return nil, apperror.ErrRideNotCompleted
	}

	now := uc.now()
	updated, err := uc.repo.UpdatePaymentStatus(ctx, ride.ID, req.PaymentStatus, now)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Payment status updated",
		logger.UUID("ride_id", updated.ID),
		logger.String("payment_status", string(updated.PaymentStatus)))

	event := models.PaymentEvent{
		RideID:        updated.ID,
		RequesterID:   updated.RequesterID,
		ProviderID:    updated.ProviderID,
		Amount:        updated.FinalPrice,
		PaymentMethod: updated.PaymentMethod,
		PaymentStatus: updated.PaymentStatus,
		OccurredAt:    now,
	}
	uc.publish(ctx, "ride.payment_updated", func() error {
		return uc.gw.PublishPaymentUpdated(ctx, event)
	})

	return updated, nil
}
