// Package lifecycle holds the ride status machine: which role may move a ride
// from one status to another, and what each move writes.
package lifecycle

import (
	"time"

	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
)

// rules maps a from-status and actor role to the statuses that role may set.
// PENDING has no provider entry: a ride only leaves PENDING towards ACCEPTED through proposal acceptance.
var rules = map[models.RideStatus]map[models.ActorRole][]models.RideStatus{
	models.RideStatusPending: {
		models.ActorRequester: {models.RideStatusCancelled},
		models.ActorAdmin:     {models.RideStatusCancelled},
	},
	models.RideStatusAccepted: {
		models.ActorRequester: {models.RideStatusCancelled},
		models.ActorProvider:  {models.RideStatusInProgress, models.RideStatusCancelled},
		models.ActorAdmin:     {models.RideStatusInProgress, models.RideStatusCancelled},
	},
	models.RideStatusInProgress: {
		models.ActorRequester: {models.RideStatusCancelled},
		models.ActorProvider:  {models.RideStatusCompleted, models.RideStatusCancelled},
		models.ActorAdmin:     {models.RideStatusCompleted, models.RideStatusCancelled},
	},
}

// Allowed reports whether role may move a ride from one status to another
func Allowed(from, to models.RideStatus, role models.ActorRole) bool {
	for _, s := range rules[from][role] {
		if s == to {
			return true
		}
	}
	return false
}

func reachable(from, to models.RideStatus) bool {
	for role := range rules[from] {
		if Allowed(from, to, role) {
			return true
		}
	}
	return false
}

// Authorize checks that actor may move ride to target. Checks run in order:
// terminal from-state, a move no role has, a move this role lacks, then the
// actor being bound to the ride.
func Authorize(ride *models.Ride, target models.RideStatus, actor models.Actor) error {
	if !target.Valid() {
		return apperror.Validation("unknown ride status %q", target)
	}
	if ride.Status.IsTerminal() {
		return apperror.InvalidState("ride is already %s", ride.Status)
	}
	if !reachable(ride.Status, target) {
		return apperror.InvalidState("ride cannot move from %s to %s", ride.Status, target)
	}
	if !Allowed(ride.Status, target, actor.Role) {
		return apperror.Forbidden("%s cannot move ride from %s to %s", actor.Role, ride.Status, target)
	}

	switch actor.Role {
	case models.ActorRequester:
		if !ride.IsRequester(actor.ID) {
			return apperror.ErrNotRideParty
		}
	case models.ActorProvider:
		if !ride.IsProvider(actor.ID) {
			return apperror.ErrNotRideParty
		}
	}
	return nil
}

// Plan builds the guarded write for an authorized move of ride to target
func Plan(ride *models.Ride, target models.RideStatus, actor models.Actor, at time.Time) models.RideStatusUpdate {
	update := models.RideStatusUpdate{
		RideID: ride.ID,
		From:   ride.Status,
		To:     target,
		At:     at,
	}

	if target == models.RideStatusCancelled {
		role := actor.Role
		update.CancelledBy = &role
	}
	if target.IsTerminal() && ride.ProviderID != nil {
		providerID := *ride.ProviderID
		update.ReleaseProviderID = &providerID
	}
	if target == models.RideStatusCompleted && ride.AgreedPrice != nil {
		price := *ride.AgreedPrice
		update.FinalPrice = &price
	}
	return update
}

// TimestampColumn is the rides column stamped when a ride enters status.
// ACCEPTED is stamped by proposal acceptance.
func TimestampColumn(status models.RideStatus) string {
	switch status {
	case models.RideStatusAccepted:
		return "accepted_at"
	case models.RideStatusInProgress:
		return "started_at"
	case models.RideStatusCompleted:
		return "completed_at"
	case models.RideStatusCancelled:
		return "cancelled_at"
	}
	return ""
}
