package apperror

var (
	ErrRideNotFound     = NotFound("ride not found")
	ErrProposalNotFound = NotFound("proposal not found")
	ErrProviderNotFound = NotFound("provider not found")

	ErrNotRideRequester = Forbidden("only the ride's requester can do this")
	ErrNotRideParty     = Forbidden("actor is not a party to this ride")
	ErrRequesterOnly    = Forbidden("only requesters can do this")
	ErrProviderOnly     = Forbidden("only providers can do this")
	ErrOwnRide          = Forbidden("providers cannot bid on their own ride")

	ErrRideNotAvailable     = InvalidState("ride no longer available")
	ErrProposalNotAvailable = InvalidState("proposal no longer available")
	ErrProviderNotAvailable = InvalidState("provider no longer available")
	ErrRideNotCompleted     = InvalidState("ride is not completed")
	ErrStatusChanged        = InvalidState("ride status changed concurrently")
	ErrProviderBusy         = InvalidState("provider is bound to an active ride")

	ErrActiveRideExists  = Conflict("requester already has an active ride")
	ErrDuplicateProposal = Conflict("provider already submitted a proposal for this ride")
	ErrDuplicateRating   = Conflict("ride already rated by this evaluator")
)
