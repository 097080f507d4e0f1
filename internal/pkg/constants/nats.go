package constants

// NATS Subjects
const (
	// Ride events
	SubjectRideCreated        = "ride.created"
	SubjectRideStatusChanged  = "ride.status_changed"
	SubjectRideRated          = "ride.rated"
	SubjectRidePaymentUpdated = "ride.payment_updated"

	// Proposal events
	SubjectProposalSubmitted = "proposal.submitted"
	SubjectProposalAccepted  = "proposal.accepted"
	SubjectProposalRejected  = "proposal.rejected"
	SubjectProposalExpired   = "proposal.expired"
)
