package constants

// Redis key formats
const (
	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{subject}

	// Rate limited resources
	ResourceProposalSubmit = "proposal_submit"
)
