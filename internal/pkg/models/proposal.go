package models

import (
	"time"

	"github.com/google/uuid"
)

// ProposalStatus represents the status of a provider's bid
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "PENDING"
	ProposalStatusAccepted ProposalStatus = "ACCEPTED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
	ProposalStatusExpired  ProposalStatus = "EXPIRED"
)

// IsTerminal reports whether the proposal was already resolved
func (s ProposalStatus) IsTerminal() bool {
	return s != ProposalStatusPending
}

// Proposal is a provider's priced offer on a pending ride
type Proposal struct {
	ID            uuid.UUID        `json:"id"`
	RideID        uuid.UUID        `json:"ride_id"`
	ProviderID    uuid.UUID        `json:"provider_id"`
	Price         float64          `json:"price"`
	EstimatedTime int              `json:"estimated_time"` // minutes
	Message       string           `json:"message,omitempty"`
	Status        ProposalStatus   `json:"status"`
	ExpiresAt     time.Time        `json:"expires_at"`
	CreatedAt     time.Time        `json:"created_at"`
	AcceptedAt    *time.Time       `json:"accepted_at,omitempty"`
	RejectedAt    *time.Time       `json:"rejected_at,omitempty"`
	Provider      *ProviderProfile `json:"provider,omitempty"`
}

// IsExpired reports whether the proposal can no longer be accepted at now
func (p *Proposal) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Acceptable reports whether the proposal is still open at now
func (p *Proposal) Acceptable(now time.Time) bool {
	return p.Status == ProposalStatusPending && !p.IsExpired(now)
}

// ProposalDTO is the row shape of a proposal joined with its provider's public profile
type ProposalDTO struct {
	ID             uuid.UUID      `db:"id"`
	RideID         uuid.UUID      `db:"ride_id"`
	ProviderID     uuid.UUID      `db:"provider_id"`
	Price          float64        `db:"price"`
	EstimatedTime  int            `db:"estimated_time"`
	Message        string         `db:"message"`
	Status         ProposalStatus `db:"status"`
	ExpiresAt      time.Time      `db:"expires_at"`
	CreatedAt      time.Time      `db:"created_at"`
	AcceptedAt     *time.Time     `db:"accepted_at"`
	RejectedAt     *time.Time     `db:"rejected_at"`
	ProviderName   *string        `db:"provider_name"`
	VehicleType    *string        `db:"vehicle_type"`
	VehiclePlate   *string        `db:"vehicle_plate"`
	ProviderRating *float64       `db:"provider_rating"`
}

// ToProposal converts a ProposalDTO to a Proposal
func (dto *ProposalDTO) ToProposal() *Proposal {
	p := &Proposal{
		ID:            dto.ID,
		RideID:        dto.RideID,
		ProviderID:    dto.ProviderID,
		Price:         dto.Price,
		EstimatedTime: dto.EstimatedTime,
		Message:       dto.Message,
		Status:        dto.Status,
		ExpiresAt:     dto.ExpiresAt,
		CreatedAt:     dto.CreatedAt,
		AcceptedAt:    dto.AcceptedAt,
		RejectedAt:    dto.RejectedAt,
	}
	if dto.ProviderName != nil {
		p.Provider = &ProviderProfile{
			ID:   dto.ProviderID,
			Name: *dto.ProviderName,
		}
		if dto.VehicleType != nil {
			p.Provider.VehicleType = *dto.VehicleType
		}
		if dto.VehiclePlate != nil {
			p.Provider.VehiclePlate = *dto.VehiclePlate
		}
		if dto.ProviderRating != nil {
			p.Provider.Rating = *dto.ProviderRating
		}
	}
	return p
}

// ExpiredProposal is a proposal the sweeper just expired, with the requester to notify
type ExpiredProposal struct {
	Proposal    *Proposal
	RequesterID uuid.UUID
}

// ExpiredProposalDTO is the row shape returned when proposals are expired
type ExpiredProposalDTO struct {
	ProposalDTO
	RequesterID uuid.UUID `db:"requester_id"`
}

// SubmitProposalRequest is the payload a provider sends to bid on a ride
type SubmitProposalRequest struct {
	Price         float64 `json:"price" validate:"required,gt=0"`
	EstimatedTime int     `json:"estimated_time" validate:"required,gt=0"`
	Message       string  `json:"message,omitempty" validate:"max=500"`
}

// AcceptProposalParams carries everything the acceptance transaction writes
type AcceptProposalParams struct {
	RideID        uuid.UUID
	ProposalID    uuid.UUID
	ProviderID    uuid.UUID
	Price         float64
	EstimatedTime int
	At            time.Time
}

// AcceptanceResult is the committed outcome of an acceptance
type AcceptanceResult struct {
	Ride     *Ride
	Accepted *Proposal
	Rejected []*Proposal
}
