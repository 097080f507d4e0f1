package models

import (
	"time"

	"github.com/google/uuid"
)

// Provider is the marketplace-side state of a service provider
type Provider struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	DisplayName  string    `json:"display_name" db:"display_name"`
	VehicleType  string    `json:"vehicle_type" db:"vehicle_type"`
	VehiclePlate string    `json:"vehicle_plate" db:"vehicle_plate"`
	Rating       float64   `json:"rating" db:"rating"`
	RatingCount  int       `json:"rating_count" db:"rating_count"`
	IsAvailable  bool      `json:"is_available" db:"is_available"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Profile returns the public fields shown alongside a proposal
func (p *Provider) Profile() *ProviderProfile {
	return &ProviderProfile{
		ID:           p.UserID,
		Name:         p.DisplayName,
		VehicleType:  p.VehicleType,
		VehiclePlate: p.VehiclePlate,
		Rating:       p.Rating,
	}
}

// ProviderProfile is the public view of a provider
type ProviderProfile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	VehicleType  string    `json:"vehicle_type,omitempty"`
	VehiclePlate string    `json:"vehicle_plate,omitempty"`
	Rating       float64   `json:"rating"`
}

// AvailabilityRequest toggles whether a provider accepts new work.
// The first call registers the provider; empty profile fields keep their stored value
type AvailabilityRequest struct {
	IsAvailable  *bool  `json:"is_available" validate:"required"`
	DisplayName  string `json:"display_name,omitempty" validate:"max=120"`
	VehicleType  string `json:"vehicle_type,omitempty" validate:"max=60"`
	VehiclePlate string `json:"vehicle_plate,omitempty" validate:"max=20"`
}
