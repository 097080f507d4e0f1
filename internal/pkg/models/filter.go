package models

import (
	"time"

	"github.com/google/uuid"
)

// RideFilter is the typed criteria for listing rides. Nil fields do not filter.
type RideFilter struct {
	RequesterID   *uuid.UUID
	ProviderID    *uuid.UUID
	Statuses      []RideStatus
	ServiceType   *ServiceType
	Urgency       *Urgency
	Near          *GeoQuery
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	// Available asks for open PENDING work near a provider instead of its own rides
	Available bool
	Page      int
	PageSize  int
}

// Offset returns the row offset of the requested page
func (f RideFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// GeoQuery restricts rides to those whose origin lies within RadiusKm of a point
type GeoQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	// GeohashPrefixes is filled by the usecase and pre-filters rows in SQL
	GeohashPrefixes []string
}

// RidePage is one page of a ride listing
type RidePage struct {
	Rides    []*Ride `json:"rides"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}
