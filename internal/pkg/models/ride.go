package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusPending    RideStatus = "PENDING"
	RideStatusAccepted   RideStatus = "ACCEPTED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusCompleted  RideStatus = "COMPLETED"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// ActiveRideStatuses are the statuses that count towards the one-active-ride-per-requester rule
var ActiveRideStatuses = []RideStatus{RideStatusPending, RideStatusAccepted, RideStatusInProgress}

// Valid reports whether s is a known ride status
func (s RideStatus) Valid() bool {
	switch s {
	case RideStatusPending, RideStatusAccepted, RideStatusInProgress, RideStatusCompleted, RideStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the ride still occupies its requester
func (s RideStatus) IsActive() bool {
	return s == RideStatusPending || s == RideStatusAccepted || s == RideStatusInProgress
}

// IsTerminal reports whether no further transitions are possible
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// ServiceType is the kind of roadside assistance requested
type ServiceType string

const (
	ServiceTowing       ServiceType = "TOWING"
	ServiceJumpStart    ServiceType = "JUMP_START"
	ServiceTireChange   ServiceType = "TIRE_CHANGE"
	ServiceFuelDelivery ServiceType = "FUEL_DELIVERY"
	ServiceLockout      ServiceType = "LOCKOUT"
	ServiceWinchOut     ServiceType = "WINCH_OUT"
)

// serviceFareMultipliers scale the configured base fare per service type
var serviceFareMultipliers = map[ServiceType]float64{
	ServiceTowing:       2.0,
	ServiceJumpStart:    1.0,
	ServiceTireChange:   1.0,
	ServiceFuelDelivery: 1.2,
	ServiceLockout:      1.1,
	ServiceWinchOut:     1.8,
}

// Valid reports whether t is a known service type
func (t ServiceType) Valid() bool {
	_, ok := serviceFareMultipliers[t]
	return ok
}

// FareMultiplier returns the base fare multiplier for the service type
func (t ServiceType) FareMultiplier() float64 {
	if m, ok := serviceFareMultipliers[t]; ok {
		return m
	}
	return 1.0
}

// Urgency is how soon the requester needs help
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// Valid reports whether u is a known urgency level
func (u Urgency) Valid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// PaymentMethod is how the requester intends to pay
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
	PaymentPix  PaymentMethod = "PIX"
)

// Valid reports whether m is a known payment method
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentPix
}

// PaymentStatus tracks settlement of a ride
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Ride represents a service request through its whole lifecycle
type Ride struct {
	ID             uuid.UUID     `json:"id"`
	RequesterID    uuid.UUID     `json:"requester_id"`
	ProviderID     *uuid.UUID    `json:"provider_id,omitempty"`
	ServiceType    ServiceType   `json:"service_type"`
	Origin         Location      `json:"origin"`
	OriginGeohash  string        `json:"-"`
	Destination    *Location     `json:"destination,omitempty"`
	Status         RideStatus    `json:"status"`
	EstimatedPrice *float64      `json:"estimated_price,omitempty"`
	AgreedPrice    *float64      `json:"agreed_price,omitempty"`
	FinalPrice     *float64      `json:"final_price,omitempty"`
	EstimatedTime  *int          `json:"estimated_time,omitempty"` // minutes
	Description    string        `json:"description,omitempty"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	Urgency        Urgency       `json:"urgency"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	AcceptedAt     *time.Time    `json:"accepted_at,omitempty"`
	StartedAt      *time.Time    `json:"started_at,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`
	CancelledBy    *ActorRole    `json:"cancelled_by,omitempty"`

	// DistanceKm is filled by nearby queries only
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// IsRequester reports whether id is the ride's requester
func (r *Ride) IsRequester(id uuid.UUID) bool {
	return r.RequesterID == id
}

// IsProvider reports whether id is the ride's bound provider
func (r *Ride) IsProvider(id uuid.UUID) bool {
	return r.ProviderID != nil && *r.ProviderID == id
}

// RideDTO is used for database operations to flatten the nested Location structs
type RideDTO struct {
	ID                   uuid.UUID     `db:"id"`
	RequesterID          uuid.UUID     `db:"requester_id"`
	ProviderID           *uuid.UUID    `db:"provider_id"`
	ServiceType          ServiceType   `db:"service_type"`
	OriginLatitude       float64       `db:"origin_latitude"`
	OriginLongitude      float64       `db:"origin_longitude"`
	OriginAddress        string        `db:"origin_address"`
	OriginGeohash        string        `db:"origin_geohash"`
	DestinationLatitude  *float64      `db:"destination_latitude"`
	DestinationLongitude *float64      `db:"destination_longitude"`
	DestinationAddress   *string       `db:"destination_address"`
	Status               RideStatus    `db:"status"`
	EstimatedPrice       *float64      `db:"estimated_price"`
	AgreedPrice          *float64      `db:"agreed_price"`
	FinalPrice           *float64      `db:"final_price"`
	EstimatedTime        *int          `db:"estimated_time"`
	Description          string        `db:"description"`
	PaymentMethod        PaymentMethod `db:"payment_method"`
	PaymentStatus        PaymentStatus `db:"payment_status"`
	Urgency              Urgency       `db:"urgency"`
	CreatedAt            time.Time     `db:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at"`
	AcceptedAt           *time.Time    `db:"accepted_at"`
	StartedAt            *time.Time    `db:"started_at"`
	CompletedAt          *time.Time    `db:"completed_at"`
	CancelledAt          *time.Time    `db:"cancelled_at"`
	CancelledBy          *ActorRole    `db:"cancelled_by"`
}

// ToDTO converts a Ride to a RideDTO
func (r *Ride) ToDTO() *RideDTO {
	dto := &RideDTO{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		ProviderID:      r.ProviderID,
		ServiceType:     r.ServiceType,
		OriginLatitude:  r.Origin.Latitude,
		OriginLongitude: r.Origin.Longitude,
		OriginAddress:   r.Origin.Address,
		OriginGeohash:   r.OriginGeohash,
		Status:          r.Status,
		EstimatedPrice:  r.EstimatedPrice,
		AgreedPrice:     r.AgreedPrice,
		FinalPrice:      r.FinalPrice,
		EstimatedTime:   r.EstimatedTime,
		Description:     r.Description,
		PaymentMethod:   r.PaymentMethod,
		PaymentStatus:   r.PaymentStatus,
		Urgency:         r.Urgency,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		AcceptedAt:      r.AcceptedAt,
		StartedAt:       r.StartedAt,
		CompletedAt:     r.CompletedAt,
		CancelledAt:     r.CancelledAt,
		CancelledBy:     r.CancelledBy,
	}
	if r.Destination != nil {
		lat, lng, addr := r.Destination.Latitude, r.Destination.Longitude, r.Destination.Address
		dto.DestinationLatitude = &lat
		dto.DestinationLongitude = &lng
		dto.DestinationAddress = &addr
	}
	return dto
}

// ToRide converts a RideDTO to a Ride
func (dto *RideDTO) ToRide() *Ride {
	ride := &Ride{
		ID:          dto.ID,
		RequesterID: dto.RequesterID,
		ProviderID:  dto.ProviderID,
		ServiceType: dto.ServiceType,
		Origin: Location{
			Latitude:  dto.OriginLatitude,
			Longitude: dto.OriginLongitude,
			Address:   dto.OriginAddress,
		},
		OriginGeohash:  dto.OriginGeohash,
		Status:         dto.Status,
		EstimatedPrice: dto.EstimatedPrice,
		AgreedPrice:    dto.AgreedPrice,
		FinalPrice:     dto.FinalPrice,
		EstimatedTime:  dto.EstimatedTime,
		Description:    dto.Description,
		PaymentMethod:  dto.PaymentMethod,
		PaymentStatus:  dto.PaymentStatus,
		Urgency:        dto.Urgency,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
		AcceptedAt:     dto.AcceptedAt,
		StartedAt:      dto.StartedAt,
		CompletedAt:    dto.CompletedAt,
		CancelledAt:    dto.CancelledAt,
		CancelledBy:    dto.CancelledBy,
	}
	if dto.DestinationLatitude != nil && dto.DestinationLongitude != nil {
		dest := &Location{
			Latitude:  *dto.DestinationLatitude,
			Longitude: *dto.DestinationLongitude,
		}
		if dto.DestinationAddress != nil {
			dest.Address = *dto.DestinationAddress
		}
		ride.Destination = dest
	}
	return ride
}

// CreateRideRequest is the payload a requester sends to open a ride
type CreateRideRequest struct {
	ServiceType   ServiceType   `json:"service_type" validate:"required"`
	Origin        Location      `json:"origin"`
	Destination   *Location     `json:"destination,omitempty"`
	Description   string        `json:"description,omitempty" validate:"max=1000"`
	Urgency       Urgency       `json:"urgency,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}

// RideStatusRequest asks the transition engine to move a ride to Status
type RideStatusRequest struct {
	Status RideStatus `json:"status" validate:"required"`
}

// PaymentUpdateRequest records the settlement outcome of a completed ride
type PaymentUpdateRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" validate:"required,oneof=PAID FAILED"`
}

// RideStatusUpdate is a guarded status write: it only applies while the ride is still in From
type RideStatusUpdate struct {
	RideID      uuid.UUID
	From        RideStatus
	To          RideStatus
	At          time.Time
	CancelledBy *ActorRole
	// ReleaseProviderID is set when the bound provider becomes free again
	ReleaseProviderID *uuid.UUID
	FinalPrice        *float64
}
