package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/metrics"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/utils"
)

// CreateRide opens a PENDING ride for a requester
func (uc *rideUC) CreateRide(ctx context.Context, actor models.Actor, req models.CreateRideRequest) (*models.Ride, error) {
	if actor.Role != models.ActorRequester {
		return nil, apperror.ErrRequesterOnly
	}
	if err := normalizeCreateRide(&req); err != nil {
		return nil, err
	}

	now := uc.now()
	ride := &models.Ride{
		ID:             uuid.New(),
		RequesterID:    actor.ID,
		ServiceType:    req.ServiceType,
		Origin:         req.Origin,
		OriginGeohash:  utils.EncodeLocation(req.Origin, uc.cfg.Rides.GeohashPrecision),
		Destination:    req.Destination,
		Status:         models.RideStatusPending,
		EstimatedPrice: uc.estimatePrice(req),
		Description:    req.Description,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  models.PaymentStatusPending,
		Urgency:        req.Urgency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := uc.repo.CreateRide(ctx, ride)
	if err != nil {
		return nil, err
	}
	metrics.RidesCreated.WithLabelValues(string(created.ServiceType)).Inc()

	logger.InfoCtx(ctx, "Ride created",
		logger.UUID("ride_id", created.ID),
		logger.UUID("requester_id", created.RequesterID),
		logger.String("service_type", string(created.ServiceType)))

	event := models.NewRideEvent(created, "", actor, now)
	uc.publish(ctx, "ride.created", func() error {
		return uc.gw.PublishRideCreated(ctx, event)
	})

	return created, nil
}

func normalizeCreateRide(req *models.CreateRideRequest) error {
	if !req.ServiceType.Valid() {
		return apperror.Validation("invalid service type %q", req.ServiceType)
	}
	if req.Urgency == "" {
		req.Urgency = models.UrgencyMedium
	} else if !req.Urgency.Valid() {
		return apperror.Validation("invalid urgency %q", req.Urgency)
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentCash
	} else if !req.PaymentMethod.Valid() {
		return apperror.Validation("invalid payment method %q", req.PaymentMethod)
	}
	if !req.Origin.Valid() {
		return apperror.Validation("origin coordinates out of range")
	}
	if req.Destination != nil && !req.Destination.Valid() {
		return apperror.Validation("destination coordinates out of range")
	}
	return nil
}

// estimatePrice prices a trip with a known destination: the service's base fare plus distance
func (uc *rideUC) estimatePrice(req models.CreateRideRequest) *float64 {
	if req.Destination == nil {
		return nil
	}
	distance := utils.CalculateDistance(
		utils.GeoPointFromLocation(req.Origin),
		utils.GeoPointFromLocation(*req.Destination),
	)
	price := uc.cfg.Pricing.BaseFare*req.ServiceType.FareMultiplier() + distance*uc.cfg.Pricing.PerKmRate
	price = math.Round(price*100) / 100
	return &price
}

// GetRide returns a ride the actor is allowed to see
func (uc *rideUC) GetRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !canView(ride, actor) {
		return nil, apperror.ErrNotRideParty
	}
	return ride, nil
}

// canView lets providers see open rides they might bid on
func canView(ride *models.Ride, actor models.Actor) bool {
	switch actor.Role {
	case models.ActorAdmin:
		return true
	case models.ActorRequester:
		return ride.IsRequester(actor.ID)
	case models.ActorProvider:
		return ride.IsProvider(actor.ID) || ride.Status == models.RideStatusPending
	}
	return false
}

// ListRides lists the rides visible to actor that match filter
func (uc *rideUC) ListRides(ctx context.Context, actor models.Actor, filter models.RideFilter) (*models.RidePage, error) {
	uc.normalizePage(&filter)

	switch actor.Role {
	case models.ActorRequester:
		filter.RequesterID = &actor.ID
		filter.ProviderID = nil
		filter.Available = false
	case models.ActorProvider:
		if filter.Available {
			if err := uc.scopeAvailableWork(ctx, actor, &filter); err != nil {
				return nil, err
			}
		} else {
			filter.ProviderID = &actor.ID
			filter.RequesterID = nil
		}
	case models.ActorAdmin:
	default:
		return nil, apperror.Forbidden("unknown role %q", actor.Role)
	}

	if filter.Near != nil {
		if filter.Near.RadiusKm <= 0 {
			return nil, apperror.Validation("radius_km must be greater than 0")
		}
		center := models.Location{Latitude: filter.Near.Latitude, Longitude: filter.Near.Longitude}
		if !center.Valid() {
			return nil, apperror.Validation("coordinates out of range")
		}
		filter.Near.GeohashPrefixes = utils.CoveringPrefixes(
			utils.GeoPointFromLocation(center), filter.Near.RadiusKm, uc.cfg.Rides.GeohashPrecision)
	}

	found, total, err := uc.repo.ListRides(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Near != nil {
		found = withinRadius(found, *filter.Near)
		total = len(found)
		found = pageOf(found, filter)
	}

	return &models.RidePage{
		Rides:    found,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// scopeAvailableWork narrows a provider's listing to open rides near it
func (uc *rideUC) scopeAvailableWork(ctx context.Context, actor models.Actor, filter *models.RideFilter) error {
	if filter.Near == nil {
		return apperror.Validation("lat and lon are required to list available rides")
	}
	provider, err := uc.repo.GetProvider(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !provider.IsAvailable {
		return apperror.ErrProviderNotAvailable
	}
	filter.Statuses = []models.RideStatus{models.RideStatusPending}
	filter.RequesterID = nil
	filter.ProviderID = nil
	return nil
}

func (uc *rideUC) normalizePage(filter *models.RideFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = uc.cfg.Rides.DefaultPageSize
	}
	if limit := uc.cfg.Rides.MaxPageSize; limit > 0 && filter.PageSize > limit {
		filter.PageSize = limit
	}
}

// withinRadius keeps rides whose origin is inside the query circle, nearest first
func withinRadius(rides []*models.Ride, near models.GeoQuery) []*models.Ride {
	center := utils.GeoPoint{Latitude: near.Latitude, Longitude: near.Longitude}
	kept := make([]*models.Ride, 0, len(rides))
	for _, ride := range rides {
		d := utils.CalculateDistance(center, utils.GeoPointFromLocation(ride.Origin))
		if d > near.RadiusKm {
			continue
		}
		d = math.Round(d*100) / 100
		ride.DistanceKm = &d
		kept = append(kept, ride)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return *kept[i].DistanceKm < *kept[j].DistanceKm
	})
	return kept
}

func pageOf(rides []*models.Ride, filter models.RideFilter) []*models.Ride {
	if filter.PageSize <= 0 {
		return rides
	}
	start := filter.Offset()
	if start >= len(rides) {
		return []*models.Ride{}
	}
	end := start + filter.PageSize
	if end > len(rides) {
		end = len(rides)
	}
	return rides[start:end]
}
