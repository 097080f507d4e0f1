package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/services/rides/mocks"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc   *rideUC
	repo *mocks.MockRideRepo
	gw   *mocks.MockRideGW
}

func setupUC(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRideRepo(ctrl)
	gw := mocks.NewMockRideGW(ctrl)

	cfg := &models.Config{}
	cfg.Pricing.BaseFare = 50
	cfg.Pricing.PerKmRate = 4
	cfg.Rides.ProposalTTL = 10 * time.Minute
	cfg.Rides.DefaultPageSize = 20
	cfg.Rides.MaxPageSize = 50
	cfg.Rides.GeohashPrecision = 5

	uc, err := NewRideUC(cfg, repo, gw)
	require.NoError(t, err)

	r := uc.(*rideUC)
	r.now = func() time.Time { return fixedNow }

	return fixture{uc: r, repo: repo, gw: gw}
}

func requester() models.Actor {
	return models.Actor{ID: uuid.New(), Role: models.ActorRequester}
}

func provider() models.Actor {
	return models.Actor{ID: uuid.New(), Role: models.ActorProvider}
}

func admin() models.Actor {
	return models.Actor{ID: uuid.New(), Role: models.ActorAdmin}
}

func pendingRide(requesterID uuid.UUID) *models.Ride {
	return &models.Ride{
		ID:            uuid.New(),
		RequesterID:   requesterID,
		ServiceType:   models.ServiceTowing,
		Origin:        models.Location{Latitude: -23.5505, Longitude: -46.6333},
		Status:        models.RideStatusPending,
		PaymentMethod: models.PaymentCash,
		PaymentStatus: models.PaymentStatusPending,
		Urgency:       models.UrgencyMedium,
		CreatedAt:     fixedNow.Add(-time.Minute),
		UpdatedAt:     fixedNow.Add(-time.Minute),
	}
}

func boundRide(requesterID, providerID uuid.UUID, status models.RideStatus) *models.Ride {
	ride := pendingRide(requesterID)
	ride.Status = status
	ride.ProviderID = &providerID
	price := 45.0
	ride.AgreedPrice = &price
	return ride
}

func pendingProposal(rideID, providerID uuid.UUID, price float64) *models.Proposal {
	return &models.Proposal{
		ID:            uuid.New(),
		RideID:        rideID,
		ProviderID:    providerID,
		Price:         price,
		EstimatedTime: 20,
		Status:        models.ProposalStatusPending,
		ExpiresAt:     fixedNow.Add(5 * time.Minute),
		CreatedAt:     fixedNow.Add(-5 * time.Minute),
	}
}

func availableProvider(id uuid.UUID) *models.Provider {
	return &models.Provider{UserID: id, DisplayName: "Guincho Silva", VehicleType: "flatbed", IsAvailable: true}
}
