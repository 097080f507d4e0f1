package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRide_Success(t *testing.T) {
	f := setupUC(t)
	actor := requester()

	req := models.CreateRideRequest{
		ServiceType: models.ServiceJumpStart,
		Origin:      models.Location{Latitude: -23.5505, Longitude: -46.6333, Address: "Praça da Sé"},
		Destination: &models.Location{Latitude: -23.5614, Longitude: -46.6559},
	}

	f.repo.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			assert.Equal(t, actor.ID, ride.RequesterID)
			assert.Equal(t, models.RideStatusPending, ride.Status)
			assert.Nil(t, ride.ProviderID)
			assert.Equal(t, models.UrgencyMedium, ride.Urgency)
			assert.Equal(t, models.PaymentCash, ride.PaymentMethod)
			assert.Len(t, ride.OriginGeohash, 5)
			require.NotNil(t, ride.EstimatedPrice)
			// about 2.6 km at 4/km on top of a 50 base fare
			assert.InDelta(t, 60.4, *ride.EstimatedPrice, 1.0)
			return ride, nil
		})
	f.gw.EXPECT().
		PublishRideCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.RideEvent) error {
			assert.Equal(t, models.RideStatusPending, event.Status)
			assert.Equal(t, actor.ID, event.ActorID)
			return nil
		})

	ride, err := f.uc.CreateRide(context.Background(), actor, req)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, ride.CreatedAt)
}

func TestCreateRide_NoDestinationHasNoEstimate(t *testing.T) {
	f := setupUC(t)

	f.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			assert.Nil(t, ride.EstimatedPrice)
			return ride, nil
		})
	f.gw.EXPECT().PublishRideCreated(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	_, err := f.uc.CreateRide(context.Background(), requester(), models.CreateRideRequest{
		ServiceType: models.ServiceLockout,
		Origin:      models.Location{Latitude: 1, Longitude: 1},
	})
	assert.NoError(t, err)
}

func TestCreateRide_Rejected(t *testing.T) {
	origin := models.Location{Latitude: -23.5, Longitude: -46.6}

	tests := []struct {
		name   string
		actor  models.Actor
		req    models.CreateRideRequest
		expect apperror.Kind
	}{
		{"provider cannot request", provider(), models.CreateRideRequest{ServiceType: models.ServiceTowing, Origin: origin}, apperror.KindForbidden},
		{"unknown service", requester(), models.CreateRideRequest{ServiceType: "CAR_WASH", Origin: origin}, apperror.KindValidation},
		{"unknown urgency", requester(), models.CreateRideRequest{ServiceType: models.ServiceTowing, Origin: origin, Urgency: "NOW"}, apperror.KindValidation},
		{"unknown payment", requester(), models.CreateRideRequest{ServiceType: models.ServiceTowing, Origin: origin, PaymentMethod: "BARTER"}, apperror.KindValidation},
		{"origin out of range", requester(), models.CreateRideRequest{ServiceType: models.ServiceTowing, Origin: models.Location{Latitude: 91}}, apperror.KindValidation},
		{"destination out of range", requester(), models.CreateRideRequest{ServiceType: models.ServiceTowing, Origin: origin, Destination: &models.Location{Longitude: 200}}, apperror.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupUC(t)
			_, err := f.uc.CreateRide(context.Background(), tt.actor, tt.req)
			assert.Equal(t, tt.expect, apperror.KindOf(err))
		})
	}
}

// No duplicate active ride: the repository's conflict reaches the caller and nothing is published
func TestCreateRide_ActiveRideConflict(t *testing.T) {
	f := setupUC(t)

	f.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrActiveRideExists)

	ride, err := f.uc.CreateRide(context.Background(), requester(), models.CreateRideRequest{
		ServiceType: models.ServiceTowing,
		Origin:      models.Location{Latitude: 1, Longitude: 1},
	})
	assert.Nil(t, ride)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
}

func TestGetRide_Visibility(t *testing.T) {
	owner := requester()
	bound := provider()
	accepted := boundRide(owner.ID, bound.ID, models.RideStatusAccepted)
	open := pendingRide(owner.ID)

	tests := []struct {
		name    string
		ride    *models.Ride
		actor   models.Actor
		allowed bool
	}{
		{"owner", accepted, owner, true},
		{"bound provider", accepted, bound, true},
		{"admin", accepted, admin(), true},
		{"other requester", accepted, requester(), false},
		{"other provider on accepted ride", accepted, provider(), false},
		{"any provider on open ride", open, provider(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupUC(t)
			f.repo.EXPECT().GetRide(gomock.Any(), tt.ride.ID).Return(tt.ride, nil)

			got, err := f.uc.GetRide(context.Background(), tt.actor, tt.ride.ID)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.ride.ID, got.ID)
			} else {
				assert.ErrorIs(t, err, apperror.ErrNotRideParty)
			}
		})
	}
}

func TestListRides_RequesterScoped(t *testing.T) {
	f := setupUC(t)
	actor := requester()
	other := uuid.New()

	f.repo.EXPECT().
		ListRides(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.RideFilter) ([]*models.Ride, int, error) {
			assert.Equal(t, actor.ID, *filter.RequesterID)
			assert.Nil(t, filter.ProviderID)
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 50, filter.PageSize)
			return []*models.Ride{pendingRide(actor.ID)}, 1, nil
		})

	page, err := f.uc.ListRides(context.Background(), actor, models.RideFilter{RequesterID: &other, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Rides, 1)
}

func TestListRides_ProviderAvailableWorkNearby(t *testing.T) {
	f := setupUC(t)
	actor := provider()

	near := pendingRide(uuid.New())
	near.Origin = models.Location{Latitude: -23.5510, Longitude: -46.6340}
	nearer := pendingRide(uuid.New())
	nearer.Origin = models.Location{Latitude: -23.5506, Longitude: -46.6334}
	far := pendingRide(uuid.New())
	far.Origin = models.Location{Latitude: -23.70, Longitude: -46.80}

	f.repo.EXPECT().GetProvider(gomock.Any(), actor.ID).Return(availableProvider(actor.ID), nil)
	f.repo.EXPECT().
		ListRides(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.RideFilter) ([]*models.Ride, int, error) {
			assert.Equal(t, []models.RideStatus{models.RideStatusPending}, filter.Statuses)
			assert.Nil(t, filter.ProviderID)
			assert.NotEmpty(t, filter.Near.GeohashPrefixes)
			return []*models.Ride{near, far, nearer}, 3, nil
		})

	page, err := f.uc.ListRides(context.Background(), actor, models.RideFilter{
		Available: true,
		Near:      &models.GeoQuery{Latitude: -23.5505, Longitude: -46.6333, RadiusKm: 2},
	})
	require.NoError(t, err)
	require.Len(t, page.Rides, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, nearer.ID, page.Rides[0].ID)
	assert.Equal(t, near.ID, page.Rides[1].ID)
	assert.NotNil(t, page.Rides[0].DistanceKm)
}

func TestListRides_ProviderAvailableWork_Rejected(t *testing.T) {
	t.Run("needs a location", func(t *testing.T) {
		f := setupUC(t)
		_, err := f.uc.ListRides(context.Background(), provider(), models.RideFilter{Available: true})
		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("unavailable provider", func(t *testing.T) {
		f := setupUC(t)
		actor := provider()
		busy := availableProvider(actor.ID)
		busy.IsAvailable = false
		f.repo.EXPECT().GetProvider(gomock.Any(), actor.ID).Return(busy, nil)

		_, err := f.uc.ListRides(context.Background(), actor, models.RideFilter{
			Available: true,
			Near:      &models.GeoQuery{Latitude: 1, Longitude: 1, RadiusKm: 5},
		})
		assert.ErrorIs(t, err, apperror.ErrProviderNotAvailable)
	})
}

func TestPageOf(t *testing.T) {
	rides := []*models.Ride{{}, {}, {}, {}, {}}

	assert.Len(t, pageOf(rides, models.RideFilter{Page: 1, PageSize: 2}), 2)
	assert.Len(t, pageOf(rides, models.RideFilter{Page: 3, PageSize: 2}), 1)
	assert.Empty(t, pageOf(rides, models.RideFilter{Page: 4, PageSize: 2}))
}
