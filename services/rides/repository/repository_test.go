package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/stretchr/testify/require"
)

var (
	rideCols = []string{
		"id", "requester_id", "provider_id", "service_type",
		"origin_latitude", "origin_longitude", "origin_address", "origin_geohash",
		"destination_latitude", "destination_longitude", "destination_address",
		"status", "estimated_price", "agreed_price", "final_price", "estimated_time",
		"description", "payment_method", "payment_status", "urgency",
		"created_at", "updated_at", "accepted_at", "started_at", "completed_at", "cancelled_at", "cancelled_by",
	}
	proposalCols = []string{
		"id", "ride_id", "provider_id", "price", "estimated_time", "message", "status",
		"expires_at", "created_at", "accepted_at", "rejected_at",
	}
	proposalJoinedCols = append(append([]string{}, proposalCols...),
		"provider_name", "vehicle_type", "vehicle_plate", "provider_rating")
	providerCols = []string{
		"user_id", "display_name", "vehicle_type", "vehicle_plate", "rating", "rating_count", "is_available", "updated_at",
	}

	testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
)

func setupRepoTest(t *testing.T) (*RideRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewRideRepository(&models.Config{}, db), mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func newPendingRide() *models.Ride {
	price := 110.0
	return &models.Ride{
		ID:             uuid.New(),
		RequesterID:    uuid.New(),
		ServiceType:    models.ServiceTowing,
		Origin:         models.Location{Latitude: -23.5505, Longitude: -46.6333, Address: "Av. Paulista"},
		OriginGeohash:  "6gyf4",
		Status:         models.RideStatusPending,
		EstimatedPrice: &price,
		PaymentMethod:  models.PaymentPix,
		PaymentStatus:  models.PaymentStatusPending,
		Urgency:        models.UrgencyHigh,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	}
}

func rideRow(rows *sqlmock.Rows, ride *models.Ride) *sqlmock.Rows {
	var providerID interface{}
	if ride.ProviderID != nil {
		providerID = ride.ProviderID.String()
	}
	var agreed interface{}
	if ride.AgreedPrice != nil {
		agreed = *ride.AgreedPrice
	}
	var cancelledBy interface{}
	if ride.CancelledBy != nil {
		cancelledBy = string(*ride.CancelledBy)
	}
	return rows.AddRow(
		ride.ID.String(), ride.RequesterID.String(), providerID, string(ride.ServiceType),
		ride.Origin.Latitude, ride.Origin.Longitude, ride.Origin.Address, ride.OriginGeohash,
		nil, nil, nil,
		string(ride.Status), nil, agreed, nil, nil,
		ride.Description, string(ride.PaymentMethod), string(ride.PaymentStatus), string(ride.Urgency),
		ride.CreatedAt, ride.UpdatedAt, nullTime(ride.AcceptedAt), nil, nil, nil, cancelledBy,
	)
}

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func rideRows(rides ...*models.Ride) *sqlmock.Rows {
	rows := sqlmock.NewRows(rideCols)
	for _, ride := range rides {
		rideRow(rows, ride)
	}
	return rows
}

func proposalRow(rows *sqlmock.Rows, p *models.Proposal) *sqlmock.Rows {
	return rows.AddRow(
		p.ID.String(), p.RideID.String(), p.ProviderID.String(), p.Price, p.EstimatedTime, p.Message, string(p.Status),
		p.ExpiresAt, p.CreatedAt, nullTime(p.AcceptedAt), nullTime(p.RejectedAt),
	)
}

func proposalRows(proposals ...*models.Proposal) *sqlmock.Rows {
	rows := sqlmock.NewRows(proposalCols)
	for _, p := range proposals {
		proposalRow(rows, p)
	}
	return rows
}

func newProposal(rideID uuid.UUID, price float64) *models.Proposal {
	return &models.Proposal{
		ID:            uuid.New(),
		RideID:        rideID,
		ProviderID:    uuid.New(),
		Price:         price,
		EstimatedTime: 25,
		Status:        models.ProposalStatusPending,
		ExpiresAt:     testNow.Add(10 * time.Minute),
		CreatedAt:     testNow,
	}
}
