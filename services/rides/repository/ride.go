package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/models"
)

// CreateRide inserts a PENDING ride. The partial unique index on active rides
// turns a concurrent second ride for the same requester into a conflict.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	query := `
		INSERT INTO rides (
			id, requester_id, provider_id, service_type,
			origin_latitude, origin_longitude, origin_address, origin_geohash,
			destination_latitude, destination_longitude, destination_address,
			status, estimated_price, description, payment_method, payment_status, urgency,
			created_at, updated_at
		) VALUES (
			:id, :requester_id, :provider_id, :service_type,
			:origin_latitude, :origin_longitude, :origin_address, :origin_geohash,
			:destination_latitude, :destination_longitude, :destination_address,
			:status, :estimated_price, :description, :payment_method, :payment_status, :urgency,
			:created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, ride.ToDTO()); err != nil {
		if isUniqueViolation(err, "rides_one_active_per_requester") {
			return nil, apperror.ErrActiveRideExists.Wrap(err)
		}
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	return ride, nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	var dto models.RideDTO
	err := r.db.GetContext(ctx, &dto, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return dto.ToRide(), nil
}

// ListRides returns the rides matching filter and the total match count.
// Geo queries come back unpaginated and ordered by creation; the caller
// applies the exact distance filter before paging.
func (r *RideRepo) ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, int, error) {
	where, args := buildRideFilter(filter)

	query := `SELECT ` + rideColumns + ` FROM rides` + where + ` ORDER BY created_at DESC`
	total := -1

	if filter.Near == nil && filter.PageSize > 0 {
		if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM rides`+where, args...); err != nil {
			return nil, 0, fmt.Errorf("failed to count rides: %w", err)
		}
		args = append(args, filter.PageSize, filter.Offset())
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	var dtos []models.RideDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list rides: %w", err)
	}

	rides := make([]*models.Ride, 0, len(dtos))
	for i := range dtos {
		rides = append(rides, dtos[i].ToRide())
	}
	if total < 0 {
		total = len(rides)
	}
	return rides, total, nil
}

func buildRideFilter(f models.RideFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.RequesterID != nil {
		add("requester_id = $%d", *f.RequesterID)
	}
	if f.ProviderID != nil {
		add("provider_id = $%d", *f.ProviderID)
	}
	if f.Available {
		conds = append(conds, "provider_id IS NULL")
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		add("status = ANY($%d)", pq.Array(statuses))
	}
	if f.ServiceType != nil {
		add("service_type = $%d", string(*f.ServiceType))
	}
	if f.Urgency != nil {
		add("urgency = $%d", string(*f.Urgency))
	}
	if f.CreatedAfter != nil {
		add("created_at >= $%d", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		add("created_at < $%d", *f.CreatedBefore)
	}
	if f.Near != nil && len(f.Near.GeohashPrefixes) > 0 {
		patterns := make([]string, len(f.Near.GeohashPrefixes))
		for i, p := range f.Near.GeohashPrefixes {
			patterns[i] = p + "%"
		}
		add("origin_geohash LIKE ANY($%d)", pq.Array(patterns))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// UpdatePaymentStatus records the settlement outcome of a completed ride
func (r *RideRepo) UpdatePaymentStatus(ctx context.Context, rideID uuid.UUID, status models.PaymentStatus, at time.Time) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET payment_status = $2, updated_at = $3
		WHERE id = $1 AND status = 'COMPLETED'
		RETURNING ` + rideColumns

	var dto models.RideDTO
	if err := r.db.GetContext(ctx, &dto, query, rideID, string(status), at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrRideNotCompleted
		}
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return dto.ToRide(), nil
}
