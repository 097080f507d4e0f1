package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/models"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

const rideColumns = `id, requester_id, provider_id, service_type,
	origin_latitude, origin_longitude, origin_address, origin_geohash,
	destination_latitude, destination_longitude, destination_address,
	status, estimated_price, agreed_price, final_price, estimated_time,
	description, payment_method, payment_status, urgency,
	created_at, updated_at, accepted_at, started_at, completed_at, cancelled_at, cancelled_by`

const proposalColumns = `id, ride_id, provider_id, price, estimated_time, message, status,
	expires_at, created_at, accepted_at, rejected_at`

const proposalQualifiedColumns = `p.id, p.ride_id, p.provider_id, p.price, p.estimated_time, p.message, p.status,
	p.expires_at, p.created_at, p.accepted_at, p.rejected_at`

const proposalJoinedColumns = proposalQualifiedColumns + `,
	pr.display_name AS provider_name, pr.vehicle_type, pr.vehicle_plate, pr.rating AS provider_rating`

const providerColumns = `user_id, display_name, vehicle_type, vehicle_plate, rating, rating_count, is_available, updated_at`

// RideRepo is the Postgres implementation of rides.RideRepo
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *RideRepo {
	logger.Info("Initializing ride repository")
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// pgErrorCode returns the SQLSTATE and constraint name of a Postgres error
func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isUniqueViolation(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	return code == uniqueViolation && (constraint == "" || name == constraint)
}

func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == foreignKeyViolation
}

func toProposals(dtos []models.ProposalDTO) []*models.Proposal {
	proposals := make([]*models.Proposal, 0, len(dtos))
	for i := range dtos {
		proposals = append(proposals, dtos[i].ToProposal())
	}
	return proposals
}

func nullableRole(role *models.ActorRole) *string {
	if role == nil {
		return nil
	}
	s := string(*role)
	return &s
}
