package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/middleware"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/utils"
	"github.com/piresc/towjek/services/rides"
)

const defaultRadiusKm = 10.0

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// CreateRide opens a new PENDING ride for the calling requester
func (h *RidesHandler) CreateRide(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), actor, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	middleware.SetRideID(c, ride.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// GetRide returns one ride visible to the caller
func (h *RidesHandler) GetRide(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	middleware.SetRideID(c, rideID.String())

	ride, err := h.rideUC.GetRide(c.Request().Context(), actor, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// ListRides lists rides scoped to the caller's role
func (h *RidesHandler) ListRides(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, err := parseRideFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	page, err := h.rideUC.ListRides(c.Request().Context(), actor, filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", page)
}

// parseRideFilter reads the listing query string. status accepts a comma separated list.
func parseRideFilter(c echo.Context) (models.RideFilter, error) {
	var (
		filter                      models.RideFilter
		lat, lon, radius            float64
		createdAfter, createdBefore time.Time
	)

	radius = defaultRadiusKm
	err := echo.QueryParamsBinder(c).
		Float64("lat", &lat).
		Float64("lon", &lon).
		Float64("radius_km", &radius).
		Bool("available", &filter.Available).
		Int("page", &filter.Page).
		Int("page_size", &filter.PageSize).
		Time("created_after", &createdAfter, time.RFC3339).
		Time("created_before", &createdBefore, time.RFC3339).
		BindError()
	if err != nil {
		return filter, err
	}

	if raw := c.QueryParam("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, models.RideStatus(strings.ToUpper(strings.TrimSpace(s))))
		}
	}
	if raw := c.QueryParam("service_type"); raw != "" {
		st := models.ServiceType(strings.ToUpper(raw))
		filter.ServiceType = &st
	}
	if raw := c.QueryParam("urgency"); raw != "" {
		u := models.Urgency(strings.ToUpper(raw))
		filter.Urgency = &u
	}
	if c.QueryParam("lat") != "" || c.QueryParam("lon") != "" {
		filter.Near = &models.GeoQuery{Latitude: lat, Longitude: lon, RadiusKm: radius}
	}
	if !createdAfter.IsZero() {
		filter.CreatedAfter = &createdAfter
	}
	if !createdBefore.IsZero() {
		filter.CreatedBefore = &createdBefore
	}

	return filter, nil
}

// UpdateRideStatus moves a ride through its lifecycle
func (h *RidesHandler) UpdateRideStatus(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	middleware.SetRideID(c, rideID.String())

	var req models.RideStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ride, err := h.rideUC.TransitionRide(c.Request().Context(), actor, rideID, req.Status)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Ride transition refused",
			logger.UUID("ride_id", rideID),
			logger.String("target", string(req.Status)),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated successfully", ride)
}

// UpdatePayment records the settlement of a completed ride
func (h *RidesHandler) UpdatePayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.PaymentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	ride, err := h.rideUC.UpdatePayment(c.Request().Context(), actor, rideID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment updated successfully", ride)
}

// RateRide stores the caller's rating of the other party
func (h *RidesHandler) RateRide(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	rating, err := h.rideUC.RateRide(c.Request().Context(), actor, rideID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride rated successfully", rating)
}
