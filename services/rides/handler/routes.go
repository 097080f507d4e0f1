package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/middleware"
	"github.com/piresc/towjek/internal/pkg/models"
	nrpkg "github.com/piresc/towjek/internal/pkg/newrelic"
	"github.com/piresc/towjek/services/rides"
	httpHandler "github.com/piresc/towjek/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
	limiter   middleware.WindowCounter
}

// NewHandler creates a new combined handler. limiter backs the proposal rate limit.
func NewHandler(
	ridesUC rides.RideUC,
	limiter middleware.WindowCounter,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(ridesUC),
		cfg:       cfg,
		limiter:   limiter,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	requesters := middleware.RequireRoles(models.ActorRequester)
	providers := middleware.RequireRoles(models.ActorProvider)
	requestersOrAdmins := middleware.RequireRoles(models.ActorRequester, models.ActorAdmin)
	proposalLimit := middleware.ProposalRateLimiter(h.limiter, h.cfg.RateLimit.ProposalLimit, h.cfg.RateLimit.ProposalPeriod)

	ride := e.Group("/ride", middleware.JWTAuthMiddleware(h.cfg.JWT))
	ride.POST("", nrpkg.TraceHandler("Rides.CreateRide", h.ridesHTTP.CreateRide), requesters)
	ride.GET("", nrpkg.TraceHandler("Rides.ListRides", h.ridesHTTP.ListRides))
	ride.GET("/:rideID", nrpkg.TraceHandler("Rides.GetRide", h.ridesHTTP.GetRide))
	ride.PUT("/:rideID/status", nrpkg.TraceHandler("Rides.UpdateRideStatus", h.ridesHTTP.UpdateRideStatus))
	ride.PUT("/:rideID/payment", nrpkg.TraceHandler("Rides.UpdatePayment", h.ridesHTTP.UpdatePayment), requestersOrAdmins)
	ride.POST("/:rideID/rating", nrpkg.TraceHandler("Rides.RateRide", h.ridesHTTP.RateRide))

	ride.POST("/:rideID/proposal", nrpkg.TraceHandler("Rides.SubmitProposal", h.ridesHTTP.SubmitProposal), providers, proposalLimit)
	ride.GET("/:rideID/proposal", nrpkg.TraceHandler("Rides.ListProposals", h.ridesHTTP.ListProposals))
	ride.PUT("/:rideID/proposal/:proposalID", nrpkg.TraceHandler("Rides.AcceptProposal", h.ridesHTTP.AcceptProposal), requesters)

	provider := e.Group("/provider", middleware.JWTAuthMiddleware(h.cfg.JWT))
	provider.PUT("/availability", nrpkg.TraceHandler("Rides.SetAvailability", h.ridesHTTP.SetAvailability), providers)

	// Internal routes for schedulers and other services (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKey.Internal))
	internal.POST("/proposals/expire", nrpkg.TraceHandler("Rides.ExpireProposals", h.ridesHTTP.ExpireProposals))
}
