package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/pkg/middleware"
	"github.com/piresc/towjek/internal/pkg/models"
	nrpkg "github.com/piresc/towjek/internal/pkg/newrelic"
	"github.com/piresc/towjek/internal/utils"
)

// SubmitProposal records the calling provider's bid on a ride
func (h *RidesHandler) SubmitProposal(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	middleware.SetRideID(c, rideID.String())

	var req models.SubmitProposalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	proposal, err := h.rideUC.SubmitProposal(c.Request().Context(), actor, rideID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Proposal submitted successfully", proposal)
}

// ListProposals lists the bids on a ride, cheapest first
func (h *RidesHandler) ListProposals(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	proposals, err := h.rideUC.ListProposals(c.Request().Context(), actor, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Proposals retrieved successfully", proposals)
}

// AcceptProposal binds the ride to the chosen proposal's provider
func (h *RidesHandler) AcceptProposal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	proposalID, err := uuid.Parse(c.Param("proposalID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid proposal ID")
	}

	nrpkg.AddTransactionAttribute(txn, "ride.id", rideID.String())
	nrpkg.AddTransactionAttribute(txn, "proposal.id", proposalID.String())

	result, err := h.rideUC.AcceptProposal(c.Request().Context(), actor, rideID, proposalID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	logger.InfoCtx(c.Request().Context(), "Proposal accepted via HTTP",
		logger.UUID("ride_id", rideID),
		logger.UUID("proposal_id", proposalID))

	return utils.SuccessResponse(c, http.StatusOK, "Proposal accepted successfully", result)
}
