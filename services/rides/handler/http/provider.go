package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/middleware"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/utils"
)

// SetAvailability registers the calling provider or toggles its availability
func (h *RidesHandler) SetAvailability(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	provider, err := h.rideUC.SetAvailability(c.Request().Context(), actor, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated successfully", provider)
}
