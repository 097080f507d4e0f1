package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/utils"
)

// ExpireProposals runs one expiry sweep on demand; used by schedulers outside the process
func (h *RidesHandler) ExpireProposals(c echo.Context) error {
	n, err := h.rideUC.ExpireProposals(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Proposals expired", map[string]int{"expired": n})
}
