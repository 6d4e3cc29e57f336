package handlers

import (
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the home page aggregate
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the user, net worth, balance sheet and accounts
// @Summary Dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse[models.Dashboard]
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.dashboardService.GetDashboard(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAPIResponse(*dashboard))
}
