package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"expensetracker/internal/aggregate"
	"expensetracker/internal/auth"
	"expensetracker/internal/service"
)

// DashboardHandler serves the per-user dashboard.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Dashboard summary and charts
// @Description Unknown time frames fall back to month.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param timeFrame query string false "day, month or year" default(month)
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	p, err := auth.RequireUser(c)
	if err != nil {
		return errorResponse(err)
	}
	frame := aggregate.ParseTimeFrame(c.QueryParam("timeFrame"))
	dashboard, err := h.dashboardService.Build(c.Request().Context(), p.UserID, frame)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
