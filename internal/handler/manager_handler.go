package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"expensetracker/internal/export"
	"expensetracker/internal/service"
)

// ManagerHandler exposes queries over every user's expenses.
type ManagerHandler struct {
	managerService service.ManagerService
}

// NewManagerHandler creates a new manager handler.
func NewManagerHandler(managerService service.ManagerService) *ManagerHandler {
	return &ManagerHandler{managerService: managerService}
}

// ListExpenses godoc
// @Summary Query all expenses
// @Tags manager
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD, date-only covers the whole day"
// @Param minAmount query number false "Lower amount bound"
// @Param maxAmount query number false "Upper amount bound"
// @Param sortBy query string false "date or amount" default(date)
// @Param descending query bool false "Sort direction" default(true)
// @Param page query int false "1-based page" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} service.ExpensePage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /manager/expenses [get]
func (h *ManagerHandler) ListExpenses(c echo.Context) error {
	q, err := parseQuery(c)
	if err != nil {
		return errorResponse(err)
	}
	page, err := h.managerService.Query(c.Request().Context(), q)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, page)
}

// UserExpenses godoc
// @Summary Query one user's expenses
// @Tags manager
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param startDate query string false "RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD"
// @Param minAmount query number false "Lower amount bound"
// @Param maxAmount query number false "Upper amount bound"
// @Param sortBy query string false "date or amount"
// @Param descending query bool false "Sort direction"
// @Param page query int false "1-based page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} service.ExpensePage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /manager/expenses/user/{userId} [get]
func (h *ManagerHandler) UserExpenses(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	q, err := parseQuery(c)
	if err != nil {
		return errorResponse(err)
	}
	page, err := h.managerService.UserExpenses(c.Request().Context(), userID, q)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Summary godoc
// @Summary Totals over filtered expenses
// @Description Average is null when nothing matches.
// @Tags manager
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD"
// @Param minAmount query number false "Lower amount bound"
// @Param maxAmount query number false "Upper amount bound"
// @Success 200 {object} service.ExpenseSummary
// @Failure 400 {object} errors.ErrorResponse
// @Router /manager/expenses/summary [get]
func (h *ManagerHandler) Summary(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return errorResponse(err)
	}
	summary, err := h.managerService.Summary(c.Request().Context(), filter)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// Pending godoc
// @Summary Pending approval queue
// @Description Oldest first.
// @Tags manager
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} service.ExpensePage
// @Router /manager/expenses/pending [get]
func (h *ManagerHandler) Pending(c echo.Context) error {
	page, err := h.managerService.Pending(c.Request().Context(), parsePage(c))
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Export godoc
// @Summary Export expenses
// @Tags manager
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param startDate query string false "RFC3339 or YYYY-MM-DD"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse
// @Router /manager/expenses/export [get]
func (h *ManagerHandler) Export(c echo.Context) error {
	dates, err := parseDateRange(c)
	if err != nil {
		return errorResponse(err)
	}
	file, err := h.managerService.Export(c.Request().Context(), dates, export.ParseFormat(c.QueryParam("format")))
	if err != nil {
		return errorResponse(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+strconv.Quote(file.Filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
