package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"expensetracker/internal/auth"
	"expensetracker/internal/errors"
	"expensetracker/internal/model"
	"expensetracker/internal/service"
)

// ExpenseHandler handles the caller's own expenses.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest is the owner-editable part of an expense.
type ExpenseRequest struct {
	Date        string           `json:"date" validate:"required" example:"2026-03-04"`
	Category    string           `json:"category" validate:"required,max=50" example:"Food"`
	Description string           `json:"description" validate:"max=255" example:"Team lunch"`
	Amount      *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number" example:"12.50"`
}

func (r ExpenseRequest) content() (model.ExpenseContent, error) {
	date, err := parseTime(r.Date, false)
	if err != nil {
		return model.ExpenseContent{}, errors.ErrInvalidDate
	}
	return model.ExpenseContent{
		Date:        date,
		Category:    r.Category,
		Description: r.Description,
		Amount:      *r.Amount,
	}, nil
}

func bindExpense(c echo.Context) (model.ExpenseContent, error) {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return model.ExpenseContent{}, badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return model.ExpenseContent{}, badRequest(err.Error(), "VALIDATION_ERROR")
	}
	content, err := req.content()
	if err != nil {
		return model.ExpenseContent{}, errorResponse(err)
	}
	return content, nil
}

// ListExpenses godoc
// @Summary List own expenses
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Expense
// @Failure 401 {object} errors.ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	p, err := auth.RequireUser(c)
	if err != nil {
		return errorResponse(err)
	}
	expenses, err := h.expenseService.List(c.Request().Context(), p.UserID)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, expenses)
}

// GetExpense godoc
// @Summary Get an own expense
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} model.Expense
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	p, err := auth.RequireUser(c)
	if err != nil {
		return errorResponse(err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	expense, err := h.expenseService.Get(c.Request().Context(), p.UserID, id)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, expense)
}

// CreateExpense godoc
// @Summary Submit an expense
// @Description New expenses start in Pending state.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExpenseRequest true "Expense data"
// @Success 201 {object} model.Expense
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	p, err := auth.RequireUser(c)
	if err != nil {
		return errorResponse(err)
	}
	content, err := bindExpense(c)
	if err != nil {
		return err
	}
	expense, err := h.expenseService.Create(c.Request().Context(), p.UserID, content)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusCreated, expense)
}

// UpdateExpense godoc
// @Summary Update an own expense
// @Description Only date, category, description and amount change. Approval fields are kept.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Param request body ExpenseRequest true "Expense data"
// @Success 200 {object} model.Expense
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	p, err := auth.RequireUser(c)
	if err != nil {
		return errorResponse(err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	content, err := bindExpense(c)
	if err != nil {
		return err
	}
	expense, err := h.expenseService.Update(c.Request().Context(), p.UserID, id, content)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense godoc
// @Summary Delete an own expense
// @Tags expenses
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	p, err := auth.RequireUser(c)
	if err != nil {
		return errorResponse(err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.expenseService.Delete(c.Request().Context(), p.UserID, id); err != nil {
		return errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}
