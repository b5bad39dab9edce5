package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"expensetracker/internal/auth"
	"expensetracker/internal/service"
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Current user
// @Description Resolves the token's user by email, provisioning an external-auth user on first call.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	p, err := auth.FromContext(c)
	if err != nil {
		return errorResponse(err)
	}
	user, err := h.svc.Me(c.Request().Context(), p)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, user)
}
