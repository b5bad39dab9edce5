package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"expensetracker/internal/auth"
	"expensetracker/internal/service"
)

// ApprovalHandler applies manager decisions to batches of expenses.
type ApprovalHandler struct {
	approvalService service.ApprovalService
}

// NewApprovalHandler creates a new approval handler.
func NewApprovalHandler(approvalService service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// ApproveRequest names the expenses to approve. A bare JSON array is accepted too.
type ApproveRequest struct {
	ExpenseIDs []uint `json:"expenseIds"`
}

// RejectRequest names the expenses to reject and an optional reason.
type RejectRequest struct {
	ExpenseIDs      []uint  `json:"expenseIds"`
	RejectionReason *string `json:"rejectionReason"`
}

// TransitionResponse reports how many expenses changed.
type TransitionResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// Approve godoc
// @Summary Approve expenses
// @Description All ids must exist or nothing changes.
// @Tags manager
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ApproveRequest true "Expense ids, or a bare array of ids"
// @Success 200 {object} TransitionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /manager/expenses/approve [post]
func (h *ApprovalHandler) Approve(c echo.Context) error {
	p, err := auth.FromContext(c)
	if err != nil {
		return errorResponse(err)
	}
	ids, err := bindApproveIDs(c.Request().Body)
	if err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	n, err := h.approvalService.Approve(c.Request().Context(), ids, p.ActorName())
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, TransitionResponse{Message: "expenses approved", Count: n})
}

// Reject godoc
// @Summary Reject expenses
// @Description All ids must exist or nothing changes.
// @Tags manager
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RejectRequest true "Expense ids and reason"
// @Success 200 {object} TransitionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /manager/expenses/reject [post]
func (h *ApprovalHandler) Reject(c echo.Context) error {
	p, err := auth.FromContext(c)
	if err != nil {
		return errorResponse(err)
	}
	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	n, err := h.approvalService.Reject(c.Request().Context(), req.ExpenseIDs, p.ActorName(), req.RejectionReason)
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, TransitionResponse{Message: "expenses rejected", Count: n})
}

// bindApproveIDs accepts either [1,2] or {"expenseIds":[1,2]}.
func bindApproveIDs(body io.Reader) ([]uint, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	if raw[0] == '[' {
		var ids []uint
		err := json.Unmarshal(raw, &ids)
		return ids, err
	}
	var req ApproveRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return req.ExpenseIDs, nil
}
