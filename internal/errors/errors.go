package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every domain error wraps exactly one of them.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
)

var (
	// ErrExpenseNotFound is returned when an expense does not exist or is not visible to the caller.
	ErrExpenseNotFound = fmt.Errorf("expense %w", ErrNotFound)
	// ErrUserNotFound is returned when a user id has no corresponding user.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	// ErrNoExpenseIDs is returned when a bulk operation receives an empty id set.
	ErrNoExpenseIDs = fmt.Errorf("%w: no expense IDs provided", ErrInvalidRequest)
	// ErrUnknownExpenseIDs is returned when a bulk operation names an expense that does not exist.
	ErrUnknownExpenseIDs = fmt.Errorf("%w: some expense IDs are invalid", ErrInvalidRequest)
	// ErrInvalidAmount is returned when amount is missing or below the minimum.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be at least 0.01", ErrInvalidRequest)
	// ErrInvalidCategory is returned when category is empty or too long.
	ErrInvalidCategory = fmt.Errorf("%w: category is required and must be at most 50 characters", ErrInvalidRequest)
	// ErrInvalidDescription is returned when description is too long.
	ErrInvalidDescription = fmt.Errorf("%w: description must be at most 255 characters", ErrInvalidRequest)
	// ErrInvalidDate is returned when an expense has no date.
	ErrInvalidDate = fmt.Errorf("%w: date is required", ErrInvalidRequest)
	// ErrInvalidDateRange is returned when a date bound cannot be parsed or start is after end.
	ErrInvalidDateRange = fmt.Errorf("%w: invalid date range", ErrInvalidRequest)
	// ErrInvalidAmountRange is returned when an amount bound cannot be parsed or min is above max.
	ErrInvalidAmountRange = fmt.Errorf("%w: invalid amount range", ErrInvalidRequest)
	// ErrMissingPrincipal is returned when no authenticated user id accompanies the call.
	ErrMissingPrincipal = fmt.Errorf("%w: missing authenticated user", ErrUnauthorized)
	// ErrManagerRequired is returned when a non-manager calls a manager operation.
	ErrManagerRequired = fmt.Errorf("%w: manager role required", ErrForbidden)
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrExpenseNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EXPENSE_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrNoExpenseIDs), errors.Is(err, ErrUnknownExpenseIDs):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EXPENSE_IDS")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrInvalidAmountRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FILTER")
	case errors.Is(err, ErrInvalidRequest):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_REQUEST")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
