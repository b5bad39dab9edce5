package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "expensetracker/internal/errors"
)

// ContextKey is where echo-jwt stores the parsed token.
const ContextKey = "user"

// Principal is the authenticated caller as seen by services.
type Principal struct {
	UserID uint
	Email  string
	Name   string
	Role   string
}

// ActorName is the identity recorded on approval decisions.
func (p Principal) ActorName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

// PrincipalFromClaims converts validated claims into a Principal.
func PrincipalFromClaims(c *Claims) Principal {
	return Principal{UserID: c.UserID, Email: c.Email, Name: c.Name, Role: c.Role}
}

// FromContext extracts the principal placed by the JWT middleware.
func FromContext(c echo.Context) (Principal, error) {
	token, ok := c.Get(ContextKey).(*jwt.Token)
	if !ok || token == nil {
		return Principal{}, apperrors.ErrMissingPrincipal
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Principal{}, apperrors.ErrMissingPrincipal
	}
	return PrincipalFromClaims(claims), nil
}

// RequireUser returns the principal and fails when it carries no user id.
func RequireUser(c echo.Context) (Principal, error) {
	p, err := FromContext(c)
	if err != nil {
		return Principal{}, err
	}
	if p.UserID == 0 {
		return Principal{}, apperrors.ErrMissingPrincipal
	}
	return p, nil
}

// RequireRole rejects requests whose principal lacks role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := FromContext(c)
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !strings.EqualFold(p.Role, role) {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrManagerRequired)
				return echo.NewHTTPError(http.StatusForbidden, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
