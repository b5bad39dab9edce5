package router

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"expensetracker/internal/auth"
	"expensetracker/internal/config"
	"expensetracker/internal/errors"
	"expensetracker/internal/handler"
	"expensetracker/internal/metrics"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	User      *handler.UserHandler
	Expense   *handler.ExpenseHandler
	Dashboard *handler.DashboardHandler
	Manager   *handler.ManagerHandler
	Approval  *handler.ApprovalHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	m *metrics.Metrics,
	logger *slog.Logger,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger, m))
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey:  auth.ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.Parse(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	secured.GET("/auth/me", h.User.Me)

	// Owner routes
	secured.GET("/expenses", h.Expense.ListExpenses)
	secured.POST("/expenses", h.Expense.CreateExpense)
	secured.GET("/expenses/:id", h.Expense.GetExpense)
	secured.PUT("/expenses/:id", h.Expense.UpdateExpense)
	secured.DELETE("/expenses/:id", h.Expense.DeleteExpense)
	secured.GET("/dashboard", h.Dashboard.GetDashboard)

	// Manager routes
	manager := secured.Group("/manager/expenses", auth.RequireRole(cfg.ManagerRole))
	manager.GET("", h.Manager.ListExpenses)
	manager.GET("/summary", h.Manager.Summary)
	manager.GET("/export", h.Manager.Export)
	manager.GET("/pending", h.Manager.Pending)
	manager.GET("/user/:userId", h.Manager.UserExpenses)
	manager.POST("/approve", h.Approval.Approve)
	manager.POST("/reject", h.Approval.Reject)
}

// requestLogger emits one slog record per request and counts it.
func requestLogger(logger *slog.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			m.Request(v.Method, strconv.Itoa(v.Status))
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
