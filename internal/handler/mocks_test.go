package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"expensetracker/internal/aggregate"
	"expensetracker/internal/auth"
	"expensetracker/internal/export"
	"expensetracker/internal/model"
	"expensetracker/internal/service"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

// withPrincipal stands in for the JWT middleware.
func withPrincipal(p auth.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(auth.ContextKey, &jwt.Token{Valid: true, Claims: &auth.Claims{
				UserID: p.UserID, Email: p.Email, Name: p.Name, Role: p.Role,
			}})
			return next(c)
		}
	}
}

type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) List(ctx context.Context, userID uint) ([]model.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseService) Get(ctx context.Context, userID, id uint) (*model.Expense, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseService) Create(ctx context.Context, userID uint, content model.ExpenseContent) (*model.Expense, error) {
	args := m.Called(ctx, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseService) Update(ctx context.Context, userID, id uint, content model.ExpenseContent) (*model.Expense, error) {
	args := m.Called(ctx, userID, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseService) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Build(ctx context.Context, userID uint, frame aggregate.TimeFrame) (*service.Dashboard, error) {
	args := m.Called(ctx, userID, frame)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

type MockManagerService struct {
	mock.Mock
}

func (m *MockManagerService) Query(ctx context.Context, q model.ExpenseQuery) (*service.ExpensePage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExpensePage), args.Error(1)
}

func (m *MockManagerService) UserExpenses(ctx context.Context, userID uint, q model.ExpenseQuery) (*service.ExpensePage, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExpensePage), args.Error(1)
}

func (m *MockManagerService) Summary(ctx context.Context, filter model.ExpenseFilter) (*service.ExpenseSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExpenseSummary), args.Error(1)
}

func (m *MockManagerService) Pending(ctx context.Context, page model.Page) (*service.ExpensePage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExpensePage), args.Error(1)
}

func (m *MockManagerService) Export(ctx context.Context, dates model.DateRange, format export.Format) (*service.ExportFile, error) {
	args := m.Called(ctx, dates, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) Approve(ctx context.Context, ids []uint, actor string) (int64, error) {
	args := m.Called(ctx, ids, actor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApprovalService) Reject(ctx context.Context, ids []uint, actor string, reason *string) (int64, error) {
	args := m.Called(ctx, ids, actor, reason)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Exists(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) Me(ctx context.Context, p auth.Principal) (*model.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
