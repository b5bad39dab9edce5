package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/export"
	"expensetracker/internal/model"
)

func newTestManagerService(expenses *MockExpenseRepository, users *MockUserRepository) *managerService {
	return &managerService{
		expenses: expenses,
		users:    NewUserService(users, nil, time.Minute),
		paging:   Paging{DefaultSize: 10, MaxSize: 100},
		now:      fixedClock(time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)),
	}
}

func TestManagerService_QueryNormalizesPageAndJoinsUser(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := newTestManagerService(expenses, new(MockUserRepository))

	lo := decimal.NewFromInt(15)
	hi := decimal.NewFromInt(100)
	q := model.ExpenseQuery{
		Filter: model.ExpenseFilter{Amounts: model.AmountRange{Min: &lo, Max: &hi}},
		Sort:   model.Sort{Key: model.SortByAmount, Descending: true},
		Page:   model.Page{Number: 0, Size: 500},
	}
	want := q
	want.Page = model.Page{Number: 1, Size: 100}

	rows := []model.Expense{{
		ID:     2,
		Amount: decimal.RequireFromString("20.00"),
		User:   &model.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
	}}
	expenses.On("Query", mock.Anything, want).Return(rows, int64(1), nil)

	page, err := svc.Query(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Alice", page.Items[0].UserName)
	assert.Equal(t, "alice@example.com", page.Items[0].UserEmail)
	assert.Equal(t, uint(2), page.Items[0].ID)
	expenses.AssertExpectations(t)
}

func TestManagerService_TotalPages(t *testing.T) {
	for _, tc := range []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0}, {1, 10, 1}, {10, 10, 1}, {11, 10, 2}, {25, 5, 5},
	} {
		page := newExpensePage(nil, tc.total, model.Page{Number: 1, Size: tc.size})
		assert.Equal(t, tc.want, page.TotalPages, "total=%d size=%d", tc.total, tc.size)
		assert.NotNil(t, page.Items)
	}
}

func TestManagerService_UserExpenses(t *testing.T) {
	expenses := new(MockExpenseRepository)
	users := new(MockUserRepository)
	svc := newTestManagerService(expenses, users)

	users.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)
	users.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, Name: "Carol"}, nil)
	expenses.On("Query", mock.Anything, mock.MatchedBy(func(q model.ExpenseQuery) bool {
		return q.Filter.UserID != nil && *q.Filter.UserID == 3 && q.Page.Size == 10
	})).Return([]model.Expense{}, int64(0), nil)

	_, err := svc.UserExpenses(context.Background(), 404, model.ExpenseQuery{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	page, err := svc.UserExpenses(context.Background(), 3, model.ExpenseQuery{})
	require.NoError(t, err)
	assert.Zero(t, page.TotalCount)
	expenses.AssertExpectations(t)

	_, err = svc.UserExpenses(context.Background(), 3, model.ExpenseQuery{})
	require.NoError(t, err)
	users.AssertNumberOfCalls(t, "FindByID", 3)
}

func TestManagerService_Summary(t *testing.T) {
	filter := model.ExpenseFilter{}

	t.Run("non-empty set", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		svc := newTestManagerService(expenses, new(MockUserRepository))

		top := []model.CategoryTotal{{Category: "Food", Total: decimal.NewFromInt(30)}}
		expenses.On("Totals", mock.Anything, filter).Return(model.ExpenseTotals{Total: decimal.NewFromInt(35), Count: 4}, nil)
		expenses.On("CategoryTotals", mock.Anything, filter, TopCategoryCount).Return(top, nil)

		s, err := svc.Summary(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, int64(4), s.Count)
		require.NotNil(t, s.Average)
		assert.True(t, s.Average.Equal(decimal.RequireFromString("8.75")))
		assert.Equal(t, top, s.TopCategories)
	})

	t.Run("empty set has no average", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		svc := newTestManagerService(expenses, new(MockUserRepository))

		expenses.On("Totals", mock.Anything, filter).Return(model.ExpenseTotals{Total: decimal.Zero}, nil)
		expenses.On("CategoryTotals", mock.Anything, filter, TopCategoryCount).Return([]model.CategoryTotal{}, nil)

		s, err := svc.Summary(context.Background(), filter)
		require.NoError(t, err)
		assert.Zero(t, s.Count)
		assert.Nil(t, s.Average)
		assert.True(t, s.Total.IsZero())
	})
}

func TestManagerService_PendingIsOldestFirst(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := newTestManagerService(expenses, new(MockUserRepository))

	expenses.On("Query", mock.Anything, mock.MatchedBy(func(q model.ExpenseQuery) bool {
		return q.Filter.Status != nil && *q.Filter.Status == model.ApprovalStatusPending &&
			q.Sort.Key == model.SortByDate && !q.Sort.Descending &&
			q.Page == model.Page{Number: 2, Size: 10}
	})).Return([]model.Expense{}, int64(12), nil)

	page, err := svc.Pending(context.Background(), model.Page{Number: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	expenses.AssertExpectations(t)
}

func TestManagerService_Export(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	dates := model.DateRange{From: &from}

	t.Run("csv with rows", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		svc := newTestManagerService(expenses, new(MockUserRepository))

		rows := []model.Expense{{
			Date:        time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
			Category:    "Travel",
			Amount:      decimal.RequireFromString("42.5"),
			Description: "taxi",
			User:        &model.User{Name: "Alice"},
		}}
		expenses.On("FindAll", mock.Anything, model.ExpenseFilter{Dates: dates}, model.DefaultSort).Return(rows, nil)

		file, err := svc.Export(context.Background(), dates, export.FormatCSV)
		require.NoError(t, err)
		assert.Equal(t, "Expenses_Export_20260520.csv", file.Filename)
		assert.Equal(t, "text/csv", file.ContentType)
		assert.Equal(t, 1, file.Rows)
		assert.Equal(t, "Date,User,Category,Amount,Description\n2026-05-03,Alice,Travel,42.50,taxi\n", string(file.Data))
	})

	t.Run("no matches yields header only", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		svc := newTestManagerService(expenses, new(MockUserRepository))

		expenses.On("FindAll", mock.Anything, mock.Anything, model.DefaultSort).Return([]model.Expense{}, nil)

		file, err := svc.Export(context.Background(), model.DateRange{}, export.FormatCSV)
		require.NoError(t, err)
		assert.Equal(t, 0, file.Rows)
		assert.Equal(t, "Date,User,Category,Amount,Description", strings.TrimSpace(string(file.Data)))
	})
}
