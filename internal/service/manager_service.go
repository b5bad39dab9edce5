package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"expensetracker/internal/export"
	"expensetracker/internal/metrics"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

// TopCategoryCount is how many categories a manager summary lists.
const TopCategoryCount = 5

// ExpenseView is an expense joined with its owner's name and email.
type ExpenseView struct {
	model.Expense
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// ExpensePage is one page of a manager query.
type ExpensePage struct {
	Items      []ExpenseView `json:"items"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// ExpenseSummary aggregates a filtered expense set. Average is nil when Count is zero.
type ExpenseSummary struct {
	Total         decimal.Decimal       `json:"total"`
	Average       *decimal.Decimal      `json:"average"`
	Count         int64                 `json:"count"`
	TopCategories []model.CategoryTotal `json:"topCategories"`
}

// ExportFile is a rendered report ready to be served as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	Rows        int
}

// Paging holds page size limits applied to every manager query.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// ManagerService queries the whole expense population.
type ManagerService interface {
	Query(ctx context.Context, q model.ExpenseQuery) (*ExpensePage, error)
	// UserExpenses is Query narrowed to one existing user.
	UserExpenses(ctx context.Context, userID uint, q model.ExpenseQuery) (*ExpensePage, error)
	Summary(ctx context.Context, filter model.ExpenseFilter) (*ExpenseSummary, error)
	// Pending lists Pending expenses oldest first.
	Pending(ctx context.Context, page model.Page) (*ExpensePage, error)
	Export(ctx context.Context, dates model.DateRange, format export.Format) (*ExportFile, error)
}

type managerService struct {
	expenses repository.ExpenseRepository
	users    UserService
	metrics  *metrics.Metrics
	paging   Paging
	now      Clock
}

// NewManagerService creates a new manager service.
func NewManagerService(expenses repository.ExpenseRepository, users UserService, m *metrics.Metrics, paging Paging) ManagerService {
	if paging.DefaultSize < 1 {
		paging.DefaultSize = model.DefaultPageSize
	}
	if paging.MaxSize < paging.DefaultSize {
		paging.MaxSize = model.MaxPageSize
	}
	return &managerService{
		expenses: expenses,
		users:    users,
		metrics:  m,
		paging:   paging,
		now:      systemClock,
	}
}

func (s *managerService) Query(ctx context.Context, q model.ExpenseQuery) (*ExpensePage, error) {
	q.Page = q.Page.Normalize(s.paging.DefaultSize, s.paging.MaxSize)

	expenses, total, err := s.expenses.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	return newExpensePage(expenses, total, q.Page), nil
}

func (s *managerService) UserExpenses(ctx context.Context, userID uint, q model.ExpenseQuery) (*ExpensePage, error) {
	if err := s.users.Exists(ctx, userID); err != nil {
		return nil, err
	}
	q.Filter.UserID = &userID
	return s.Query(ctx, q)
}

func (s *managerService) Summary(ctx context.Context, filter model.ExpenseFilter) (*ExpenseSummary, error) {
	totals, err := s.expenses.Totals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}
	top, err := s.expenses.CategoryTotals(ctx, filter, TopCategoryCount)
	if err != nil {
		return nil, fmt.Errorf("sum categories: %w", err)
	}

	summary := &ExpenseSummary{
		Total:         totals.Total,
		Count:         totals.Count,
		TopCategories: top,
	}
	if totals.Count > 0 {
		avg := totals.Total.Div(decimal.NewFromInt(totals.Count))
		summary.Average = &avg
	}
	return summary, nil
}

func (s *managerService) Pending(ctx context.Context, page model.Page) (*ExpensePage, error) {
	status := model.ApprovalStatusPending
	return s.Query(ctx, model.ExpenseQuery{
		Filter: model.ExpenseFilter{Status: &status},
		Sort:   model.Sort{Key: model.SortByDate, Descending: false},
		Page:   page,
	})
}

func (s *managerService) Export(ctx context.Context, dates model.DateRange, format export.Format) (*ExportFile, error) {
	expenses, err := s.expenses.FindAll(ctx, model.ExpenseFilter{Dates: dates}, model.DefaultSort)
	if err != nil {
		return nil, fmt.Errorf("load export rows: %w", err)
	}

	rows := export.RowsFromExpenses(expenses)
	data, err := export.Render(format, rows)
	if err != nil {
		return nil, fmt.Errorf("render %s export: %w", format, err)
	}
	s.metrics.Exported(string(format), len(rows))

	return &ExportFile{
		Filename:    format.Filename(s.now()),
		ContentType: format.ContentType(),
		Data:        data,
		Rows:        len(rows),
	}, nil
}

func newExpensePage(expenses []model.Expense, total int64, page model.Page) *ExpensePage {
	items := make([]ExpenseView, 0, len(expenses))
	for _, e := range expenses {
		view := ExpenseView{Expense: e}
		if e.User != nil {
			view.UserName = e.User.Name
			view.UserEmail = e.User.Email
		}
		items = append(items, view)
	}

	pages := 0
	if total > 0 {
		pages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	return &ExpensePage{
		Items:      items,
		TotalCount: total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: pages,
	}
}
