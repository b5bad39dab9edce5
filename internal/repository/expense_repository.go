package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"expensetracker/internal/model"
)

// ErrMissingRecords is returned by ApplyTransition when at least one id does not exist.
// Nothing is written in that case.
var ErrMissingRecords = errors.New("one or more records do not exist")

// ExpenseRepository defines expense persistence operations.
//
// Content and approval fields are written through different methods:
// UpdateContent never touches approval columns and ApplyTransition never
// touches content columns.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	FindForOwner(ctx context.Context, id, userID uint) (*model.Expense, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Expense, error)
	ListByUserInRange(ctx context.Context, userID uint, from, to time.Time) ([]model.Expense, error)
	Recent(ctx context.Context, userID uint, limit int) ([]model.Expense, error)
	UpdateContent(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, id, userID uint) error

	// Query filters, sorts and paginates across all users. The returned
	// expenses have User preloaded; total is the match count before paging.
	Query(ctx context.Context, q model.ExpenseQuery) (expenses []model.Expense, total int64, err error)
	// FindAll is Query without pagination.
	FindAll(ctx context.Context, filter model.ExpenseFilter, sort model.Sort) ([]model.Expense, error)
	Totals(ctx context.Context, filter model.ExpenseFilter) (model.ExpenseTotals, error)
	// CategoryTotals groups by category, total descending then name ascending.
	// A limit of zero returns every category.
	CategoryTotals(ctx context.Context, filter model.ExpenseFilter, limit int) ([]model.CategoryTotal, error)

	// ApplyTransition writes t to every id inside one transaction. ids must be
	// distinct. If any id is missing it returns ErrMissingRecords and writes nothing.
	ApplyTransition(ctx context.Context, ids []uint, t model.Transition) (int64, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create inserts a new expense.
func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// FindForOwner finds an expense by id that belongs to userID.
func (r *expenseRepository) FindForOwner(ctx context.Context, id, userID uint) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListByUser lists every expense of a user, newest first.
func (r *expenseRepository) ListByUser(ctx context.Context, userID uint) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(ordered(model.DefaultSort)).
		Find(&expenses).Error
	return expenses, err
}

// ListByUserInRange lists a user's expenses dated within [from, to], oldest first.
func (r *expenseRepository) ListByUserInRange(ctx context.Context, userID uint, from, to time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from.UTC(), to.UTC()).
		Scopes(ordered(model.Sort{Key: model.SortByDate})).
		Find(&expenses).Error
	return expenses, err
}

// Recent returns the user's latest expenses by date.
func (r *expenseRepository) Recent(ctx context.Context, userID uint, limit int) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(ordered(model.DefaultSort)).
		Limit(limit).
		Find(&expenses).Error
	return expenses, err
}

// UpdateContent saves the owner-editable columns of expense.
func (r *expenseRepository) UpdateContent(ctx context.Context, expense *model.Expense) error {
	res := r.db.WithContext(ctx).
		Model(expense).
		Where("user_id = ?", expense.UserID).
		Select(model.ContentColumns).
		Updates(expense)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero for a no-op update, so confirm the row still exists.
		if _, err := r.FindForOwner(ctx, expense.ID, expense.UserID); err != nil {
			return err
		}
	}
	return nil
}

// Delete physically removes an expense owned by userID.
func (r *expenseRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Query runs a filtered, sorted and paginated search over all expenses.
func (r *expenseRepository) Query(ctx context.Context, q model.ExpenseQuery) ([]model.Expense, int64, error) {
	var total int64
	if err := r.filtered(ctx, q.Filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []model.Expense
	err := r.filtered(ctx, q.Filter).
		Scopes(ordered(q.Sort)).
		Preload("User").
		Offset(q.Page.Offset()).
		Limit(q.Page.Size).
		Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// FindAll returns every matching expense with its owner preloaded.
func (r *expenseRepository) FindAll(ctx context.Context, filter model.ExpenseFilter, sort model.Sort) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.filtered(ctx, filter).
		Scopes(ordered(sort)).
		Preload("User").
		Find(&expenses).Error
	return expenses, err
}

// Totals sums and counts the matching expenses. Sums are rounded to cents
// since sqlite accumulates decimal columns as REAL.
func (r *expenseRepository) Totals(ctx context.Context, filter model.ExpenseFilter) (model.ExpenseTotals, error) {
	var totals model.ExpenseTotals
	err := r.filtered(ctx, filter).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Scan(&totals).Error
	totals.Total = totals.Total.Round(model.AmountScale)
	return totals, err
}

// CategoryTotals sums the matching expenses per category.
func (r *expenseRepository) CategoryTotals(ctx context.Context, filter model.ExpenseFilter, limit int) ([]model.CategoryTotal, error) {
	var totals []model.CategoryTotal
	q := r.filtered(ctx, filter).
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("total DESC").
		Order("category ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&totals).Error; err != nil {
		return nil, err
	}
	for i := range totals {
		totals[i].Total = totals[i].Total.Round(model.AmountScale)
	}
	return totals, nil
}

// ApplyTransition verifies that every id exists under a row lock, then
// updates the approval columns of all of them in the same transaction.
func (r *expenseRepository) ApplyTransition(ctx context.Context, ids []uint, t model.Transition) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var found []uint
		if err := tx.Model(&model.Expense{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", ids).
			Pluck("id", &found).Error; err != nil {
			return err
		}
		if len(found) != len(ids) {
			return ErrMissingRecords
		}

		if err := tx.Model(&model.Expense{}).
			Where("id IN ?", ids).
			Updates(t.Columns()).Error; err != nil {
			return err
		}
		affected = int64(len(found))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *expenseRepository) filtered(ctx context.Context, f model.ExpenseFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if f.Dates.From != nil {
		q = q.Where("date >= ?", f.Dates.From.UTC())
	}
	if f.Dates.To != nil {
		q = q.Where("date <= ?", f.Dates.To.UTC())
	}
	if f.Amounts.Min != nil {
		q = q.Where("amount >= ?", *f.Amounts.Min)
	}
	if f.Amounts.Max != nil {
		q = q.Where("amount <= ?", *f.Amounts.Max)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("approval_status = ?", *f.Status)
	}
	return q
}

// ordered applies s followed by the tie-breaks that make paging stable.
// It mirrors model.Sort.Less.
func ordered(s model.Sort) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.Key == model.SortByAmount {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "amount"}, Desc: s.Descending}).
				Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true})
		} else {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: s.Descending})
		}
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
}
