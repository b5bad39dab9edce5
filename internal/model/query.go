package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SortKey selects the primary ordering of an expense query.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
)

// ParseSortKey returns the matching key, falling back to date.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByAmount:
		return SortByAmount
	default:
		return SortByDate
	}
}

// DateRange bounds expense dates. Nil bounds are unconstrained; both ends are inclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// AmountRange bounds expense amounts. Nil bounds are unconstrained; both ends are inclusive.
type AmountRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// Contains reports whether amount falls inside the range.
func (r AmountRange) Contains(amount decimal.Decimal) bool {
	if r.Min != nil && amount.LessThan(*r.Min) {
		return false
	}
	if r.Max != nil && amount.GreaterThan(*r.Max) {
		return false
	}
	return true
}

// ExpenseFilter is a conjunction of optional constraints.
type ExpenseFilter struct {
	Dates   DateRange
	Amounts AmountRange
	UserID  *uint
	Status  *ApprovalStatus
}

// Matches reports whether e satisfies every supplied constraint.
func (f ExpenseFilter) Matches(e Expense) bool {
	if f.UserID != nil && e.UserID != *f.UserID {
		return false
	}
	if f.Status != nil && e.Approval.Status != *f.Status {
		return false
	}
	return f.Dates.Contains(e.Date) && f.Amounts.Contains(e.Amount)
}

// Sort orders query results. Ties on the primary key are broken by
// date descending, then by id ascending.
type Sort struct {
	Key        SortKey
	Descending bool
}

// DefaultSort is date descending.
var DefaultSort = Sort{Key: SortByDate, Descending: true}

// Less reports whether a sorts before b.
func (s Sort) Less(a, b Expense) bool {
	if s.Key == SortByAmount {
		if c := a.Amount.Cmp(b.Amount); c != 0 {
			return (c > 0) == s.Descending
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID < b.ID
	}
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date) == s.Descending
	}
	return a.ID < b.ID
}

// Page selects a 1-based slice of results.
type Page struct {
	Number int
	Size   int
}

// Pagination defaults.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize replaces out-of-range values with defaults and clamps the size to max.
func (p Page) Normalize(defaultSize, maxSize int) Page {
	if defaultSize < 1 {
		defaultSize = DefaultPageSize
	}
	if maxSize < defaultSize {
		maxSize = defaultSize
	}
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultSize
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// Offset is the number of rows skipped before the page starts.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// ExpenseQuery is the full input of a manager query.
type ExpenseQuery struct {
	Filter ExpenseFilter
	Sort   Sort
	Page   Page
}

// CategoryTotal is a summed amount for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseTotals is the aggregate of a filtered expense set.
type ExpenseTotals struct {
	Total decimal.Decimal
	Count int64
}
