package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/model"
)

// Highest identifies the largest single expense. Ties go to the lowest id.
type Highest struct {
	ExpenseID uint            `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
}

// TopCategory is the category with the largest summed amount.
type TopCategory struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Summary holds the headline numbers of a dashboard.
type Summary struct {
	Total       decimal.Decimal `json:"total"`
	Average     decimal.Decimal `json:"average"`
	Highest     *Highest        `json:"highest"`
	TopCategory *TopCategory    `json:"topCategory"`
}

// Bucket is one fixed sub-interval of a time series.
type Bucket struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Report is the full aggregation for one user and time frame.
type Report struct {
	TimeFrame  TimeFrame             `json:"timeFrame"`
	Range      Range                 `json:"range"`
	Summary    Summary               `json:"summary"`
	TimeSeries []Bucket              `json:"timeSeries"`
	ByCategory []model.CategoryTotal `json:"byCategory"`
}

// Compute aggregates the expenses that fall inside frame's range at now.
// Expenses outside the range are ignored so that bucket totals always add up
// to the summary total.
func Compute(expenses []model.Expense, frame TimeFrame, now time.Time) Report {
	frame = ParseTimeFrame(string(frame))
	r := frame.Range(now)

	matched := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if r.Contains(e.Date) {
			matched = append(matched, e)
		}
	}

	byCategory := CategoryBreakdown(matched)
	return Report{
		TimeFrame:  frame,
		Range:      r,
		Summary:    summarize(matched, byCategory, frame, now),
		TimeSeries: Series(matched, frame, now),
		ByCategory: byCategory,
	}
}

func summarize(matched []model.Expense, byCategory []model.CategoryTotal, frame TimeFrame, now time.Time) Summary {
	s := Summary{Total: Total(matched), Average: decimal.Zero}
	if len(matched) == 0 {
		return s
	}

	s.Average = s.Total.Div(decimal.NewFromInt(frame.divisor(now)))

	if h, ok := HighestExpense(matched); ok {
		s.Highest = &Highest{ExpenseID: h.ID, Amount: h.Amount, Category: h.Category}
	}
	if len(byCategory) > 0 {
		s.TopCategory = &TopCategory{Name: byCategory[0].Category, Total: byCategory[0].Total}
	}
	return s
}

// Total sums the amounts of expenses.
func Total(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// HighestExpense returns the expense with the maximum amount, ties to the lowest id.
func HighestExpense(expenses []model.Expense) (model.Expense, bool) {
	if len(expenses) == 0 {
		return model.Expense{}, false
	}
	best := expenses[0]
	for _, e := range expenses[1:] {
		c := e.Amount.Cmp(best.Amount)
		if c > 0 || (c == 0 && e.ID < best.ID) {
			best = e
		}
	}
	return best, true
}

// CategoryBreakdown sums amounts per category, ordered by total descending
// and then by category name ascending.
func CategoryBreakdown(expenses []model.Expense) []model.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	out := make([]model.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, model.CategoryTotal{Category: category, Total: total})
	}
	SortCategoryTotals(out)
	return out
}

// SortCategoryTotals orders totals descending, ties by category name.
func SortCategoryTotals(totals []model.CategoryTotal) {
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Total.Cmp(totals[j].Total); c != 0 {
			return c > 0
		}
		return totals[i].Category < totals[j].Category
	})
}
