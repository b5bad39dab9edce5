package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expensetracker/internal/model"
)

// now sits in a 31-day month so month buckets are easy to reason about.
var now = time.Date(2025, time.March, 20, 15, 30, 0, 0, time.UTC)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(id uint, at time.Time, category, amount string) model.Expense {
	return model.Expense{ID: id, UserID: 1, Date: at, Category: category, Amount: money(amount)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, money(want).Equal(got), "want %s, got %s", want, got)
}

func TestParseTimeFrame(t *testing.T) {
	assert.Equal(t, Day, ParseTimeFrame("day"))
	assert.Equal(t, Day, ParseTimeFrame("DAY"))
	assert.Equal(t, Year, ParseTimeFrame("year"))
	assert.Equal(t, Month, ParseTimeFrame("month"))
	assert.Equal(t, Month, ParseTimeFrame("week"), "unknown selector falls back to month")
	assert.Equal(t, Month, ParseTimeFrame(""))
}

func TestTimeFrame_Range(t *testing.T) {
	tests := []struct {
		frame     TimeFrame
		wantStart time.Time
	}{
		{Day, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{Month, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Year, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{TimeFrame("bogus"), time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(string(tt.frame), func(t *testing.T) {
			r := tt.frame.Range(now)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, now, r.End)
			assert.True(t, r.Contains(r.Start))
			assert.True(t, r.Contains(now))
			assert.False(t, r.Contains(now.Add(time.Nanosecond)))
		})
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, time.March))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 30, DaysIn(2025, time.April))
}

func TestCompute_MonthScenario(t *testing.T) {
	expenses := []model.Expense{
		expense(1, time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC), "Food", "10.00"),
		expense(2, time.Date(2025, time.March, 5, 19, 0, 0, 0, time.UTC), "Food", "20.00"),
		expense(3, time.Date(2025, time.March, 5, 8, 0, 0, 0, time.UTC), "Transport", "5.00"),
	}

	report := Compute(expenses, Month, now)

	assert.Equal(t, Month, report.TimeFrame)
	assertDecimal(t, "35.00", report.Summary.Total)
	assert.True(t, money("35").Div(decimal.NewFromInt(31)).Equal(report.Summary.Average))
	require.NotNil(t, report.Summary.Highest)
	assertDecimal(t, "20.00", report.Summary.Highest.Amount)
	assert.Equal(t, "Food", report.Summary.Highest.Category)
	assert.Equal(t, uint(2), report.Summary.Highest.ExpenseID)
	require.NotNil(t, report.Summary.TopCategory)
	assert.Equal(t, "Food", report.Summary.TopCategory.Name)
	assertDecimal(t, "30.00", report.Summary.TopCategory.Total)

	require.Len(t, report.TimeSeries, 31)
	assert.Equal(t, "03/01", report.TimeSeries[0].Label)
	assert.Equal(t, "03/31", report.TimeSeries[30].Label)
	assertDecimal(t, "10", report.TimeSeries[1].Total)
	assertDecimal(t, "25", report.TimeSeries[4].Total)

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, "Food", report.ByCategory[0].Category)
	assert.Equal(t, "Transport", report.ByCategory[1].Category)
}

func TestCompute_EmptySet(t *testing.T) {
	for _, frame := range []TimeFrame{Day, Month, Year} {
		t.Run(string(frame), func(t *testing.T) {
			report := Compute(nil, frame, now)
			assert.True(t, report.Summary.Total.IsZero())
			assert.True(t, report.Summary.Average.IsZero(), "average of an empty set is exactly zero")
			assert.Nil(t, report.Summary.Highest)
			assert.Nil(t, report.Summary.TopCategory)
			assert.Empty(t, report.ByCategory)
			for _, b := range report.TimeSeries {
				assert.True(t, b.Total.IsZero())
			}
		})
	}
}

func TestCompute_DayBuckets(t *testing.T) {
	today := func(h, m int) time.Time { return time.Date(2025, time.March, 20, h, m, 0, 0, time.UTC) }
	expenses := []model.Expense{
		expense(1, today(0, 0), "Coffee", "3.50"),
		expense(2, today(0, 59), "Coffee", "1.50"),
		expense(3, today(13, 15), "Lunch", "12.00"),
		expense(4, today(15, 30), "Taxi", "8.00"),
		expense(5, today(16, 0), "Taxi", "99.00"),             // after now
		expense(6, today(0, 0).Add(-time.Minute), "X", "1.00"), // yesterday
	}

	report := Compute(expenses, Day, now)

	require.Len(t, report.TimeSeries, 24)
	assert.Equal(t, "0:00", report.TimeSeries[0].Label)
	assert.Equal(t, "23:00", report.TimeSeries[23].Label)
	assertDecimal(t, "5.00", report.TimeSeries[0].Total)
	assertDecimal(t, "12.00", report.TimeSeries[13].Total)
	assertDecimal(t, "8.00", report.TimeSeries[15].Total)
	assertDecimal(t, "25.00", report.Summary.Total)
	assertDecimal(t, "25", report.Summary.Average.Mul(decimal.NewFromInt(24)).Round(8))
}

func TestCompute_YearBuckets(t *testing.T) {
	expenses := []model.Expense{
		expense(1, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "Rent", "1000"),
		expense(2, time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC), "Rent", "1000"),
		expense(3, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), "Food", "50"),
		expense(4, time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC), "Rent", "1000"),
	}

	report := Compute(expenses, Year, now)

	require.Len(t, report.TimeSeries, 12)
	assert.Equal(t, "Jan", report.TimeSeries[0].Label)
	assert.Equal(t, "Dec", report.TimeSeries[11].Label)
	assertDecimal(t, "1000", report.TimeSeries[0].Total)
	assertDecimal(t, "1000", report.TimeSeries[1].Total)
	assertDecimal(t, "50", report.TimeSeries[2].Total)
	assert.True(t, report.TimeSeries[11].Total.IsZero())
	assertDecimal(t, "2050", report.Summary.Total)
}

func TestCompute_BucketsSumToTotal(t *testing.T) {
	var expenses []model.Expense
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		at := start.Add(time.Duration(i*9) * time.Hour)
		expenses = append(expenses, expense(uint(i+1), at, fmt.Sprintf("c%d", i%7), fmt.Sprintf("%d.%02d", i%40+1, i%100)))
	}
	// A handful of expenses today so the day frame is not empty.
	for h := 0; h <= now.Hour(); h++ {
		expenses = append(expenses, expense(uint(1000+h), time.Date(2025, time.March, 20, h, 10, 0, 0, time.UTC), "today", "1.25"))
	}

	for _, frame := range []TimeFrame{Day, Month, Year} {
		t.Run(string(frame), func(t *testing.T) {
			report := Compute(expenses, frame, now)
			sum := decimal.Zero
			for _, b := range report.TimeSeries {
				sum = sum.Add(b.Total)
			}
			assert.True(t, report.Summary.Total.IsPositive())
			assert.True(t, sum.Equal(report.Summary.Total), "buckets %s != total %s", sum, report.Summary.Total)

			categorySum := decimal.Zero
			for _, c := range report.ByCategory {
				categorySum = categorySum.Add(c.Total)
			}
			assert.True(t, categorySum.Equal(report.Summary.Total))
		})
	}
}

func TestHighestExpense_TieBreak(t *testing.T) {
	at := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		expense(9, at, "B", "40"),
		expense(4, at, "A", "40"),
		expense(7, at, "C", "12"),
	}

	h, ok := HighestExpense(expenses)
	require.True(t, ok)
	assert.Equal(t, uint(4), h.ID, "equal amounts resolve to the lowest id")
	for _, e := range expenses {
		assert.True(t, h.Amount.GreaterThanOrEqual(e.Amount))
	}

	_, ok = HighestExpense(nil)
	assert.False(t, ok)
}

func TestCategoryBreakdown_TieBreak(t *testing.T) {
	at := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	breakdown := CategoryBreakdown([]model.Expense{
		expense(1, at, "Travel", "30"),
		expense(2, at, "Books", "15"),
		expense(3, at, "Books", "15"),
		expense(4, at, "Zoo", "5"),
	})

	require.Len(t, breakdown, 3)
	assert.Equal(t, "Books", breakdown[0].Category, "equal totals order by name")
	assert.Equal(t, "Travel", breakdown[1].Category)
	assert.Equal(t, "Zoo", breakdown[2].Category)
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	expenses := []model.Expense{
		expense(2, now.Add(-time.Hour), "Food", "10"),
		expense(1, now.Add(-2*time.Hour), "Food", "20"),
	}
	snapshot := append([]model.Expense(nil), expenses...)

	Compute(expenses, Month, now)

	assert.Equal(t, snapshot, expenses)
}

func TestSeries_UsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	localNow := time.Date(2025, time.March, 20, 10, 0, 0, 0, loc)
	// 23:30 UTC on the 19th is 01:30 on the 20th in loc.
	e := expense(1, time.Date(2025, time.March, 19, 23, 30, 0, 0, time.UTC), "Late", "7")

	buckets := Series([]model.Expense{e}, Day, localNow)

	assertDecimal(t, "7", buckets[1].Total)
}
