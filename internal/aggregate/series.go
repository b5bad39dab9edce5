package aggregate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/model"
)

// Series buckets expenses for frame at now. The bucket count is fixed by the
// frame: 24 hours, the days of the current month, or 12 months. Empty buckets
// are present with a zero total. Expenses outside the frame's range are skipped.
func Series(expenses []model.Expense, frame TimeFrame, now time.Time) []Bucket {
	frame = ParseTimeFrame(string(frame))
	r := frame.Range(now)
	loc := now.Location()

	buckets := emptyBuckets(frame, r.Start)
	for _, e := range expenses {
		if !r.Contains(e.Date) {
			continue
		}
		i := bucketIndex(frame, e.Date.In(loc))
		buckets[i].Total = buckets[i].Total.Add(e.Amount)
	}
	return buckets
}

func emptyBuckets(frame TimeFrame, start time.Time) []Bucket {
	var buckets []Bucket
	switch frame {
	case Day:
		buckets = make([]Bucket, 24)
		for h := range buckets {
			buckets[h] = Bucket{Label: fmt.Sprintf("%d:00", h), Total: decimal.Zero}
		}
	case Year:
		buckets = make([]Bucket, 12)
		for m := range buckets {
			label := time.Month(m + 1).String()[:3]
			buckets[m] = Bucket{Label: label, Total: decimal.Zero}
		}
	default:
		days := DaysIn(start.Year(), start.Month())
		buckets = make([]Bucket, days)
		for d := range buckets {
			day := time.Date(start.Year(), start.Month(), d+1, 0, 0, 0, 0, start.Location())
			buckets[d] = Bucket{Label: day.Format("01/02"), Total: decimal.Zero}
		}
	}
	return buckets
}

// bucketIndex assumes t is already inside the frame's range and in its location.
func bucketIndex(frame TimeFrame, t time.Time) int {
	switch frame {
	case Day:
		return t.Hour()
	case Year:
		return int(t.Month()) - 1
	default:
		return t.Day() - 1
	}
}
