package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"expensetracker/internal/aggregate"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/metrics"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

// RecentExpenseCount is how many latest expenses a dashboard lists.
const RecentExpenseCount = 5

// ChartSeries is a chart-ready pair of parallel label and value lists.
type ChartSeries struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// ChartData holds both dashboard charts.
type ChartData struct {
	TimeSeries ChartSeries `json:"timeSeries"`
	ByCategory ChartSeries `json:"byCategory"`
}

// Dashboard is the per-user overview for one time frame.
type Dashboard struct {
	TimeFrame      aggregate.TimeFrame `json:"timeFrame"`
	Range          aggregate.Range     `json:"range"`
	Summary        aggregate.Summary   `json:"summary"`
	ChartData      ChartData           `json:"chartData"`
	RecentExpenses []model.Expense     `json:"recentExpenses"`
}

// DashboardService builds dashboards from a user's expenses.
type DashboardService interface {
	Build(ctx context.Context, userID uint, frame aggregate.TimeFrame) (*Dashboard, error)
}

type dashboardService struct {
	repo    repository.ExpenseRepository
	metrics *metrics.Metrics
	now     Clock
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repo repository.ExpenseRepository, m *metrics.Metrics) DashboardService {
	return &dashboardService{repo: repo, metrics: m, now: systemClock}
}

func (s *dashboardService) Build(ctx context.Context, userID uint, frame aggregate.TimeFrame) (*Dashboard, error) {
	if userID == 0 {
		return nil, apperrors.ErrMissingPrincipal
	}
	now := s.now()
	frame = aggregate.ParseTimeFrame(string(frame))
	r := frame.Range(now)

	expenses, err := s.repo.ListByUserInRange(ctx, userID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("load expenses in range: %w", err)
	}
	recent, err := s.repo.Recent(ctx, userID, RecentExpenseCount)
	if err != nil {
		return nil, fmt.Errorf("load recent expenses: %w", err)
	}

	report := aggregate.Compute(expenses, frame, now)
	s.metrics.DashboardBuilt(string(frame))

	return &Dashboard{
		TimeFrame: report.TimeFrame,
		Range:     report.Range,
		Summary:   report.Summary,
		ChartData: ChartData{
			TimeSeries: bucketSeries(report.TimeSeries),
			ByCategory: categorySeries(report.ByCategory),
		},
		RecentExpenses: recent,
	}, nil
}

func bucketSeries(buckets []aggregate.Bucket) ChartSeries {
	out := ChartSeries{
		Labels: make([]string, 0, len(buckets)),
		Values: make([]decimal.Decimal, 0, len(buckets)),
	}
	for _, b := range buckets {
		out.Labels = append(out.Labels, b.Label)
		out.Values = append(out.Values, b.Total)
	}
	return out
}

func categorySeries(totals []model.CategoryTotal) ChartSeries {
	out := ChartSeries{
		Labels: make([]string, 0, len(totals)),
		Values: make([]decimal.Decimal, 0, len(totals)),
	}
	for _, t := range totals {
		out.Labels = append(out.Labels, t.Category)
		out.Values = append(out.Values, t.Total)
	}
	return out
}
