package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/metrics"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

// ApprovalService moves batches of expenses to Approved or Rejected.
// A batch is applied completely or not at all.
type ApprovalService interface {
	Approve(ctx context.Context, ids []uint, actor string) (int64, error)
	Reject(ctx context.Context, ids []uint, actor string, reason *string) (int64, error)
}

type approvalService struct {
	repo    repository.ExpenseRepository
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     Clock
}

// NewApprovalService creates a new approval service.
func NewApprovalService(repo repository.ExpenseRepository, m *metrics.Metrics, logger *slog.Logger) ApprovalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &approvalService{repo: repo, metrics: m, logger: logger, now: systemClock}
}

func (s *approvalService) Approve(ctx context.Context, ids []uint, actor string) (int64, error) {
	return s.apply(ctx, ids, model.Transition{Status: model.ApprovalStatusApproved, Actor: actor})
}

func (s *approvalService) Reject(ctx context.Context, ids []uint, actor string, reason *string) (int64, error) {
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}
	return s.apply(ctx, ids, model.Transition{Status: model.ApprovalStatusRejected, Actor: actor, Reason: reason})
}

func (s *approvalService) apply(ctx context.Context, ids []uint, t model.Transition) (int64, error) {
	t.Actor = strings.TrimSpace(t.Actor)
	if t.Actor == "" {
		return 0, apperrors.ErrMissingPrincipal
	}
	ids = distinctIDs(ids)
	if len(ids) == 0 {
		return 0, apperrors.ErrNoExpenseIDs
	}
	t.At = s.now().UTC()

	n, err := s.repo.ApplyTransition(ctx, ids, t)
	if err != nil {
		if errors.Is(err, repository.ErrMissingRecords) {
			return 0, apperrors.ErrUnknownExpenseIDs
		}
		s.logger.ErrorContext(ctx, "approval transition failed",
			"status", t.Status, "actor", t.Actor, "count", len(ids), "error", err)
		return 0, fmt.Errorf("apply %s: %w", strings.ToLower(string(t.Status)), err)
	}

	s.metrics.Transition(string(t.Status), n)
	s.logger.InfoContext(ctx, "expenses transitioned",
		"status", t.Status, "actor", t.Actor, "count", n)
	return n, nil
}

// distinctIDs drops duplicates, keeping first occurrences in order.
func distinctIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
