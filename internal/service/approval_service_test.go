package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/metrics"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

func newTestApprovalService(repo *MockExpenseRepository, now time.Time) (*approvalService, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return &approvalService{repo: repo, metrics: metrics.New(), logger: logger, now: fixedClock(now)}, &buf
}

func TestApprovalService_Approve(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		ids       []uint
		actor     string
		repoIDs   []uint
		repoCount int64
		repoErr   error
		wantCount int64
		wantErr   error
	}{
		{name: "approves distinct ids", ids: []uint{1, 2, 1, 3}, actor: "Mona", repoIDs: []uint{1, 2, 3}, repoCount: 3, wantCount: 3},
		{name: "empty set", ids: nil, actor: "Mona", wantErr: apperrors.ErrNoExpenseIDs},
		{name: "missing actor", ids: []uint{1}, actor: " ", wantErr: apperrors.ErrMissingPrincipal},
		{name: "unknown id aborts batch", ids: []uint{1, 2, 999}, actor: "Mona", repoIDs: []uint{1, 2, 999}, repoErr: repository.ErrMissingRecords, wantErr: apperrors.ErrUnknownExpenseIDs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockExpenseRepository)
			svc, _ := newTestApprovalService(repo, now)

			if tt.repoIDs != nil {
				want := model.Transition{Status: model.ApprovalStatusApproved, Actor: "Mona", At: now}
				repo.On("ApplyTransition", mock.Anything, tt.repoIDs, want).Return(tt.repoCount, tt.repoErr)
			}

			n, err := svc.Approve(context.Background(), tt.ids, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, n)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCount, n)
			}
			if tt.repoIDs == nil {
				repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestApprovalService_RejectRecordsReason(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockExpenseRepository)
	svc, logs := newTestApprovalService(repo, now)

	reason := "  missing receipt "
	repo.On("ApplyTransition", mock.Anything, []uint{5}, mock.MatchedBy(func(tr model.Transition) bool {
		return tr.Status == model.ApprovalStatusRejected &&
			tr.Actor == "Mona" &&
			tr.At.Equal(now) &&
			tr.Reason != nil && *tr.Reason == "missing receipt"
	})).Return(int64(1), nil)

	n, err := svc.Reject(context.Background(), []uint{5}, "Mona", &reason)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Contains(t, logs.String(), "expenses transitioned")
	repo.AssertExpectations(t)
}

func TestApprovalService_RejectBlankReasonIsNil(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc, _ := newTestApprovalService(repo, time.Now())

	blank := "   "
	repo.On("ApplyTransition", mock.Anything, []uint{5}, mock.MatchedBy(func(tr model.Transition) bool {
		return tr.Reason == nil
	})).Return(int64(1), nil)

	_, err := svc.Reject(context.Background(), []uint{5}, "Mona", &blank)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestApprovalService_StoreFailureIsWrappedAndLogged(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc, logs := newTestApprovalService(repo, time.Now())
	storeErr := errors.New("deadlock found")

	repo.On("ApplyTransition", mock.Anything, []uint{1}, mock.Anything).Return(int64(0), storeErr)

	_, err := svc.Approve(context.Background(), []uint{1}, "Mona")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidRequest)
	assert.Contains(t, logs.String(), "approval transition failed")
}

func TestDistinctIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, distinctIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, distinctIDs(nil))
}
