package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

// ExpenseService covers an owner's own expenses. Every call is scoped by userID.
type ExpenseService interface {
	List(ctx context.Context, userID uint) ([]model.Expense, error)
	Get(ctx context.Context, userID, id uint) (*model.Expense, error)
	Create(ctx context.Context, userID uint, content model.ExpenseContent) (*model.Expense, error)
	Update(ctx context.Context, userID, id uint, content model.ExpenseContent) (*model.Expense, error)
	Delete(ctx context.Context, userID, id uint) error
}

type expenseService struct {
	repo repository.ExpenseRepository
	now  Clock
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo, now: systemClock}
}

func (s *expenseService) List(ctx context.Context, userID uint) ([]model.Expense, error) {
	if userID == 0 {
		return nil, apperrors.ErrMissingPrincipal
	}
	expenses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) Get(ctx context.Context, userID, id uint) (*model.Expense, error) {
	if userID == 0 {
		return nil, apperrors.ErrMissingPrincipal
	}
	expense, err := s.repo.FindForOwner(ctx, id, userID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrExpenseNotFound)
	}
	return expense, nil
}

// Create records a new expense in Pending state.
func (s *expenseService) Create(ctx context.Context, userID uint, content model.ExpenseContent) (*model.Expense, error) {
	if userID == 0 {
		return nil, apperrors.ErrMissingPrincipal
	}
	content, err := normalizeContent(content)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		UserID:    userID,
		CreatedAt: s.now(),
		Approval:  model.Approval{Status: model.ApprovalStatusPending},
	}
	content.Apply(expense)

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

// Update replaces the content fields. Approval fields are left as stored.
func (s *expenseService) Update(ctx context.Context, userID, id uint, content model.ExpenseContent) (*model.Expense, error) {
	if userID == 0 {
		return nil, apperrors.ErrMissingPrincipal
	}
	content, err := normalizeContent(content)
	if err != nil {
		return nil, err
	}

	expense, err := s.repo.FindForOwner(ctx, id, userID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrExpenseNotFound)
	}
	content.Apply(expense)

	if err := s.repo.UpdateContent(ctx, expense); err != nil {
		return nil, notFound(err, apperrors.ErrExpenseNotFound)
	}
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, userID, id uint) error {
	if userID == 0 {
		return apperrors.ErrMissingPrincipal
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return notFound(err, apperrors.ErrExpenseNotFound)
	}
	return nil
}

func normalizeContent(c model.ExpenseContent) (model.ExpenseContent, error) {
	c.Category = strings.TrimSpace(c.Category)
	c.Description = strings.TrimSpace(c.Description)
	c.Date = c.Date.UTC()

	switch {
	case c.Date.IsZero():
		return c, apperrors.ErrInvalidDate
	case c.Category == "" || utf8.RuneCountInString(c.Category) > model.CategoryMaxLen:
		return c, apperrors.ErrInvalidCategory
	case utf8.RuneCountInString(c.Description) > model.DescriptionMaxLen:
		return c, apperrors.ErrInvalidDescription
	case c.Amount.LessThan(model.MinAmount):
		return c, apperrors.ErrInvalidAmount
	}
	return c, nil
}
