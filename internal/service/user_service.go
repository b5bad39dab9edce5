package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"expensetracker/internal/auth"
	"expensetracker/internal/cache"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

// DefaultUserCacheTTL applies when the service is built with a non-positive TTL.
const DefaultUserCacheTTL = 5 * time.Minute

// UserService resolves users, backed by the repository and the redis cache.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	// Exists reads through to the store, so a deleted user is NotFound at once.
	Exists(ctx context.Context, id uint) error
	// Me returns the principal's user, provisioning an external-auth user on first sight.
	Me(ctx context.Context, p auth.Principal) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
	ttl   time.Duration
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client, ttl time.Duration) UserService {
	if ttl <= 0 {
		ttl = DefaultUserCacheTTL
	}
	return &userService{repo: repo, cache: cache, ttl: ttl}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, s.ttl)
	return user, nil
}

func (s *userService) Exists(ctx context.Context, id uint) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = s.cache.Delete(ctx, s.cacheKey(id))
		}
		return notFound(err, apperrors.ErrUserNotFound)
	}
	s.cache.SetJSON(ctx, s.cacheKey(id), user, s.ttl)
	return nil
}

func (s *userService) Me(ctx context.Context, p auth.Principal) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email == "" {
		return nil, apperrors.ErrMissingPrincipal
	}

	if p.UserID != 0 {
		if user, err := s.GetUser(ctx, p.UserID); err == nil && strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		s.cache.SetJSON(ctx, s.cacheKey(user.ID), user, s.ttl)
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = email
	}
	role := p.Role
	if role == "" {
		role = "user"
	}
	user = &model.User{
		Name:         name,
		Email:        email,
		ExternalAuth: true,
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("provision user: %w", err)
	}
	s.cache.SetJSON(ctx, s.cacheKey(user.ID), user, s.ttl)
	return user, nil
}
