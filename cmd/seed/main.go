package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"expensetracker/internal/auth"
	"expensetracker/internal/config"
	"expensetracker/internal/db"
	"expensetracker/internal/logging"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

// seedUser is one demo account.
type seedUser struct {
	Name     string
	Email    string
	Role     string
	Password string
}

// seedExpense is placed daysAgo days before the seed run.
type seedExpense struct {
	DaysAgo     int
	Category    string
	Description string
	Amount      string
}

var demoUsers = []seedUser{
	{Name: "Mona Manager", Email: "manager@example.com", Role: "manager", Password: "manager123"},
	{Name: "Alice Employee", Email: "alice@example.com", Role: "user", Password: "alice123"},
	{Name: "Bob Employee", Email: "bob@example.com", Role: "user", Password: "bob123"},
}

var demoExpenses = []seedExpense{
	{DaysAgo: 0, Category: "Food", Description: "Team lunch", Amount: "42.50"},
	{DaysAgo: 1, Category: "Transport", Description: "Taxi to client", Amount: "18.20"},
	{DaysAgo: 3, Category: "Office", Description: "Printer paper", Amount: "9.99"},
	{DaysAgo: 8, Category: "Food", Description: "Coffee beans", Amount: "14.00"},
	{DaysAgo: 20, Category: "Travel", Description: "Train tickets", Amount: "120.00"},
	{DaysAgo: 45, Category: "Software", Description: "IDE licence", Amount: "89.00"},
	{DaysAgo: 120, Category: "Travel", Description: "Conference hotel", Amount: "310.75"},
}

func main() {
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the printed development tokens")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	if err := run(context.Background(), cfg, logger, *tokenTTL); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, tokenTTL time.Duration) error {
	gormDB, err := db.Open(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database", "driver", cfg.DBDriver)

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)

	now := time.Now().UTC()
	for _, su := range demoUsers {
		user, created, err := ensureUser(ctx, userRepo, su)
		if err != nil {
			return err
		}
		if created && su.Role != cfg.ManagerRole {
			n, err := seedExpenses(ctx, expenseRepo, user.ID, now)
			if err != nil {
				return err
			}
			logger.Info("seeded expenses", "user", user.Email, "count", n)
		}

		token, err := jwtService.GenerateAccessToken(auth.Principal{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
		}, tokenTTL)
		if err != nil {
			return fmt.Errorf("mint token for %s: %w", user.Email, err)
		}
		fmt.Printf("%-22s role=%-8s token=%s\n", user.Email, user.Role, token)
	}

	logger.Info("seed completed")
	return nil
}

// ensureUser creates su unless a user with the same email exists.
func ensureUser(ctx context.Context, repo repository.UserRepository, su seedUser) (*model.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, su.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("error checking user %s: %w", su.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{
		Name:         su.Name,
		Email:        su.Email,
		PasswordHash: string(hash),
		Role:         su.Role,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("error creating user %s: %w", su.Email, err)
	}
	return user, true, nil
}

func seedExpenses(ctx context.Context, repo repository.ExpenseRepository, userID uint, now time.Time) (int, error) {
	for i, se := range demoExpenses {
		expense := &model.Expense{
			UserID:      userID,
			Date:        now.AddDate(0, 0, -se.DaysAgo),
			Category:    se.Category,
			Description: se.Description,
			Amount:      decimal.RequireFromString(se.Amount),
			CreatedAt:   now,
			Approval:    model.Approval{Status: model.ApprovalStatusPending},
		}
		if err := repo.Create(ctx, expense); err != nil {
			return i, fmt.Errorf("error creating expense %q: %w", se.Description, err)
		}
	}
	return len(demoExpenses), nil
}
