package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-booking/internal/auth"
	"github.com/spec-kit/restaurant-booking/internal/config"
	"github.com/spec-kit/restaurant-booking/internal/domain"
	"github.com/spec-kit/restaurant-booking/internal/observability"
	"github.com/spec-kit/restaurant-booking/internal/persistence"
	"github.com/spec-kit/restaurant-booking/internal/repository"
)

// seed provisions the admin account and a starter restaurant catalog.
// Safe to run repeatedly: existing records are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pool := pg.PoolHandle()
	users := repository.NewUserRepository(pool)
	restaurants := repository.NewRestaurantRepository(pool)

	if err := seedAdmin(ctx, users, cfg.Auth.BcryptCost, logger); err != nil {
		logger.Fatal("failed to seed admin", zap.Error(err))
	}
	if err := seedRestaurants(ctx, restaurants, logger); err != nil {
		logger.Fatal("failed to seed restaurants", zap.Error(err))
	}

	logger.Info("seeding complete")
}

func seedAdmin(ctx context.Context, users repository.UserRepository, bcryptCost int, logger *zap.Logger) error {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")

	if _, err := users.GetByEmail(ctx, email); err == nil {
		logger.Info("admin user already exists", zap.String("email", email))
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}

	phone := getEnv("SEED_ADMIN_PHONE", "")
	admin := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         getEnv("SEED_ADMIN_NAME", "Admin"),
		Role:         domain.UserRoleAdmin,
	}
	if phone != "" {
		admin.Phone = &phone
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("admin user created", zap.String("email", email))
	return nil
}

func seedRestaurants(ctx context.Context, restaurants repository.RestaurantRepository, logger *zap.Logger) error {
	count, err := restaurants.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("restaurant catalog already seeded", zap.Int64("count", count))
		return nil
	}

	for i := range sampleRestaurants {
		if err := restaurants.Create(ctx, &sampleRestaurants[i]); err != nil {
			return err
		}
	}

	logger.Info("restaurant catalog seeded", zap.Int("count", len(sampleRestaurants)))
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
