package main

import (
	"context"
	"fmt"

	"outlaw/internal/auth"
	"outlaw/internal/config"
	"outlaw/internal/db"
	"outlaw/internal/logging"
	"outlaw/internal/model"
	"outlaw/internal/repository"
)

// SeedUser is one account created by the seed tool.
type SeedUser struct {
	Name     string
	Email    string
	Password string
}

var defaultUsers = []SeedUser{
	{Name: "creator", Email: "creator@example.com", Password: "password-creator"},
	{Name: "expert", Email: "expert@example.com", Password: "password-expert"},
}

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console"})
	logging.Info().Msg("Starting seed script")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := db.Migrate(gormDB, false); err != nil {
		logging.Fatal().Err(err).Msg("Failed to run migrations")
	}

	users := repository.NewUserRepository(gormDB)
	created, err := seedUsers(context.Background(), users, defaultUsers)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to seed users")
	}

	for _, u := range created {
		logging.Info().Str("name", u.Name).Str("email", u.Email).Msg("user seeded")
	}
	logging.Info().Int("count", len(created)).Msg("Seed completed successfully")
}

// seedUsers replaces every user with the given accounts.
func seedUsers(ctx context.Context, repo repository.UserRepository, seeds []SeedUser) ([]model.User, error) {
	if err := repo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear users: %w", err)
	}

	created := make([]model.User, 0, len(seeds))
	for _, s := range seeds {
		hash, err := auth.HashPassword(s.Password)
		if err != nil {
			return created, fmt.Errorf("hash password for %s: %w", s.Email, err)
		}
		user := model.User{Name: s.Name, Email: s.Email, PasswordHash: hash}
		if err := repo.Create(ctx, &user); err != nil {
			return created, fmt.Errorf("create user %s: %w", s.Email, err)
		}
		created = append(created, user)
	}
	return created, nil
}
