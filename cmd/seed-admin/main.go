// Command seed-admin creates an operator account. Credentials come from
// ADMIN_EMAIL / ADMIN_PASSWORD or from the first two positional arguments.
// Seeding an email that already exists is a no-op.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/infrastructure/config"
	mongodb "github.com/towingbuddy/towtrack-api/internal/infrastructure/db/mongo"
	"github.com/towingbuddy/towtrack-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	args := os.Args[1:]
	if email == "" && len(args) > 0 {
		email = args[0]
	}
	if password == "" && len(args) > 1 {
		password = args[1]
	}
	if email == "" || password == "" {
		log.Fatal().Msg("usage: set ADMIN_EMAIL and ADMIN_PASSWORD via env or args (email password)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = mongodb.Disconnect(client)
	}()

	repo := mongodb.NewAdminRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create admin index")
	}

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin already exists")
		return
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	admin, err := repo.Create(ctx, &domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin")
	}

	log.Info().Str("email", admin.Email).Msg("created admin")
}
