package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/towingbuddy/towtrack-api/internal/api"
	"github.com/towingbuddy/towtrack-api/internal/infrastructure/config"
	mongodb "github.com/towingbuddy/towtrack-api/internal/infrastructure/db/mongo"
	"github.com/towingbuddy/towtrack-api/internal/infrastructure/queue"
	"github.com/towingbuddy/towtrack-api/internal/infrastructure/sms"
	"github.com/towingbuddy/towtrack-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongodb.Disconnect(client); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	notifier := sms.NewTwilioNotifier(sms.Config{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		From:       cfg.Twilio.From,
		Template:   cfg.Twilio.Template,
		AppLink:    cfg.AppLink,
	}, log)

	dispatcher := queue.NewDispatcher(0, notifier, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:         db,
		Dispatcher: dispatcher,
		OtpTTL:     time.Duration(cfg.OtpTTLMinutes) * time.Minute,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}

// ensureIndexes bootstraps the unique and lookup indexes each repository
// relies on. Upsert race-safety depends on the unique indexes existing.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewOwnerRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewTowingRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewOtpRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewAdminRepository(db).EnsureIndexes(ctx)
}
