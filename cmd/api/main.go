package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"fruitapi/internal/config"
	"fruitapi/internal/database"
	"fruitapi/internal/database/migration"
	"fruitapi/internal/logger"
	"fruitapi/internal/otel"
)

const shutdownTimeout = 10 * time.Second

// @title Fruit Inventory API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger.Component(log, "otel"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure database pool")
	}
	defer db.Close()

	// A missing schema is not fatal: the API still listens and store calls fail per request.
	if err := migration.EnsureSchema(ctx, db, logger.Component(log, "database"), migration.Options{
		Attempts: cfg.Init.Attempts,
		Delay:    cfg.Init.Delay(),
	}); err != nil {
		log.Warn().Err(err).Msg("continuing without an initialized schema")
	}

	app, err := newApp(cfg, db, log, newRegistry(db, cfg.Database.Name))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build http app")
	}

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msgf("server running on port %s", cfg.Port)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	tctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(tctx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
}
