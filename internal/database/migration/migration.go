package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_fruits",
		SQL: `CREATE TABLE IF NOT EXISTS fruits (
  id          SERIAL       PRIMARY KEY,
  fruit_name  VARCHAR(100) NOT NULL,
  fruit_count INT          NOT NULL
);`,
	},
}

const (
	DefaultAttempts = 5
	DefaultDelay    = 2 * time.Second
)

// Options bounds the initialization retry loop.
type Options struct {
	// Attempts is the total number of tries, including the first one.
	Attempts int
	// Delay is the fixed pause between two tries.
	Delay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Attempts <= 0 {
		o.Attempts = DefaultAttempts
	}
	if o.Delay <= 0 {
		o.Delay = DefaultDelay
	}
	return o
}

// EnsureSchema creates the fruits table if it is missing.
//
// Each attempt pings the database and then applies every step; all steps are
// idempotent. Failed attempts are retried with a constant delay until
// opts.Attempts is exhausted or ctx is done. The last error is returned so the
// caller can decide whether to keep running without a schema.
func EnsureSchema(ctx context.Context, db *sql.DB, log zerolog.Logger, opts Options) error {
	opts = opts.withDefaults()
	start := time.Now()

	log.Info().
		Str("event", "db_init_start").
		Int("max_attempts", opts.Attempts).
		Msg("initializing database schema")

	attempt := 0
	backoff := retry.WithMaxRetries(uint64(opts.Attempts-1), retry.NewConstant(opts.Delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := apply(ctx, db, log); err != nil {
			log.Error().
				Str("event", "db_init_attempt_failed").
				Str("status", "error").
				Int("attempt", attempt).
				Int("max_attempts", opts.Attempts).
				Err(err).
				Msgf("error initializing database (attempt %d/%d)", attempt, opts.Attempts)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Error().
			Str("event", "db_init_failed").
			Str("status", "error").
			Int("attempts", attempt).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Err(err).
			Msgf("failed to initialize database after %d attempts", attempt)
		return fmt.Errorf("ensure schema: %w", err)
	}

	log.Info().
		Str("event", "db_init_success").
		Str("status", "success").
		Int("attempts", attempt).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("database initialized successfully")
	return nil
}

func apply(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Debug().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}
	return nil
}
