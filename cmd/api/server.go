package main

import (
	"database/sql"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"fruitapi/docs"
	"fruitapi/internal/config"
	handlers "fruitapi/internal/http/handler"
	"fruitapi/internal/http/middleware"
	"fruitapi/internal/logger"
	"fruitapi/internal/repository/postgres"
	"fruitapi/internal/service"
)

// newRegistry returns the Prometheus registry served on /metrics, preloaded
// with runtime, process and connection pool collectors.
func newRegistry(db *sql.DB, dbName string) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, dbName),
	)
	return reg
}

// newApp wires repositories, services, middleware and routes into a Fiber app.
func newApp(cfg *config.AppConfig, db *sql.DB, log zerolog.Logger, reg *prometheus.Registry) (*fiber.App, error) {
	fruitRepo := postgres.NewFruitPostgres(db)
	fruitSvc := service.NewFruitService(fruitRepo, logger.Component(log, "fruits"))

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.Logger(logger.Component(log, "http")))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db, fruitSvc, reg)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}
