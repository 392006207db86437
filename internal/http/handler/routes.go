package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"fruitapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, fruitSvc service.FruitService, gatherer prometheus.Gatherer) {
	app.Get("/health", HealthCheck())
	app.Get("/ready", ReadinessCheck(db))
	app.Get("/metrics", Metrics(gatherer))

	app.Get("/fruits", ListFruits(fruitSvc))
	app.Post("/fruits", CreateFruit(fruitSvc))
}
