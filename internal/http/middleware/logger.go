package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Logger writes one structured entry per HTTP request.
// Fields:
// - request_id (from RequestID middleware)
// - method
// - path (no query string)
// - status
// - latency (milliseconds, float)
//
// 5xx responses are logged at error level, 4xx at warn, everything else at info.
func Logger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := statusOf(c, err)
		latency := float64(time.Since(start).Microseconds()) / 1000

		var e *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			e = log.Error()
		case status >= fiber.StatusBadRequest:
			e = log.Warn()
		default:
			e = log.Info()
		}
		e.Str("request_id", RequestIDFromCtx(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", latency).
			Send()

		return err
	}
}

// statusOf resolves the status that will be sent. When a handler returned an
// error the global error handler has not run yet, so the code is taken from
// the error itself.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
