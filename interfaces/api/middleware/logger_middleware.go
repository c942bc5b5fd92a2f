package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"buildtrack/pkg/logger"
)

// LoggerMiddleware emits a structured log line per request, leveled by status.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", latency.String(),
			"bytes", len(c.Response().Body()),
		)

		return err
	}
}
