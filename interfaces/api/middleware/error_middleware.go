package middleware

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/pkg/logger"
	"buildtrack/pkg/utils"
)

// ErrorHandler folds errors that escape the handlers into the JSON envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "status", code, "error", err)

		return utils.ErrorResponse(c, code, message)
	}
}
