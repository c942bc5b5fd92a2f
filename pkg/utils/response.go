package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the uniform JSON envelope for every endpoint except the raw
// image download: {ok, data} on success, {ok, error} on failure.
type Response struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		OK:   true,
		Data: data,
	})
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		OK:   true,
		Data: data,
	})
}

// OKResponse is for acknowledgment-only endpoints (health, bootstrap).
func OKResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Response{OK: true})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		OK:    false,
		Error: message,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

// InternalServerErrorResponse surfaces the raw backend error to the caller,
// matching the API contract (the message is also logged server-side).
func InternalServerErrorResponse(c *fiber.Ctx, err error) error {
	message := "Internal server error"
	if err != nil {
		message = err.Error()
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, message)
}
