package handlers

import (
	"errors"
	"log"

	"storeman/internal/errs"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-level Fiber error handler. Service errors that reach
// it are translated into status codes with a plain-text body, which is the
// error shape API clients already depend on.
func ErrorHandler(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString("Resource was not found: " + err.Error())
	case errors.Is(err, errs.ErrValidation):
		return c.Status(fiber.StatusBadRequest).SendString("Validation failed: " + err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).SendString("Access denied: " + err.Error())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).SendString(fiberErr.Message)
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).SendString("Internal server error")
}
