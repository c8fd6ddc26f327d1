// Package handler contains the HTTP controllers for auth, users and
// projects.
package handler

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"

	"github.com/mfvaldes/projhub/internal/auth"
)

// ErrorHandler maps any error escaping a handler or the guard onto a
// JSON {message} body with the status the error taxonomy dictates.
// Registered as the fiber app's ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if goerrors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	status := auth.HTTPStatus(err)

	message := "internal server error"
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.Message != "" {
		message = richErr.Message
	}

	return c.Status(status).JSON(fiber.Map{"message": message})
}
