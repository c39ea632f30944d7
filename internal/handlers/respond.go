package handlers

import (
	"errors"
	"fmt"

	"glowmart/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// All responses share the envelope {success, data, message}. Errors are
// rendered in exactly one place from the typed apperr kind instead of
// per-screen message matching.

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *fiber.Ctx, status int, format string, args ...interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf(format, args...),
	})
}

func respondError(c *fiber.Ctx, err error) error {
	message := "Internal server error"
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind != apperr.KindInternal {
		message = ae.Message
	}
	return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func respondBadBody(c *fiber.Ctx, err error) error {
	return respondError(c, apperr.Wrap(apperr.KindValidation, err, "Invalid request body"))
}

func respondValidationErrors(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return respondBadBody(c, err)
	}
	errorMessages := make(map[string]string)
	for _, e := range verrs {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// localString reads a string value from the request context, tolerating a
// missing key.
func localString(c *fiber.Ctx, key string) string {
	v, _ := c.Locals(key).(string)
	return v
}
