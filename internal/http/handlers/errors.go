package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"toystore/internal/domain"
	applog "toystore/internal/log"
)

const genericMessage = "Something went wrong. Please try again."

// ErrorHandler turns handler errors into a JSON {"error": ...} body.
// Server-side failures are logged and answered with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := genericMessage

	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code, msg = fiber.StatusNotFound, domain.ErrNotFound.Error()
	case errors.Is(err, domain.ErrUnknownFilter):
		code, msg = fiber.StatusBadRequest, err.Error()
	case errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError:
		code, msg = fe.Code, fe.Message
	}

	c.Status(code)
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	} else {
		applog.Warn(c, "request.rejected", map[string]any{"err": err.Error()})
	}
	return c.JSON(fiber.Map{"error": msg})
}
