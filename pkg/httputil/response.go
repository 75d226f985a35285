package httputil

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KelGut13/backend-crt/pkg/errors"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(c *fiber.Ctx, data any) error {
	return c.JSON(Response{Success: true, Data: data})
}

func SuccessMessage(c *fiber.Ctx, msg string) error {
	return c.JSON(Response{Success: true, Message: msg})
}

// Error renders err through the AppError taxonomy. Internal causes are logged
// server-side and replaced with a generic message so storage details never
// reach the client.
func Error(c *fiber.Ctx, log logger.Logger, err error) error {
	app := errors.From(err)
	status := app.Code.HTTPStatus()

	msg := app.Message
	if status == fiber.StatusInternalServerError {
		log.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
		msg = "internal server error"
	}
	return c.Status(status).JSON(Response{Success: false, Message: msg})
}
