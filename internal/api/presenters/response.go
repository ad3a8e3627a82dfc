package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// JSONResponse writes data as the whole response body, without an envelope.
func JSONResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// MessageResponse writes {"message": message}.
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// ErrorResponse writes a plain text body. err is never exposed to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(message)
}
