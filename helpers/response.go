package helpers

import (
	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONBadRequest(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusBadRequest, message)
}

func JSONNotFound(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusNotFound, message)
}

func JSONInternal(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusInternalServerError, message)
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}
