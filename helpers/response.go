package helpers

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

// JSONSuccess writes the standard success envelope. Every admin endpoint
// responds with the same {success, message, data} shape so the panel can
// handle all of them with one client.
func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JSONError writes the same envelope with a 400 status and a nil data
// field. The message is a short machine-readable code or a validation
// error, never a stack trace.
func JSONError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// FormatFloat rounds a float to the given number of decimal places for
// display. Settlement math itself never rounds through this.
func FormatFloat(num float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(num*pow) / pow
}
