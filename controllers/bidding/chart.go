package bidding

import (
	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

// GetChartResult looks up the published result of one market on one date.
func GetChartResult(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	date := c.Query("date")
	if gameID == "" || date == "" {
		return helpers.JSONError(c, "GAME_ID_AND_DATE_REQUIRED")
	}

	start, _, err := services.ParseDayWindow(date)
	if err != nil {
		return helpers.JSONError(c, "INVALID_DATE")
	}

	source := services.NewChartSource(services.NewMatkaClient())
	result, err := source.ResolveDailyResult(c.Context(), gameID, start)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}
	if result == nil {
		return helpers.JSONError(c, "RESULT_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Result found", result)
}
