package jackpot

import (
	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

type PredictRequest struct {
	GameTitle string `json:"game_title" validate:"required"`
	Jodi      string `json:"jodi" validate:"required,len=2,numeric"`
	Date      string `json:"date" validate:"required"`
}

// PredictWinners dry-runs a jackpot jodi against the market's pending
// bids without writing anything.
func PredictWinners(c *fiber.Ctx) error {
	var req PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "GAME_TITLE_JODI_AND_DATE_REQUIRED")
	}

	winners, err := services.PredictJackpotWinners(c.Context(),
		req.GameTitle, req.Date, req.Jodi)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	total := 0.0
	for _, w := range winners {
		total += w.WinAmount
	}

	return helpers.JSONSuccess(c, "Prediction complete", fiber.Map{
		"winner_count": len(winners),
		"total_payout": helpers.FormatFloat(total, 2),
		"winners":      winners,
	})
}
