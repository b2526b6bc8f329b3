package bidding

import (
	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

type PredictRequest struct {
	GameID    string `json:"game_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	OpenPana  string `json:"open_pana" validate:"required,len=3,numeric"`
	ClosePana string `json:"close_pana" validate:"required,len=3,numeric"`
	Session   string `json:"session" validate:"omitempty,oneof=open close Open Close OPEN CLOSE"`
}

// PredictWinners dry-runs a hypothetical result against one market's
// pending bids. Nothing is settled or credited.
func PredictWinners(c *fiber.Ctx) error {
	var req PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "GAME_ID_DATE_AND_PANNAS_REQUIRED")
	}

	winners, err := services.PredictWinners(c.Context(),
		req.GameID, req.Date, req.OpenPana, req.ClosePana, req.Session)
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
