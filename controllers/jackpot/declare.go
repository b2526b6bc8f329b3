package jackpot

import (
	"matka/helpers"
	"matka/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type DeclareRequest struct {
	GameID    string `json:"game_id" validate:"required"`
	GameTitle string `json:"game_title" validate:"required"`
	Jodi      string `json:"jodi" validate:"required,len=2,numeric"`
	Date      string `json:"date" validate:"required"`
}

// DeclareResult records a jackpot jodi and settles the market's pending
// bids. Winners are credited winnings only.
func DeclareResult(c *fiber.Ctx) error {
	var req DeclareRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "GAME_TITLE_JODI_AND_DATE_REQUIRED")
	}

	summary, err := services.DeclareJackpotResult(c.Context(),
		req.GameID, req.GameTitle, req.Jodi, req.Date)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	return helpers.JSONSuccess(c, "Jackpot result declared", summary)
}
