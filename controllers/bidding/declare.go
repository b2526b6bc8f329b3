package bidding

import (
	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

type GameResultInput struct {
	OpenPana  string `json:"open_pana"`
	ClosePana string `json:"close_pana"`
}

type DeclareRequest struct {
	Family  string                     `json:"family" validate:"omitempty,oneof=main starline"`
	Date    string                     `json:"date" validate:"required"`
	Results map[string]GameResultInput `json:"results" validate:"required,min=1"`
}

// DeclareResults settles the named markets of one date against manually
// entered pannas. Markets not named in the request are left untouched,
// and a half left blank skips its bids instead of losing them.
func DeclareResults(c *fiber.Ctx) error {
	var req DeclareRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "DATE_AND_RESULTS_REQUIRED")
	}

	start, end, err := services.ParseDayWindow(req.Date)
	if err != nil {
		return helpers.JSONError(c, "INVALID_DATE")
	}

	overrides := make(map[string]services.Override, len(req.Results))
	for gameID, in := range req.Results {
		o, err := services.OverrideFromPannas(in.OpenPana, in.ClosePana)
		if err != nil {
			return helpers.JSONError(c, err.Error())
		}
		overrides[gameID] = o
	}

	summary, err := services.ProcessResults(c.Context(), services.ProcessOptions{
		Family:    req.Family,
		StartDate: start,
		EndDate:   end,
		Overrides: overrides,
	})
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	return helpers.JSONSuccess(c, "Results declared", summary)
}
