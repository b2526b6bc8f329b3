package bidding

import (
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type ProcessRequest struct {
	Family    string `json:"family" validate:"omitempty,oneof=main starline jackpot"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// ProcessResults settles every pending bid of a family in a date range
// against the published charts.
func ProcessResults(c *fiber.Ctx) error {
	var req ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "START_AND_END_DATE_REQUIRED")
	}
	if req.Family == "" {
		req.Family = models.FamilyMain
	}

	start, _, err := services.ParseDayWindow(req.StartDate)
	if err != nil {
		return helpers.JSONError(c, "INVALID_START_DATE")
	}
	_, end, err := services.ParseDayWindow(req.EndDate)
	if err != nil {
		return helpers.JSONError(c, "INVALID_END_DATE")
	}
	if end.Before(start) {
		return helpers.JSONError(c, "END_DATE_BEFORE_START_DATE")
	}

	summary, err := services.ProcessResults(c.Context(), services.ProcessOptions{
		Family:    req.Family,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	return helpers.JSONSuccess(c, "Settlement complete", summary)
}
