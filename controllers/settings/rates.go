package settings

import (
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func validFamily(family string) bool {
	switch family {
	case models.FamilyMain, models.FamilyStarline, models.FamilyJackpot:
		return true
	}
	return false
}

// GetRates returns the raw rate rows of one market family.
func GetRates(c *fiber.Ctx) error {
	family := c.Query("family", models.FamilyMain)
	if !validFamily(family) {
		return helpers.JSONError(c, "INVALID_FAMILY")
	}

	rows, err := services.ListRates(family)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_RATES")
	}

	return helpers.JSONSuccess(c, "Rates loaded", rows)
}

type UpdateRatesRequest struct {
	Family string               `json:"family" validate:"required,oneof=main starline jackpot"`
	Rates  []services.RateInput `json:"rates" validate:"required,min=1,dive"`
}

// UpdateRates upserts the rate rows of one family.
func UpdateRates(c *fiber.Ctx) error {
	var req UpdateRatesRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "FAMILY_AND_VALID_RATES_REQUIRED")
	}

	if err := services.UpdateRates(req.Family, req.Rates); err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_RATES")
	}

	rows, err := services.ListRates(req.Family)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_RATES")
	}
	return helpers.JSONSuccess(c, "Rates updated", rows)
}
