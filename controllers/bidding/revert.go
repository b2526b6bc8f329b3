package bidding

import (
	"errors"

	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

type RevertRequest struct {
	Date   string `json:"date"`
	GameID string `json:"game_id"`
}

// RevertBids refunds the stake of every bid matching the date and/or
// game filters and marks them reverted.
func RevertBids(c *fiber.Ctx) error {
	var req RevertRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	summary, err := services.RevertBidsByCriteria(c.Context(), req.Date, req.GameID)
	if err != nil {
		if errors.Is(err, services.ErrCriteriaRequired) {
			return helpers.JSONError(c, "DATE_OR_GAME_ID_REQUIRED")
		}
		return helpers.JSONError(c, err.Error())
	}

	return helpers.JSONSuccess(c, "Bids reverted", summary)
}

// ClearRevertedBids permanently deletes reverted bids matching the
// filters. The refunds stay on the ledger.
func ClearRevertedBids(c *fiber.Ctx) error {
	var req RevertRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	deleted, err := services.ClearRevertedBids(c.Context(), req.Date, req.GameID)
	if err != nil {
		if errors.Is(err, services.ErrCriteriaRequired) {
			return helpers.JSONError(c, "DATE_OR_GAME_ID_REQUIRED")
		}
		return helpers.JSONError(c, err.Error())
	}

	return helpers.JSONSuccess(c, "Reverted bids cleared", fiber.Map{
		"deleted_count": deleted,
	})
}
