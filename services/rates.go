package services

import (
	"errors"
	"fmt"

	"matka/database"
	"matka/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrRatesNotConfigured aborts a settlement run before any bid is touched.
// An empty rate table would silently pay every winner multiplier 1.
var ErrRatesNotConfigured = errors.New("game rates are not configured")

// rateRowByType maps bet types to their rate-table row. Several bet types
// intentionally share one row (jodi-derived products pay jodi rates, both
// half sangams pay the half-sangam rate). Types without a row pay the
// default multiplier of 1.
var rateRowByType = map[string]string{
	TypeSingleDigits: "single-digits",
	TypeJodi:         "jodi-digit",
	TypeSinglePana:   "single-pana",
	TypeDoublePana:   "double-pana",
	TypeTriplePana:   "triple-pana",
	TypeHalfSangamA:  "half-sangam",
	TypeHalfSangamB:  "half-sangam",
	TypeFullSangam:   "full-sangam",
	TypeRedBracket:   "jodi-digit",
	TypeGroupJodi:    "jodi-digit",
}

// ResolveRates loads the rate table of one market family and normalizes it
// into betType -> payout multiplier with a "default" entry of 1.
func ResolveRates(family string) (map[string]float64, error) {
	var rows []models.GameRate
	if err := database.DB.Where("family = ?", family).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load %s rates: %w", family, err)
	}
	if len(rows) == 0 {
		return nil, ErrRatesNotConfigured
	}

	byRow := make(map[string]float64, len(rows))
	for _, row := range rows {
		if row.StakeUnit <= 0 {
			continue
		}
		mult := decimal.NewFromFloat(row.PayoutUnit).
			Div(decimal.NewFromFloat(row.StakeUnit)).
			Round(4)
		byRow[row.GameType] = mult.InexactFloat64()
	}

	rates := map[string]float64{"default": 1}
	for betType, rowKey := range rateRowByType {
		if mult, ok := byRow[rowKey]; ok {
			rates[betType] = mult
		}
	}
	if len(rates) <= 1 {
		return nil, ErrRatesNotConfigured
	}
	return rates, nil
}

// MultiplierFor looks up the payout multiplier for a bet type, falling
// back to the explicit default entry.
func MultiplierFor(rates map[string]float64, gameType string) float64 {
	if mult, ok := rates[gameType]; ok {
		return mult
	}
	return rates["default"]
}

// ComputePayout returns stake times multiplier rounded to 2 places,
// computed in decimal so repeated settlements never accumulate float
// drift.
func ComputePayout(stake, multiplier float64) float64 {
	return decimal.NewFromFloat(stake).
		Mul(decimal.NewFromFloat(multiplier)).
		Round(2).
		InexactFloat64()
}

// RateInput is one rate-table row as submitted by the settings form.
type RateInput struct {
	GameType   string  `json:"game_type" validate:"required"`
	StakeUnit  float64 `json:"stake_unit" validate:"gt=0"`
	PayoutUnit float64 `json:"payout_unit" validate:"gte=0"`
}

// ListRates returns the raw rate rows of a family for the settings form.
func ListRates(family string) ([]models.GameRate, error) {
	var rows []models.GameRate
	err := database.DB.Where("family = ?", family).Order("game_type").Find(&rows).Error
	return rows, err
}

// UpdateRates upserts rate rows for a family in one transaction.
func UpdateRates(family string, inputs []RateInput) error {
	if len(inputs) == 0 {
		return errors.New("no rates supplied")
	}
	return database.DB.Transaction(func(tx *gorm.DB) error {
		for _, in := range inputs {
			var row models.GameRate
			err := tx.Where("family = ? AND game_type = ?", family, in.GameType).First(&row).Error
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				if cerr := tx.Create(&models.GameRate{
					Family:     family,
					GameType:   in.GameType,
					StakeUnit:  in.StakeUnit,
					PayoutUnit: in.PayoutUnit,
				}).Error; cerr != nil {
					return cerr
				}
				continue
			}
			if uerr := tx.Model(&row).Updates(map[string]any{
				"stake_unit":  in.StakeUnit,
				"payout_unit": in.PayoutUnit,
			}).Error; uerr != nil {
				return uerr
			}
		}
		return nil
	})
}
