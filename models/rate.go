package models

import "gorm.io/gorm"

const (
	FamilyMain     = "main"
	FamilyStarline = "starline"
	FamilyJackpot  = "jackpot"
)

// GameRate stores one payout rate per bet type and market family.
// StakeUnit is the reference stake, PayoutUnit the payout for that stake;
// the effective multiplier is PayoutUnit / StakeUnit.
type GameRate struct {
	gorm.Model

	Family     string  `gorm:"index:idx_family_type,unique;size:16" json:"family"`
	GameType   string  `gorm:"index:idx_family_type,unique;size:32" json:"game_type"`
	StakeUnit  float64 `json:"stake_unit"`
	PayoutUnit float64 `json:"payout_unit"`
}
