package models

import "gorm.io/gorm"

const (
	BidStatusPending  = "pending"
	BidStatusWon      = "won"
	BidStatusLost     = "lost"
	BidStatusReverted = "reverted"
)

// Bid is a single wager submission. Status only moves forward:
// pending -> won/lost -> reverted, or pending -> reverted.
type Bid struct {
	gorm.Model

	UID              string  `gorm:"index;size:64" json:"uid"`
	GameID           string  `gorm:"index;size:64" json:"game_id"`
	Title            string  `gorm:"size:128" json:"title"`
	GameType         string  `gorm:"size:32" json:"game_type"`
	SelectedGameType string  `gorm:"size:16" json:"selected_game_type"`
	Answer           string  `gorm:"size:64" json:"answer"`
	BidAmount        float64 `json:"bid_amount"`
	Status           string  `gorm:"index;size:16;default:pending" json:"status"`
	WinAmount        float64 `json:"win_amount"`
	IsStarline       bool    `gorm:"index;default:false" json:"is_starline"`
	IsJackpot        bool    `gorm:"index;default:false" json:"is_jackpot"`
}
