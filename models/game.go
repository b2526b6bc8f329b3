package models

import (
	"time"

	"gorm.io/gorm"
)

// Game is a main-family market. GameID doubles as the chart identifier on
// the scrape source (e.g. "kalyan-chart").
type Game struct {
	gorm.Model

	GameID     string `gorm:"uniqueIndex;size:64" json:"game_id"`
	Name       string `gorm:"size:128" json:"name"`
	AltName    string `gorm:"size:128" json:"alt_name"`
	OpenTime   string `gorm:"size:16" json:"open_time"`
	CloseTime  string `gorm:"size:16" json:"close_time"`
	IsDisabled bool   `gorm:"default:false" json:"is_disabled"`
}

type StarlineGame struct {
	gorm.Model

	GameName      string `gorm:"size:128" json:"game_name"`
	GameNameHindi string `gorm:"size:128" json:"game_name_hindi"`
	OpenTime      string `gorm:"size:16" json:"open_time"`
	GameStatus    string `gorm:"size:8;default:1" json:"game_status"`
}

type JackpotGame struct {
	gorm.Model

	GameName      string `gorm:"size:128" json:"game_name"`
	GameNameHindi string `gorm:"size:128" json:"game_name_hindi"`
	CloseTime     string `gorm:"size:16" json:"close_time"`
	GameStatus    string `gorm:"size:8;default:1" json:"game_status"`
}

// JackpotResult records a declared jackpot jodi, one row per game and date.
type JackpotResult struct {
	gorm.Model

	GameID          string    `gorm:"index:idx_jackpot_result,unique;size:64" json:"game_id"`
	GameTitle       string    `gorm:"size:128" json:"game_title"`
	Jodi            string    `gorm:"size:4" json:"jodi"`
	DeclarationDate string    `gorm:"index:idx_jackpot_result,unique;size:16" json:"declaration_date"`
	DeclaredAt      time.Time `json:"declared_at"`
}
