package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChartWeek caches one scraped week row of a market's result chart.
// Days holds the seven parsed day results as JSON so a settlement run can
// re-use a chart without hitting the scrape source again.
type ChartWeek struct {
	gorm.Model

	GameID    string         `gorm:"index:idx_game_week,unique;size:64" json:"game_id"`
	DateRange string         `gorm:"index:idx_game_week,unique;size:32" json:"date_range"`
	Days      datatypes.JSON `json:"days"`
	FetchedAt time.Time      `json:"fetched_at"`
}
