package tasks

import (
	"log"
	"time"

	"matka/database"
	"matka/models"
)

func CleanupOldChartWeeks() {
	sixtyDaysAgo := time.Now().AddDate(0, 0, -60)
	result := database.DB.
		Where("fetched_at < ?", sixtyDaysAgo).
		Delete(&models.ChartWeek{})

	if result.Error != nil {
		log.Println("❌ Failed to delete old chart weeks:", result.Error)
	} else {
		log.Printf("✅ Deleted %d cached chart weeks older than 60 days\n", result.RowsAffected)
	}
}
