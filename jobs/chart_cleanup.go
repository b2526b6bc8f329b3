package jobs

import (
	"time"

	tasks "matka/task"
)

func StartChartCleanupScheduler() {
	ticker := time.NewTicker(24 * time.Hour)
	go func() {
		for {
			<-ticker.C
			tasks.CleanupOldChartWeeks()
		}
	}()
}
