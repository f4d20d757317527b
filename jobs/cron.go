package jobs

import (
	"time"

	"stayhub/services"
	"stayhub/services/logger"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs registers the nightly maintenance jobs and starts the
// scheduler. Room statuses follow date boundaries, so both jobs run right
// after midnight.
func InitCronJobs(c *cron.Cron, db *gorm.DB) {
	l := logger.NewDefaultLogger(logger.InfoLevel)

	_, err := c.AddFunc("5 0 * * *", func() {
		now := time.Now()

		cancelled, err := services.CancelStaleReservations(db, now)
		if err != nil {
			l.Error("cancel stale reservations failed: %v", err)
		} else if cancelled > 0 {
			l.Info("cancelled %d stale pending reservations", cancelled)
		}

		if err := services.SyncAllRoomStatuses(db, now); err != nil {
			l.Error("room status sync failed: %v", err)
		}
	})
	if err != nil {
		l.Error("failed to register nightly job: %v", err)
		return
	}

	c.Start()
}
