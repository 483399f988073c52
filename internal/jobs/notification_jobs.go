package jobs

import (
	"context"

	"moto-rental-backend/internal/logger"
)

// PurgeOldNotifications deletes moto notifications older than the configured
// retention window.
func (jr *JobRunner) PurgeOldNotifications() {
	jr.runWithRecovery("PurgeOldNotifications", func() {
		ctx := context.Background()

		retentionDays := jr.config.Scheduler.NotificationRetentionDays
		deleted, err := jr.store.DeleteOlderThan(ctx, retentionDays)
		if err != nil {
			logger.Error("Failed to purge old notifications", "error", err)
			return
		}

		logger.Info("Purged old notifications", "deleted", deleted, "retention_days", retentionDays)
	})
}
