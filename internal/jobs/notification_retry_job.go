package jobs

import (
	"context"
	"log/slog"

	"ordercore/internal/adapters/out/notify"

	"github.com/robfig/cron/v3"
)

// NotificationRetryJob periodically sweeps failed order events back into the
// delivery queue once their backoff has elapsed.
type NotificationRetryJob struct {
	dispatcher *notify.Dispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRetryJob creates a job redelivering parked notification
// events every ten seconds.
func NewNotificationRetryJob(dispatcher *notify.Dispatcher, logger *slog.Logger) *NotificationRetryJob {
	return &NotificationRetryJob{
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_retry_job"),
	}
}

// Start begins the redelivery sweep on a ten second schedule.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		requeued := j.dispatcher.RedeliverPending()
		if requeued > 0 {
			j.logger.InfoContext(ctx, "Requeued order events for redelivery",
				"count", requeued,
				"still_pending", j.dispatcher.PendingCount(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every ten seconds)")
	return nil
}

// Stop stops the notification retry job.
func (j *NotificationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}
