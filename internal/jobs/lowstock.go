// Package jobs runs the periodic low-stock check in the background.
package jobs

import (
	"context"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
	"github.com/robfig/cron/v3"
)

// Notifier is the part of services.AlertService the job needs.
type Notifier interface {
	CheckAndNotify(ctx context.Context) (services.AlertResult, error)
}

// LowStockJob is a cron.Job that sends a low-stock alert to the saved
// destination. Failures are logged and never propagated.
type LowStockJob struct {
	notifier Notifier
	timeout  time.Duration
	logger   logging.Logger
}

var _ cron.Job = (*LowStockJob)(nil)

func NewLowStockJob(n Notifier, timeout time.Duration, logger logging.Logger) *LowStockJob {
	if logger == nil {
		logger = logging.Discard()
	}
	return &LowStockJob{notifier: n, timeout: timeout, logger: logger.With("job", "low_stock")}
}

func (j *LowStockJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	res, err := j.notifier.CheckAndNotify(ctx)
	if err != nil {
		j.logger.Error(ctx, "low stock check failed", "error", err)
		return
	}

	switch res.Status {
	case services.AlertSent:
		j.logger.Info(ctx, "low stock alert sent", "message_id", res.MessageID)
	case services.AlertFailed:
		j.logger.Warn(ctx, "low stock alert not delivered", "message_id", res.MessageID, "error", res.Err)
	default:
		j.logger.Debug(ctx, "low stock alert skipped")
	}
}
