package sms

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/logging"
)

// LogTransport "sends" a message by logging it.
type LogTransport struct {
	logger logging.Logger
}

func NewLogTransport(logger logging.Logger) *LogTransport {
	if logger == nil {
		logger = logging.Discard()
	}
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(ctx context.Context, destination, body string) error {
	t.logger.Info(ctx, "sms", "to", destination, "body", body)
	return nil
}
