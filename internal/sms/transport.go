// Package sms delivers text messages to phone numbers.
//
// A Transport sends exactly once and never retries. Three implementations
// are provided: LogTransport writes messages to the logger (for development),
// SNSTransport publishes through AWS SNS, and HTTPTransport posts to a
// generic SMS gateway.
package sms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/stockkeeper/internal/config"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
)

type Transport interface {
	Send(ctx context.Context, destination, body string) error
}

// New builds the transport selected by cfg.SMSProvider.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (Transport, error) {
	switch cfg.SMSProvider {
	case "", config.ProviderLog:
		return NewLogTransport(logger), nil
	case config.ProviderSNS:
		return NewSNSTransport(ctx, cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey)
	case config.ProviderHTTP:
		return NewHTTPTransport(cfg.SMSGatewayURL, []byte(cfg.SMSGatewaySecret), &http.Client{Timeout: cfg.SendTimeout}), nil
	}
	return nil, fmt.Errorf("unknown sms provider %q", cfg.SMSProvider)
}
