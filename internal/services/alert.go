package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/sms"
	"github.com/google/uuid"
)

const (
	TestMessage       = "This is a test notification from StockKeeper"
	lowStockMsgPrefix = "Low inventory alert: "
)

type AlertStatus int

const (
	// AlertUnknown is the zero value; results returned with an error carry
	// AlertFailed instead.
	AlertUnknown AlertStatus = iota
	AlertSent
	// AlertSkipped means nothing was sent: no low-stock items, or
	// notifications are disabled.
	AlertSkipped
	// AlertFailed means the transport rejected the message.
	AlertFailed
)

func (s AlertStatus) String() string {
	switch s {
	case AlertUnknown:
		return "unknown"
	case AlertSent:
		return "sent"
	case AlertSkipped:
		return "skipped"
	case AlertFailed:
		return "failed"
	}
	return fmt.Sprintf("AlertStatus(%d)", int(s))
}

// AlertResult describes one low-stock alert attempt. Transport failures are
// reported here, not as the returned error.
type AlertResult struct {
	Status    AlertStatus
	MessageID string
	Message   string
	Err       error
}

// AlertService composes and sends low-stock notifications.
type AlertService interface {
	// ComposeLowStockMessage returns ok=false when no item is low on stock.
	ComposeLowStockMessage(ctx context.Context) (msg string, ok bool, err error)
	SendTest(ctx context.Context, destination string) error
	SendLowStockAlert(ctx context.Context, destination string) (AlertResult, error)
	// CheckAndNotify sends a low-stock alert to the saved destination when
	// notifications are enabled.
	CheckAndNotify(ctx context.Context) (AlertResult, error)
	Settings(ctx context.Context) (models.NotificationSettings, error)
	SaveSettings(ctx context.Context, destination string, enabled bool) error
	// ClearSettings removes the saved destination; scheduled alerts stop.
	ClearSettings(ctx context.Context) error
}

type alertService struct {
	items     ItemStore
	settings  SettingsStore
	transport sms.Transport
	timeout   time.Duration
	logger    logging.Logger
}

// NewAlertService constructs an AlertService. A zero timeout leaves sends
// bounded only by ctx.
func NewAlertService(items ItemStore, settings SettingsStore, transport sms.Transport, timeout time.Duration, logger logging.Logger) AlertService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &alertService{
		items:     items,
		settings:  settings,
		transport: transport,
		timeout:   timeout,
		logger:    logger,
	}
}

// ComposeLowStockMessage renders items as "Low inventory alert: A (1), B (0)"
// in the given order. It returns "" for no items.
func ComposeLowStockMessage(items []models.InventoryItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", it.Name, it.Quantity))
	}
	return lowStockMsgPrefix + strings.Join(parts, ", ")
}

func (s *alertService) ComposeLowStockMessage(ctx context.Context) (string, bool, error) {
	items, err := s.items.ListLowStockItems(ctx)
	if err != nil {
		return "", false, fmt.Errorf("low stock query: %w", err)
	}
	if len(items) == 0 {
		return "", false, nil
	}
	return ComposeLowStockMessage(items), true, nil
}

func (s *alertService) SendTest(ctx context.Context, destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return common.ErrEmptyDestination
	}

	if err := s.send(ctx, destination, TestMessage); err != nil {
		s.logger.Error(ctx, "test sms failed", "to", destination, "error", err)
		return fmt.Errorf("%w: %w", common.ErrTransport, err)
	}
	s.logger.Info(ctx, "test sms sent", "to", destination)
	return nil
}

func (s *alertService) SendLowStockAlert(ctx context.Context, destination string) (AlertResult, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return AlertResult{Status: AlertSkipped}, common.ErrEmptyDestination
	}

	msg, ok, err := s.ComposeLowStockMessage(ctx)
	if err != nil {
		return AlertResult{Status: AlertFailed, Err: err}, err
	}
	if !ok {
		return AlertResult{Status: AlertSkipped}, nil
	}

	res := AlertResult{MessageID: uuid.NewString(), Message: msg}
	log := s.logger.With("message_id", res.MessageID, "to", destination)

	if err := s.send(ctx, destination, msg); err != nil {
		// not returned: the caller learns about it from the result only
		log.Warn(ctx, "low stock sms failed", "error", err)
		res.Status = AlertFailed
		res.Err = fmt.Errorf("%w: %w", common.ErrTransport, err)
		return res, nil
	}

	log.Info(ctx, "low stock sms sent")
	res.Status = AlertSent
	return res, nil
}

func (s *alertService) CheckAndNotify(ctx context.Context) (AlertResult, error) {
	ns, err := s.settings.NotificationSettings(ctx)
	if err != nil {
		err = fmt.Errorf("load settings: %w", err)
		return AlertResult{Status: AlertFailed, Err: err}, err
	}
	if !ns.Enabled || strings.TrimSpace(ns.Destination) == "" {
		return AlertResult{Status: AlertSkipped}, nil
	}
	return s.SendLowStockAlert(ctx, ns.Destination)
}

func (s *alertService) Settings(ctx context.Context) (models.NotificationSettings, error) {
	return s.settings.NotificationSettings(ctx)
}

func (s *alertService) SaveSettings(ctx context.Context, destination string, enabled bool) error {
	destination = strings.TrimSpace(destination)
	if enabled && destination == "" {
		return common.ErrEmptyDestination
	}
	return s.settings.SaveNotificationSettings(ctx, models.NotificationSettings{
		Destination: destination,
		Enabled:     enabled,
	})
}

func (s *alertService) ClearSettings(ctx context.Context) error {
	if err := s.settings.ClearNotificationSettings(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "notification settings cleared")
	return nil
}

func (s *alertService) send(ctx context.Context, destination, body string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.transport.Send(ctx, destination, body)
}
