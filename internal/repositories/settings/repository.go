// Package settings stores application settings as key/value rows.
package settings

import (
	"context"
)

// Keys used by the notification settings.
const (
	KeyDestination = "notification.destination"
	KeyEnabled     = "notification.enabled"
)

type Repository interface {
	// Get returns common.ErrorNotFound for an unknown key.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	// Delete is a no-op for an unknown key.
	Delete(ctx context.Context, key string) error
}
