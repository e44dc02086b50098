package services

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// UserStore is the part of the store used by AuthService.
type UserStore interface {
	FindUser(ctx context.Context, username, password string) (bool, error)
	CreateUser(ctx context.Context, username, password string) (int64, error)
}

// ItemStore is the part of the store used by InventoryService.
type ItemStore interface {
	CreateItem(ctx context.Context, name string, quantity, threshold int) (int64, error)
	UpdateItemQuantity(ctx context.Context, id int64, quantity int) (int64, error)
	UpdateItem(ctx context.Context, id int64, name string, quantity, threshold int) (int64, error)
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context) ([]models.InventoryItem, error)
	ListLowStockItems(ctx context.Context) ([]models.InventoryItem, error)
}

// SettingsStore persists the notification settings.
type SettingsStore interface {
	NotificationSettings(ctx context.Context) (models.NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, s models.NotificationSettings) error
	ClearNotificationSettings(ctx context.Context) error
}
