package inventory

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	// UpdateQuantity changes the quantity only and returns rows affected.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (int64, error)
	// Update replaces name, quantity and threshold and returns rows affected.
	Update(ctx context.Context, item *models.InventoryItem) (int64, error)
	// Delete is a no-op for an unknown id.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]models.InventoryItem, error)
}
