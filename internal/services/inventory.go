package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// InventoryService manages inventory items. Numeric fields arrive as text
// typed by the user and are parsed here.
type InventoryService interface {
	// AddItem requires name and quantity; an empty threshold means
	// models.DefaultThreshold.
	AddItem(ctx context.Context, name, quantity, threshold string) (int64, error)
	// EditItem replaces all three fields and returns common.ErrorNotFound
	// when no item has the id.
	EditItem(ctx context.Context, id int64, name, quantity, threshold string) error
	SetQuantity(ctx context.Context, id int64, quantity string) error
	RemoveItem(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]models.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]models.InventoryItem, error)
}

type inventoryService struct {
	store ItemStore
}

func NewInventoryService(store ItemStore) InventoryService {
	return &inventoryService{store: store}
}

func (s *inventoryService) AddItem(ctx context.Context, name, quantity, threshold string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(quantity) == "" {
		return 0, common.ErrEmptyInput
	}

	qty, err := parseInt(quantity)
	if err != nil {
		return 0, err
	}

	th := models.DefaultThreshold
	if strings.TrimSpace(threshold) != "" {
		if th, err = parseInt(threshold); err != nil {
			return 0, err
		}
	}

	return s.store.CreateItem(ctx, name, qty, th)
}

func (s *inventoryService) EditItem(ctx context.Context, id int64, name, quantity, threshold string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(quantity) == "" || strings.TrimSpace(threshold) == "" {
		return common.ErrEmptyInput
	}

	qty, err := parseInt(quantity)
	if err != nil {
		return err
	}
	th, err := parseInt(threshold)
	if err != nil {
		return err
	}

	n, err := s.store.UpdateItem(ctx, id, name, qty, th)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (s *inventoryService) SetQuantity(ctx context.Context, id int64, quantity string) error {
	if strings.TrimSpace(quantity) == "" {
		return common.ErrEmptyInput
	}
	qty, err := parseInt(quantity)
	if err != nil {
		return err
	}

	n, err := s.store.UpdateItemQuantity(ctx, id, qty)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (s *inventoryService) RemoveItem(ctx context.Context, id int64) error {
	return s.store.DeleteItem(ctx, id)
}

func (s *inventoryService) ListAll(ctx context.Context) ([]models.InventoryItem, error) {
	return s.store.ListItems(ctx)
}

func (s *inventoryService) ListLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	return s.store.ListLowStockItems(ctx)
}

// ParseID parses an item id typed by the user.
func ParseID(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, common.ErrEmptyInput
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", common.ErrInvalidInput, text)
	}
	return id, nil
}

func parseInt(text string) (int, error) {
	text = strings.TrimSpace(text)
	// bounded by the 32-bit INTEGER quantity/threshold columns in postgres
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number in 32-bit range", common.ErrInvalidInput, text)
	}
	return int(v), nil
}
