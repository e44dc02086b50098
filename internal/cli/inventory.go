package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
	"github.com/dmitrijs2005/stockkeeper/internal/services"
)

func (a *App) List(ctx context.Context) error {
	items, err := a.inventoryService.ListAll(ctx)
	if err != nil {
		return err
	}
	printItems(items, "No items.")
	return nil
}

func (a *App) Low(ctx context.Context) error {
	items, err := a.inventoryService.ListLowStock(ctx)
	if err != nil {
		return err
	}
	printItems(items, "Nothing is low on stock.")
	return nil
}

func printItems(items []models.InventoryItem, empty string) {
	if len(items) == 0 {
		printlnFn(empty)
		return
	}
	for _, item := range items {
		line := item.String()
		if item.IsLow() {
			line += " [LOW]"
		}
		printlnFn(line)
	}
}

func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Item name", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := getSimpleText(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	threshold, err := getSimpleText(a.reader, fmt.Sprintf("Low-stock threshold (empty for %d)", models.DefaultThreshold), os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.inventoryService.AddItem(ctx, name, quantity, threshold)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Item added with id %d.", id))
	return nil
}

func (a *App) readID(prompt string) (int64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	return services.ParseID(text)
}

func (a *App) Edit(ctx context.Context) error {
	id, err := a.readID("Item id to edit")
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "New name", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := getSimpleText(a.reader, "New quantity", os.Stdout)
	if err != nil {
		return err
	}
	threshold, err := getSimpleText(a.reader, "New low-stock threshold", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.inventoryService.EditItem(ctx, id, name, quantity, threshold); err != nil {
		return err
	}
	printlnFn("Item updated.")
	return nil
}

func (a *App) SetQty(ctx context.Context) error {
	id, err := a.readID("Item id")
	if err != nil {
		return err
	}
	quantity, err := getSimpleText(a.reader, "New quantity", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.inventoryService.SetQuantity(ctx, id, quantity); err != nil {
		return err
	}
	printlnFn("Quantity updated.")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := a.readID("Item id to delete")
	if err != nil {
		return err
	}

	if err := a.inventoryService.RemoveItem(ctx, id); err != nil {
		return err
	}
	printlnFn("Item deleted.")
	return nil
}
