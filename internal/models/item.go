package models

import "fmt"

// DefaultThreshold is used when an item is added without a threshold.
const DefaultThreshold = 5

// InventoryItem is a tracked stock line. Name is unique across the inventory.
type InventoryItem struct {
	ID        int64
	Name      string
	Quantity  int
	Threshold int
}

// IsLow reports whether the item is at or below its threshold.
func (i InventoryItem) IsLow() bool {
	return i.Quantity <= i.Threshold
}

func (i InventoryItem) String() string {
	return fmt.Sprintf("#%d %s qty=%d threshold=%d", i.ID, i.Name, i.Quantity, i.Threshold)
}
