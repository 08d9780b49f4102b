package inventory

import "fmt"

// AlertLevel grades how urgent a low-stock condition is
type AlertLevel string

const (
	// AlertLevelCritical means the item is completely out of stock
	AlertLevelCritical AlertLevel = "critical"
	// AlertLevelHigh means the quantity fell below half the minimum
	AlertLevelHigh AlertLevel = "high"
	// AlertLevelMedium covers the remaining low-stock range
	AlertLevelMedium AlertLevel = "medium"
)

// String returns the string representation
func (l AlertLevel) String() string {
	return string(l)
}

// Alert is a derived, non-persisted notification produced when an item is
// in low-stock state. It has a fixed schema; absence is expressed as a
// nil pointer, never as a differently shaped payload.
type Alert struct {
	ItemID          int64      `json:"item_id"`
	ItemName        string     `json:"item_name"`
	SKU             string     `json:"sku"`
	CurrentQuantity int        `json:"current_quantity"`
	MinimumStock    int        `json:"minimum_stock"`
	Level           AlertLevel `json:"level"`
	Message         string     `json:"message"`
}

// DeriveAlert inspects an item and returns a low-stock alert, or nil when
// the item is above its threshold.
func DeriveAlert(item *InventoryItem) *Alert {
	if !item.IsLowStock() {
		return nil
	}
	return &Alert{
		ItemID:          item.ID,
		ItemName:        item.Name,
		SKU:             item.SKU,
		CurrentQuantity: item.Quantity,
		MinimumStock:    item.MinimumStock,
		Level:           alertLevelFor(item),
		Message: fmt.Sprintf("Low stock alert: %s has only %d units remaining (minimum: %d)",
			item.Name, item.Quantity, item.MinimumStock),
	}
}

func alertLevelFor(item *InventoryItem) AlertLevel {
	switch {
	case item.Quantity == 0:
		return AlertLevelCritical
	case item.Quantity < item.MinimumStock/2:
		return AlertLevelHigh
	default:
		return AlertLevelMedium
	}
}
