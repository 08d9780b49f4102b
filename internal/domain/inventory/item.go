package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// InventoryItem is the aggregate root for a tracked stock-keeping unit.
// Quantity is only ever changed through ApplyTransaction; the descriptive
// fields are updated through UpdateDetails. The transaction history is
// owned exclusively by the item and referenced by id, never held as a
// live object graph.
type InventoryItem struct {
	shared.BaseAggregateRoot
	Name         string          `gorm:"type:varchar(200);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	SKU          string          `gorm:"type:varchar(64);not null;uniqueIndex" json:"sku"`
	Category     string          `gorm:"type:varchar(100);not null;index" json:"category"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	MinimumStock int             `gorm:"not null" json:"minimum_stock"`
	Location     string          `gorm:"type:varchar(200)" json:"location"`
}

// TableName specifies the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a new inventory item with validation.
// The starting quantity is recorded on the aggregate; the matching
// InitialStock transaction is appended by the application layer so both
// land in the same atomic unit.
func NewInventoryItem(name, sku, category string, unitPrice decimal.Decimal, quantity, minimumStock int, description, location string) (*InventoryItem, error) {
	name = strings.TrimSpace(name)
	sku = strings.TrimSpace(sku)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Item name is required")
	}
	if sku == "" {
		return nil, shared.ErrInvalidInput.WithMessage("SKU is required")
	}
	if category == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Category is required")
	}
	if unitPrice.IsNegative() {
		return nil, shared.ErrInvalidInput.WithMessage("Unit price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.ErrInvalidInput.WithMessage("Quantity cannot be negative")
	}
	if minimumStock < 0 {
		return nil, shared.ErrInvalidInput.WithMessage("Minimum stock cannot be negative")
	}

	return &InventoryItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		SKU:               sku,
		Category:          category,
		UnitPrice:         unitPrice,
		Quantity:          quantity,
		MinimumStock:      minimumStock,
		Location:          location,
	}, nil
}

// IsLowStock reports whether the item is at or below its minimum
// threshold. True at equality, not only strictly below.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinimumStock
}

// IsOutOfStock reports whether the item has no stock at all
func (i *InventoryItem) IsOutOfStock() bool {
	return i.Quantity == 0
}

// InventoryValue returns unit price times quantity on hand
func (i *InventoryItem) InventoryValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// UpdateDetails updates the descriptive fields of the item. Quantity is
// deliberately not settable here; it changes only through the ledger.
func (i *InventoryItem) UpdateDetails(name, description, category string, unitPrice decimal.Decimal, minimumStock int, location string) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return shared.ErrInvalidInput.WithMessage("Item name is required")
	}
	if category == "" {
		return shared.ErrInvalidInput.WithMessage("Category is required")
	}
	if unitPrice.IsNegative() {
		return shared.ErrInvalidInput.WithMessage("Unit price cannot be negative")
	}
	if minimumStock < 0 {
		return shared.ErrInvalidInput.WithMessage("Minimum stock cannot be negative")
	}

	i.Name = name
	i.Description = description
	i.Category = category
	i.UnitPrice = unitPrice
	i.MinimumStock = minimumStock
	i.Location = location
	i.Touch()
	return nil
}

// ApplyTransaction applies a stock transaction to the item: it computes
// the post-transaction quantity per kind, mutates the item, and returns
// the matching audit record. On any error the item is left untouched.
//
// Kind semantics:
//   - StockIn: quantity increases by the requested amount.
//   - StockOut: quantity decreases; fails with InsufficientStock when the
//     requested amount exceeds what is on hand.
//   - Adjustment: quantity is set to the requested amount (absolute).
//   - InitialStock: like Adjustment, used once at creation with previous 0.
func (i *InventoryItem) ApplyTransaction(kind TransactionKind, quantity int, notes, performedBy string) (*StockTransaction, error) {
	if !kind.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage(
			fmt.Sprintf("Invalid transaction type: %s", kind))
	}

	previous := i.Quantity
	var next int

	switch kind {
	case TransactionKindStockIn:
		if quantity <= 0 {
			return nil, shared.ErrInvalidInput.WithMessage("Quantity must be positive")
		}
		next = previous + quantity
	case TransactionKindStockOut:
		if quantity <= 0 {
			return nil, shared.ErrInvalidInput.WithMessage("Quantity must be positive")
		}
		if previous < quantity {
			return nil, shared.ErrInsufficientStock.WithMessage(
				fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", previous, quantity))
		}
		next = previous - quantity
	case TransactionKindAdjustment:
		if quantity < 0 {
			return nil, shared.ErrInvalidInput.WithMessage("Quantity cannot be negative")
		}
		next = quantity
	case TransactionKindInitialStock:
		if quantity < 0 {
			return nil, shared.ErrInvalidInput.WithMessage("Quantity cannot be negative")
		}
		previous = 0
		next = quantity
	}

	i.Quantity = next
	i.Touch()

	return NewStockTransaction(i.ID, kind, quantity, previous, next, notes, performedBy), nil
}
