package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

// ItemFilter narrows item listings. Zero values mean "no constraint".
type ItemFilter struct {
	// Category matches exactly when non-empty
	Category string
	// LowStockOnly keeps items with quantity at or below minimum stock
	LowStockOnly bool
	// Search is a case-insensitive substring match over name, SKU and
	// description
	Search string
}

// StockSummary aggregates the dashboard counters across all items
type StockSummary struct {
	TotalItems          int64
	LowStockItems       int64
	OutOfStockItems     int64
	TotalInventoryValue decimal.Decimal
}

// CategoryStat aggregates one category for the dashboard breakdown
type CategoryStat struct {
	Category      string
	ItemCount     int64
	TotalQuantity int64
	TotalValue    decimal.Decimal
}

// TransactionView is a transaction joined with the owning item's display
// fields, used by cross-item history listings.
type TransactionView struct {
	StockTransaction
	ItemName string
	ItemSKU  string
}

// InventoryItemRepository defines the persistence contract for items
type InventoryItemRepository interface {
	// Save persists a new item or updates an existing one
	Save(ctx context.Context, item *InventoryItem) error
	// SaveWithLock updates an existing item with an optimistic-lock
	// check on its version. Returns ErrConcurrencyConflict when the row
	// was changed by another writer since the item was loaded.
	SaveWithLock(ctx context.Context, item *InventoryItem) error
	// FindByID returns the item or ErrNotFound
	FindByID(ctx context.Context, id int64) (*InventoryItem, error)
	// FindBySKU returns the item with the given SKU or ErrNotFound
	FindBySKU(ctx context.Context, sku string) (*InventoryItem, error)
	// ExistsBySKU reports whether any item carries the SKU
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	// FindAll lists items matching the filter, ordered by name ascending
	FindAll(ctx context.Context, filter ItemFilter) ([]*InventoryItem, error)
	// FindLowStock lists low-stock items ordered by quantity ascending
	FindLowStock(ctx context.Context) ([]*InventoryItem, error)
	// ListCategories returns the distinct categories sorted ascending
	ListCategories(ctx context.Context) ([]string, error)
	// Delete removes the item; its transactions are cascade-deleted
	Delete(ctx context.Context, id int64) error
	// Summarize computes the dashboard counters in one pass
	Summarize(ctx context.Context) (*StockSummary, error)
	// CategoryBreakdown aggregates per category, ordered by total value
	// descending
	CategoryBreakdown(ctx context.Context) ([]CategoryStat, error)
}

// StockTransactionRepository defines the persistence contract for the
// append-only transaction log
type StockTransactionRepository interface {
	// Append inserts a new transaction record
	Append(ctx context.Context, txn *StockTransaction) error
	// FindByItemID lists an item's transactions newest first, up to limit
	FindByItemID(ctx context.Context, itemID int64, limit int) ([]*StockTransaction, error)
	// FindRecent lists the most recent transactions across all items,
	// newest first, joined with item name and SKU
	FindRecent(ctx context.Context, limit int) ([]TransactionView, error)
	// DeleteByItemID removes an item's whole history
	DeleteByItemID(ctx context.Context, itemID int64) error
}
