package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stocktrack/backend/internal/domain/inventory"
	"github.com/stocktrack/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// Save persists a new item or updates an existing one
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

// SaveWithLock updates an existing item with an optimistic-lock check.
// The row must still carry the version the item was loaded with; the
// in-memory version is bumped only after the update sticks.
func (r *GormInventoryItemRepository) SaveWithLock(ctx context.Context, item *inventory.InventoryItem) error {
	result := r.db.WithContext(ctx).
		Model(item).
		Where("id = ? AND version = ?", item.ID, item.Version).
		Updates(map[string]interface{}{
			"name":          item.Name,
			"description":   item.Description,
			"category":      item.Category,
			"unit_price":    item.UnitPrice,
			"quantity":      item.Quantity,
			"minimum_stock": item.MinimumStock,
			"location":      item.Location,
			"version":       item.Version + 1,
			"updated_at":    item.UpdatedAt,
		})

	if result.Error != nil {
		return translateUniqueViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	item.IncrementVersion()
	return nil
}

// FindByID finds an inventory item by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id int64) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindBySKU finds an inventory item by its SKU
func (r *GormInventoryItemRepository) FindBySKU(ctx context.Context, sku string) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ExistsBySKU reports whether any item carries the SKU
func (r *GormInventoryItemRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Where("sku = ?", sku).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll lists items matching the filter, ordered by name ascending
func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.InventoryItem, error) {
	var items []*inventory.InventoryItem
	query := r.db.WithContext(ctx).Model(&inventory.InventoryItem{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.LowStockOnly {
		query = query.Where("quantity <= minimum_stock")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR sku ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := query.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindLowStock lists low-stock items ordered by quantity ascending
func (r *GormInventoryItemRepository) FindLowStock(ctx context.Context) ([]*inventory.InventoryItem, error) {
	var items []*inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("quantity <= minimum_stock").
		Order("quantity ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListCategories returns the distinct categories sorted ascending
func (r *GormInventoryItemRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete removes the item. Its transactions go with it via the foreign
// key's ON DELETE CASCADE.
func (r *GormInventoryItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&inventory.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Summarize computes the dashboard counters in one pass
func (r *GormInventoryItemRepository) Summarize(ctx context.Context) (*inventory.StockSummary, error) {
	var summary inventory.StockSummary
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Select(
			"COUNT(*) AS total_items, " +
				"COALESCE(SUM(CASE WHEN quantity <= minimum_stock AND quantity > 0 THEN 1 ELSE 0 END), 0) AS low_stock_items, " +
				"COALESCE(SUM(CASE WHEN quantity = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock_items, " +
				"COALESCE(SUM(unit_price * quantity), 0) AS total_inventory_value",
		).
		Scan(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// CategoryBreakdown aggregates per category, ordered by total value descending
func (r *GormInventoryItemRepository) CategoryBreakdown(ctx context.Context) ([]inventory.CategoryStat, error) {
	var stats []inventory.CategoryStat
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Select(
			"category, " +
				"COUNT(*) AS item_count, " +
				"COALESCE(SUM(quantity), 0) AS total_quantity, " +
				"COALESCE(SUM(unit_price * quantity), 0) AS total_value",
		).
		Group("category").
		Order("total_value DESC").
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// translateUniqueViolation maps a PostgreSQL duplicate-key error onto
// the domain's AlreadyExists error.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return shared.ErrAlreadyExists
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}

// Ensure GormInventoryItemRepository implements InventoryItemRepository
var _ inventory.InventoryItemRepository = (*GormInventoryItemRepository)(nil)
