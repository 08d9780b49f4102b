package persistence

import (
	"context"

	"github.com/stocktrack/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormStockTransactionRepository implements StockTransactionRepository using GORM
type GormStockTransactionRepository struct {
	db *gorm.DB
}

// NewGormStockTransactionRepository creates a new GormStockTransactionRepository
func NewGormStockTransactionRepository(db *gorm.DB) *GormStockTransactionRepository {
	return &GormStockTransactionRepository{db: db}
}

// Append inserts a new transaction record
func (r *GormStockTransactionRepository) Append(ctx context.Context, txn *inventory.StockTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// FindByItemID lists an item's transactions newest first, up to limit
func (r *GormStockTransactionRepository) FindByItemID(ctx context.Context, itemID int64, limit int) ([]*inventory.StockTransaction, error) {
	var txns []*inventory.StockTransaction
	query := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// FindRecent lists the most recent transactions across all items, newest
// first, joined with each owning item's name and SKU.
func (r *GormStockTransactionRepository) FindRecent(ctx context.Context, limit int) ([]inventory.TransactionView, error) {
	var views []inventory.TransactionView
	query := r.db.WithContext(ctx).
		Model(&inventory.StockTransaction{}).
		Select("stock_transactions.*, inventory_items.name AS item_name, inventory_items.sku AS item_sku").
		Joins("JOIN inventory_items ON inventory_items.id = stock_transactions.item_id").
		Order("stock_transactions.created_at DESC, stock_transactions.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// DeleteByItemID removes an item's whole history
func (r *GormStockTransactionRepository) DeleteByItemID(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).Delete(&inventory.StockTransaction{}, "item_id = ?", itemID).Error
}

// Ensure GormStockTransactionRepository implements StockTransactionRepository
var _ inventory.StockTransactionRepository = (*GormStockTransactionRepository)(nil)
