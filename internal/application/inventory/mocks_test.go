package inventory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/inventory"
	"github.com/stocktrack/backend/internal/domain/shared"
)

// mockItemRepository is an in-memory InventoryItemRepository. It stores
// copies so service-side mutations only become visible through Save or
// SaveWithLock, mirroring real persistence.
type mockItemRepository struct {
	mu     sync.Mutex
	items  map[int64]inventory.InventoryItem
	nextID int64

	saveErr     error
	saveLockErr error
}

func newMockItemRepository() *mockItemRepository {
	return &mockItemRepository{items: make(map[int64]inventory.InventoryItem), nextID: 1}
}

func (m *mockItemRepository) put(item *inventory.InventoryItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == 0 {
		item.ID = m.nextID
		m.nextID++
	} else if item.ID >= m.nextID {
		m.nextID = item.ID + 1
	}
	m.items[item.ID] = *item
}

func (m *mockItemRepository) Save(_ context.Context, item *inventory.InventoryItem) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.put(item)
	return nil
}

func (m *mockItemRepository) SaveWithLock(_ context.Context, item *inventory.InventoryItem) error {
	if m.saveLockErr != nil {
		return m.saveLockErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.items[item.ID]
	if !ok {
		return shared.ErrNotFound
	}
	if stored.Version != item.Version {
		return shared.ErrConcurrencyConflict
	}
	item.IncrementVersion()
	m.items[item.ID] = *item
	return nil
}

func (m *mockItemRepository) FindByID(_ context.Context, id int64) (*inventory.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := item
	return &copied, nil
}

func (m *mockItemRepository) FindBySKU(_ context.Context, sku string) (*inventory.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.SKU == sku {
			copied := item
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockItemRepository) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockItemRepository) FindAll(_ context.Context, filter inventory.ItemFilter) ([]*inventory.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*inventory.InventoryItem
	for _, item := range m.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.LowStockOnly && !item.IsLowStock() {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(item.Name), needle) &&
				!strings.Contains(strings.ToLower(item.SKU), needle) &&
				!strings.Contains(strings.ToLower(item.Description), needle) {
				continue
			}
		}
		copied := item
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockItemRepository) FindLowStock(_ context.Context) ([]*inventory.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*inventory.InventoryItem
	for _, item := range m.items {
		if item.IsLowStock() {
			copied := item
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Quantity < result[j].Quantity })
	return result, nil
}

func (m *mockItemRepository) ListCategories(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]struct{})
	var categories []string
	for _, item := range m.items {
		if _, ok := seen[item.Category]; !ok {
			seen[item.Category] = struct{}{}
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (m *mockItemRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockItemRepository) Summarize(_ context.Context) (*inventory.StockSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	summary := &inventory.StockSummary{TotalInventoryValue: decimal.Zero}
	for _, item := range m.items {
		summary.TotalItems++
		switch {
		case item.IsOutOfStock():
			summary.OutOfStockItems++
		case item.IsLowStock():
			summary.LowStockItems++
		}
		summary.TotalInventoryValue = summary.TotalInventoryValue.Add(item.InventoryValue())
	}
	return summary, nil
}

func (m *mockItemRepository) CategoryBreakdown(_ context.Context) ([]inventory.CategoryStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byCategory := make(map[string]*inventory.CategoryStat)
	for _, item := range m.items {
		stat, ok := byCategory[item.Category]
		if !ok {
			stat = &inventory.CategoryStat{Category: item.Category, TotalValue: decimal.Zero}
			byCategory[item.Category] = stat
		}
		stat.ItemCount++
		stat.TotalQuantity += int64(item.Quantity)
		stat.TotalValue = stat.TotalValue.Add(item.InventoryValue())
	}
	result := make([]inventory.CategoryStat, 0, len(byCategory))
	for _, stat := range byCategory {
		result = append(result, *stat)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalValue.GreaterThan(result[j].TotalValue)
	})
	return result, nil
}

var _ inventory.InventoryItemRepository = (*mockItemRepository)(nil)

// mockTransactionRepository is an in-memory StockTransactionRepository.
// It resolves item display fields for FindRecent through the paired item
// repository.
type mockTransactionRepository struct {
	mu     sync.Mutex
	txns   []inventory.StockTransaction
	nextID int64
	items  *mockItemRepository

	appendErr error
}

func newMockTransactionRepository(items *mockItemRepository) *mockTransactionRepository {
	return &mockTransactionRepository{nextID: 1, items: items}
}

func (m *mockTransactionRepository) Append(_ context.Context, txn *inventory.StockTransaction) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	txn.ID = m.nextID
	m.nextID++
	m.txns = append(m.txns, *txn)
	return nil
}

func (m *mockTransactionRepository) FindByItemID(_ context.Context, itemID int64, limit int) ([]*inventory.StockTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*inventory.StockTransaction
	for i := len(m.txns) - 1; i >= 0 && len(result) < limit; i-- {
		if m.txns[i].ItemID == itemID {
			copied := m.txns[i]
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockTransactionRepository) FindRecent(ctx context.Context, limit int) ([]inventory.TransactionView, error) {
	m.mu.Lock()
	txns := make([]inventory.StockTransaction, len(m.txns))
	copy(txns, m.txns)
	m.mu.Unlock()

	var result []inventory.TransactionView
	for i := len(txns) - 1; i >= 0 && len(result) < limit; i-- {
		view := inventory.TransactionView{StockTransaction: txns[i]}
		if item, err := m.items.FindByID(ctx, txns[i].ItemID); err == nil {
			view.ItemName = item.Name
			view.ItemSKU = item.SKU
		}
		result = append(result, view)
	}
	return result, nil
}

func (m *mockTransactionRepository) DeleteByItemID(_ context.Context, itemID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.txns[:0]
	for _, txn := range m.txns {
		if txn.ItemID != itemID {
			kept = append(kept, txn)
		}
	}
	m.txns = kept
	return nil
}

func (m *mockTransactionRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.txns)
}

var _ inventory.StockTransactionRepository = (*mockTransactionRepository)(nil)
