package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdirectory "github.com/stocktrack/backend/internal/application/directory"
	appinventory "github.com/stocktrack/backend/internal/application/inventory"
	"github.com/stocktrack/backend/internal/domain/directory"
	"github.com/stocktrack/backend/internal/domain/inventory"
	"github.com/stocktrack/backend/internal/domain/shared"
	"github.com/stocktrack/backend/internal/interfaces/http/middleware"
	"github.com/stocktrack/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// memoryItemRepo is an in-memory InventoryItemRepository for handler tests
type memoryItemRepo struct {
	items  map[int64]*inventory.InventoryItem
	nextID int64
}

func newMemoryItemRepo() *memoryItemRepo {
	return &memoryItemRepo{items: make(map[int64]*inventory.InventoryItem), nextID: 1}
}

func (r *memoryItemRepo) Save(_ context.Context, item *inventory.InventoryItem) error {
	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *memoryItemRepo) SaveWithLock(_ context.Context, item *inventory.InventoryItem) error {
	stored, ok := r.items[item.ID]
	if !ok {
		return shared.ErrNotFound
	}
	if stored.Version != item.Version {
		return shared.ErrConcurrencyConflict
	}
	item.IncrementVersion()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *memoryItemRepo) FindByID(_ context.Context, id int64) (*inventory.InventoryItem, error) {
	stored, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound.WithMessage(fmt.Sprintf("Item with ID %d not found", id))
	}
	copied := *stored
	return &copied, nil
}

func (r *memoryItemRepo) FindBySKU(_ context.Context, sku string) (*inventory.InventoryItem, error) {
	for _, stored := range r.items {
		if stored.SKU == sku {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryItemRepo) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	for _, stored := range r.items {
		if stored.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryItemRepo) FindAll(_ context.Context, filter inventory.ItemFilter) ([]*inventory.InventoryItem, error) {
	var result []*inventory.InventoryItem
	for _, stored := range r.items {
		if filter.Category != "" && stored.Category != filter.Category {
			continue
		}
		if filter.LowStockOnly && !stored.IsLowStock() {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(stored.Name), needle) &&
				!strings.Contains(strings.ToLower(stored.SKU), needle) &&
				!strings.Contains(strings.ToLower(stored.Description), needle) {
				continue
			}
		}
		copied := *stored
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *memoryItemRepo) FindLowStock(_ context.Context) ([]*inventory.InventoryItem, error) {
	var result []*inventory.InventoryItem
	for _, stored := range r.items {
		if stored.IsLowStock() {
			copied := *stored
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Quantity < result[j].Quantity })
	return result, nil
}

func (r *memoryItemRepo) ListCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	for _, stored := range r.items {
		seen[stored.Category] = true
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *memoryItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryItemRepo) Summarize(_ context.Context) (*inventory.StockSummary, error) {
	summary := &inventory.StockSummary{TotalInventoryValue: decimal.Zero}
	for _, stored := range r.items {
		summary.TotalItems++
		if stored.IsOutOfStock() {
			summary.OutOfStockItems++
		} else if stored.IsLowStock() {
			summary.LowStockItems++
		}
		summary.TotalInventoryValue = summary.TotalInventoryValue.Add(stored.InventoryValue())
	}
	return summary, nil
}

func (r *memoryItemRepo) CategoryBreakdown(_ context.Context) ([]inventory.CategoryStat, error) {
	byCategory := make(map[string]*inventory.CategoryStat)
	for _, stored := range r.items {
		stat, ok := byCategory[stored.Category]
		if !ok {
			stat = &inventory.CategoryStat{Category: stored.Category, TotalValue: decimal.Zero}
			byCategory[stored.Category] = stat
		}
		stat.ItemCount++
		stat.TotalQuantity += int64(stored.Quantity)
		stat.TotalValue = stat.TotalValue.Add(stored.InventoryValue())
	}
	stats := make([]inventory.CategoryStat, 0, len(byCategory))
	for _, stat := range byCategory {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].TotalValue.GreaterThan(stats[j].TotalValue) })
	return stats, nil
}

// memoryTxnRepo is an in-memory StockTransactionRepository
type memoryTxnRepo struct {
	itemRepo *memoryItemRepo
	txns     []*inventory.StockTransaction
	nextID   int64
}

func newMemoryTxnRepo(itemRepo *memoryItemRepo) *memoryTxnRepo {
	return &memoryTxnRepo{itemRepo: itemRepo, nextID: 1}
}

func (r *memoryTxnRepo) Append(_ context.Context, txn *inventory.StockTransaction) error {
	txn.ID = r.nextID
	r.nextID++
	copied := *txn
	r.txns = append(r.txns, &copied)
	return nil
}

func (r *memoryTxnRepo) FindByItemID(_ context.Context, itemID int64, limit int) ([]*inventory.StockTransaction, error) {
	var result []*inventory.StockTransaction
	for i := len(r.txns) - 1; i >= 0 && len(result) < limit; i-- {
		if r.txns[i].ItemID == itemID {
			copied := *r.txns[i]
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memoryTxnRepo) FindRecent(_ context.Context, limit int) ([]inventory.TransactionView, error) {
	var result []inventory.TransactionView
	for i := len(r.txns) - 1; i >= 0 && len(result) < limit; i-- {
		view := inventory.TransactionView{StockTransaction: *r.txns[i]}
		if item, ok := r.itemRepo.items[r.txns[i].ItemID]; ok {
			view.ItemName = item.Name
			view.ItemSKU = item.SKU
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *memoryTxnRepo) DeleteByItemID(_ context.Context, itemID int64) error {
	kept := r.txns[:0]
	for _, txn := range r.txns {
		if txn.ItemID != itemID {
			kept = append(kept, txn)
		}
	}
	r.txns = kept
	return nil
}

// memoryUserRepo is an in-memory directory.UserRepository
type memoryUserRepo struct {
	users map[string]*directory.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*directory.User)}
}

func (r *memoryUserRepo) Save(_ context.Context, user *directory.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*directory.User, error) {
	stored, ok := r.users[id]
	if !ok {
		return nil, shared.ErrNotFound.WithMessage(fmt.Sprintf("User with ID %s not found", id))
	}
	copied := *stored
	return &copied, nil
}

func (r *memoryUserRepo) FindAll(_ context.Context) ([]*directory.User, error) {
	result := make([]*directory.User, 0, len(r.users))
	for _, stored := range r.users {
		copied := *stored
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	itemRepo := newMemoryItemRepo()
	txnRepo := newMemoryTxnRepo(itemRepo)
	userRepo := newMemoryUserRepo()
	scope := appinventory.NewNoOpTransactionScope(itemRepo, txnRepo)

	itemService := appinventory.NewItemService(scope, itemRepo, txnRepo, nil)
	ledgerService := appinventory.NewLedgerService(scope, itemRepo, txnRepo, nil)
	dashboardService := appinventory.NewDashboardService(itemRepo, txnRepo)
	userService := appdirectory.NewUserService(userRepo, nil)

	engine := gin.New()
	engine.Use(middleware.RequestID())

	NewHealthHandler("stocktrack", "test").Register(engine)

	r := router.NewRouter(engine)
	r.Register(NewInventoryHandler(itemService).Routes())
	r.Register(NewStockHandler(ledgerService).Routes())
	r.Register(NewDashboardHandler(dashboardService).Routes())
	r.Register(NewUserHandler(userService).Routes())
	r.Setup()

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createTestItem(t *testing.T, engine *gin.Engine, sku string, quantity int) int64 {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/items", gin.H{
		"name":          "Widget " + sku,
		"sku":           sku,
		"category":      "Hardware",
		"unit_price":    "2.50",
		"quantity":      quantity,
		"minimum_stock": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"service":"stocktrack"`)
}

func TestCreateItem(t *testing.T) {
	t.Run("creates item with initial stock entry", func(t *testing.T) {
		engine := newTestServer(t)

		id := createTestItem(t, engine, "WID-001", 25)
		assert.Equal(t, int64(1), id)

		w := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/items/%d", id), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Quantity           int `json:"quantity"`
				RecentTransactions []struct {
					Kind        string `json:"kind"`
					NewQuantity int    `json:"new_quantity"`
				} `json:"recent_transactions"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 25, resp.Data.Quantity)
		require.Len(t, resp.Data.RecentTransactions, 1)
		assert.Equal(t, "InitialStock", resp.Data.RecentTransactions[0].Kind)
		assert.Equal(t, 25, resp.Data.RecentTransactions[0].NewQuantity)
	})

	t.Run("duplicate sku conflicts", func(t *testing.T) {
		engine := newTestServer(t)
		createTestItem(t, engine, "WID-002", 10)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/items", gin.H{
			"name":          "Widget Again",
			"sku":           "WID-002",
			"category":      "Hardware",
			"unit_price":    "1.00",
			"quantity":      1,
			"minimum_stock": 1,
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_ALREADY_EXISTS")
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		engine := newTestServer(t)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/items", gin.H{"name": "No SKU"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetItem(t *testing.T) {
	t.Run("unknown item is not found", func(t *testing.T) {
		engine := newTestServer(t)

		w := doJSON(t, engine, http.MethodGet, "/api/v1/items/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("garbage id is a bad request", func(t *testing.T) {
		engine := newTestServer(t)

		w := doJSON(t, engine, http.MethodGet, "/api/v1/items/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateItem(t *testing.T) {
	engine := newTestServer(t)
	id := createTestItem(t, engine, "WID-010", 10)

	w := doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/v1/items/%d", id), gin.H{
		"name":          "Renamed Widget",
		"category":      "Tools",
		"unit_price":    "3.75",
		"minimum_stock": 2,
		"location":      "Aisle 4",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Name     string `json:"name"`
			SKU      string `json:"sku"`
			Quantity int    `json:"quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed Widget", resp.Data.Name)
	assert.Equal(t, "WID-010", resp.Data.SKU)
	assert.Equal(t, 10, resp.Data.Quantity)
}

func TestDeleteItem(t *testing.T) {
	engine := newTestServer(t)
	id := createTestItem(t, engine, "WID-020", 10)

	w := doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/items/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/items/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestApplyTransaction(t *testing.T) {
	t.Run("stock out reduces quantity", func(t *testing.T) {
		engine := newTestServer(t)
		id := createTestItem(t, engine, "WID-030", 20)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/transactions", gin.H{
			"item_id":      id,
			"kind":         "StockOut",
			"quantity":     8,
			"performed_by": "jordan",
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Data struct {
				Transaction struct {
					PreviousQuantity int `json:"previous_quantity"`
					NewQuantity      int `json:"new_quantity"`
				} `json:"transaction"`
				Item struct {
					Quantity int `json:"quantity"`
				} `json:"item"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 20, resp.Data.Transaction.PreviousQuantity)
		assert.Equal(t, 12, resp.Data.Transaction.NewQuantity)
		assert.Equal(t, 12, resp.Data.Item.Quantity)
	})

	t.Run("insufficient stock conflicts", func(t *testing.T) {
		engine := newTestServer(t)
		id := createTestItem(t, engine, "WID-031", 3)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/transactions", gin.H{
			"item_id":      id,
			"kind":         "StockOut",
			"quantity":     10,
			"performed_by": "jordan",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INSUFFICIENT_STOCK")
	})

	t.Run("drop below threshold raises alert", func(t *testing.T) {
		engine := newTestServer(t)
		id := createTestItem(t, engine, "WID-032", 10)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/transactions", gin.H{
			"item_id":      id,
			"kind":         "StockOut",
			"quantity":     9,
			"performed_by": "jordan",
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Data struct {
				Alert *struct {
					Level string `json:"level"`
				} `json:"alert"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data.Alert)
		assert.Equal(t, "high", resp.Data.Alert.Level)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		engine := newTestServer(t)
		id := createTestItem(t, engine, "WID-033", 10)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/transactions", gin.H{
			"item_id":      id,
			"kind":         "Teleport",
			"quantity":     1,
			"performed_by": "jordan",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("initial stock cannot be requested directly", func(t *testing.T) {
		engine := newTestServer(t)
		id := createTestItem(t, engine, "WID-034", 10)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/transactions", gin.H{
			"item_id":      id,
			"kind":         "InitialStock",
			"quantity":     1,
			"performed_by": "jordan",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTransactions(t *testing.T) {
	engine := newTestServer(t)
	id := createTestItem(t, engine, "WID-040", 20)

	for i := 0; i < 3; i++ {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/transactions", gin.H{
			"item_id":      id,
			"kind":         "StockOut",
			"quantity":     2,
			"performed_by": "jordan",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("per item history is newest first", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/transactions/item/%d", id), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []struct {
				NewQuantity int `json:"new_quantity"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 4)
		assert.Equal(t, 14, resp.Data[0].NewQuantity)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/transactions/item/%d?limit=2", id), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 2)
	})

	t.Run("cross item listing carries display fields", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/transactions", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"item_sku":"WID-040"`)
	})

	t.Run("history for unknown item is not found", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/transactions/item/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListItems(t *testing.T) {
	engine := newTestServer(t)
	createTestItem(t, engine, "WID-050", 20)
	createTestItem(t, engine, "WID-051", 3)

	t.Run("low stock filter", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/items?low_stock=true", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "WID-051")
		assert.NotContains(t, w.Body.String(), "WID-050")
	})

	t.Run("search filter", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/items?search=wid-050", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "WID-050")
		assert.NotContains(t, w.Body.String(), "WID-051")
	})

	t.Run("categories endpoint", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/items/categories", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hardware")
	})

	t.Run("low stock endpoint", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/items/low-stock", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "WID-051")
	})
}

func TestDashboard(t *testing.T) {
	engine := newTestServer(t)
	createTestItem(t, engine, "WID-060", 20)
	createTestItem(t, engine, "WID-061", 0)

	t.Run("stats", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/dashboard/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				TotalItems      int64 `json:"total_items"`
				OutOfStockItems int64 `json:"out_of_stock_items"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.Data.TotalItems)
		assert.Equal(t, int64(1), resp.Data.OutOfStockItems)
	})

	t.Run("alerts", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/dashboard/alerts", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				TotalAlerts    int `json:"total_alerts"`
				CriticalAlerts int `json:"critical_alerts"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Data.TotalAlerts)
		assert.Equal(t, 1, resp.Data.CriticalAlerts)
	})
}

func TestUserDirectory(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/users", gin.H{
		"name":  "Jordan Reyes",
		"email": "jordan@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	t.Run("get returns the entry", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/users/"+created.Data.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jordan@example.com")
	})

	t.Run("list returns the entry", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/users", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Jordan Reyes")
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/users", gin.H{
			"name":  "No Email",
			"email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/v1/users/"+created.Data.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, engine, http.MethodGet, "/api/v1/users/"+created.Data.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
