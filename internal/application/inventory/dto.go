package inventory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/inventory"
)

// CreateItemInput carries the fields for creating an item
type CreateItemInput struct {
	Name         string
	SKU          string
	Category     string
	UnitPrice    decimal.Decimal
	Quantity     int
	MinimumStock int
	Description  string
	Location     string
}

// UpdateItemInput carries the descriptive fields for updating an item.
// Quantity and SKU are deliberately absent: quantity changes only through
// the ledger, and the SKU is fixed at creation.
type UpdateItemInput struct {
	Name         string
	Description  string
	Category     string
	UnitPrice    decimal.Decimal
	MinimumStock int
	Location     string
}

// ApplyTransactionInput carries one stock transaction request
type ApplyTransactionInput struct {
	ItemID      int64
	Kind        string
	Quantity    int
	Notes       string
	PerformedBy string
}

// ListItemsInput carries the listing filters
type ListItemsInput struct {
	Category     string
	LowStockOnly bool
	Search       string
}

// ItemResponse is the API representation of an item
type ItemResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	SKU            string          `json:"sku"`
	Category       string          `json:"category"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	MinimumStock   int             `json:"minimum_stock"`
	Location       string          `json:"location,omitempty"`
	IsLowStock     bool            `json:"is_low_stock"`
	IsOutOfStock   bool            `json:"is_out_of_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ItemDetailResponse is an item together with its recent history
type ItemDetailResponse struct {
	ItemResponse
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// TransactionResponse is the API representation of a stock transaction
type TransactionResponse struct {
	ID               int64     `json:"id"`
	ItemID           int64     `json:"item_id"`
	Kind             string    `json:"kind"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Notes            string    `json:"notes,omitempty"`
	PerformedBy      string    `json:"performed_by"`
	CreatedAt        time.Time `json:"created_at"`
}

// TransactionViewResponse adds the owning item's display fields for
// cross-item listings
type TransactionViewResponse struct {
	TransactionResponse
	ItemName string `json:"item_name"`
	ItemSKU  string `json:"item_sku"`
}

// AlertResponse is the API representation of a low-stock alert
type AlertResponse struct {
	ItemID          int64  `json:"item_id"`
	ItemName        string `json:"item_name"`
	SKU             string `json:"sku"`
	CurrentQuantity int    `json:"current_quantity"`
	MinimumStock    int    `json:"minimum_stock"`
	Level           string `json:"level"`
	Message         string `json:"message"`
}

// ApplyTransactionResponse is the result of one ledger application.
// Alert is nil when the post-transaction item is above its threshold.
type ApplyTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Item        ItemResponse        `json:"item"`
	Alert       *AlertResponse      `json:"alert,omitempty"`
}

// CategoryStatResponse is one row of the dashboard category breakdown
type CategoryStatResponse struct {
	Category      string          `json:"category"`
	ItemCount     int64           `json:"item_count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// DashboardStatsResponse aggregates the dashboard view
type DashboardStatsResponse struct {
	TotalItems          int64                     `json:"total_items"`
	LowStockItems       int64                     `json:"low_stock_items"`
	OutOfStockItems     int64                     `json:"out_of_stock_items"`
	TotalInventoryValue decimal.Decimal           `json:"total_inventory_value"`
	CategoryBreakdown   []CategoryStatResponse    `json:"category_breakdown"`
	RecentTransactions  []TransactionViewResponse `json:"recent_transactions"`
}

// AlertsResponse is the alerts feed
type AlertsResponse struct {
	TotalAlerts    int             `json:"total_alerts"`
	CriticalAlerts int             `json:"critical_alerts"`
	Alerts         []AlertResponse `json:"alerts"`
}

// ToItemResponse maps a domain item to its API representation
func ToItemResponse(item *inventory.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		SKU:            item.SKU,
		Category:       item.Category,
		UnitPrice:      item.UnitPrice,
		Quantity:       item.Quantity,
		MinimumStock:   item.MinimumStock,
		Location:       item.Location,
		IsLowStock:     item.IsLowStock(),
		IsOutOfStock:   item.IsOutOfStock(),
		InventoryValue: item.InventoryValue(),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

// ToItemResponses maps a slice of domain items
func ToItemResponses(items []*inventory.InventoryItem) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(item))
	}
	return responses
}

// ToTransactionResponse maps a domain transaction
func ToTransactionResponse(txn *inventory.StockTransaction) TransactionResponse {
	return TransactionResponse{
		ID:               txn.ID,
		ItemID:           txn.ItemID,
		Kind:             txn.Kind.String(),
		Quantity:         txn.Quantity,
		PreviousQuantity: txn.PreviousQuantity,
		NewQuantity:      txn.NewQuantity,
		Notes:            txn.Notes,
		PerformedBy:      txn.PerformedBy,
		CreatedAt:        txn.CreatedAt,
	}
}

// ToTransactionResponses maps a slice of domain transactions
func ToTransactionResponses(txns []*inventory.StockTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, ToTransactionResponse(txn))
	}
	return responses
}

// ToTransactionViewResponse maps a joined transaction view
func ToTransactionViewResponse(view inventory.TransactionView) TransactionViewResponse {
	return TransactionViewResponse{
		TransactionResponse: ToTransactionResponse(&view.StockTransaction),
		ItemName:            view.ItemName,
		ItemSKU:             view.ItemSKU,
	}
}

// ToTransactionViewResponses maps a slice of joined transaction views
func ToTransactionViewResponses(views []inventory.TransactionView) []TransactionViewResponse {
	responses := make([]TransactionViewResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, ToTransactionViewResponse(view))
	}
	return responses
}

// ToAlertResponse maps a domain alert; nil maps to nil
func ToAlertResponse(alert *inventory.Alert) *AlertResponse {
	if alert == nil {
		return nil
	}
	return &AlertResponse{
		ItemID:          alert.ItemID,
		ItemName:        alert.ItemName,
		SKU:             alert.SKU,
		CurrentQuantity: alert.CurrentQuantity,
		MinimumStock:    alert.MinimumStock,
		Level:           alert.Level.String(),
		Message:         alert.Message,
	}
}
