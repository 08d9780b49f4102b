package inventory

import (
	"context"

	"github.com/stocktrack/backend/internal/domain/inventory"
)

const recentActivityLimit = 10

// DashboardService serves the aggregate views: summary statistics and
// the low-stock alerts feed. Read-only, no transaction scope needed.
type DashboardService struct {
	itemRepo inventory.InventoryItemRepository
	txnRepo  inventory.StockTransactionRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(itemRepo inventory.InventoryItemRepository, txnRepo inventory.StockTransactionRepository) *DashboardService {
	return &DashboardService{itemRepo: itemRepo, txnRepo: txnRepo}
}

// Stats returns the dashboard summary: counters, per-category breakdown
// ordered by total value descending, and the most recent transactions.
// Low-stock and out-of-stock counts are disjoint: an item with zero
// quantity counts as out of stock only.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStatsResponse, error) {
	summary, err := s.itemRepo.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.itemRepo.CategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.txnRepo.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	stats := make([]CategoryStatResponse, 0, len(breakdown))
	for _, cat := range breakdown {
		stats = append(stats, CategoryStatResponse{
			Category:      cat.Category,
			ItemCount:     cat.ItemCount,
			TotalQuantity: cat.TotalQuantity,
			TotalValue:    cat.TotalValue,
		})
	}

	return &DashboardStatsResponse{
		TotalItems:          summary.TotalItems,
		LowStockItems:       summary.LowStockItems,
		OutOfStockItems:     summary.OutOfStockItems,
		TotalInventoryValue: summary.TotalInventoryValue,
		CategoryBreakdown:   stats,
		RecentTransactions:  ToTransactionViewResponses(recent),
	}, nil
}

// Alerts returns every low-stock item as an alert, ordered by quantity
// ascending, with the total and critical counts.
func (s *DashboardService) Alerts(ctx context.Context) (*AlertsResponse, error) {
	items, err := s.itemRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]AlertResponse, 0, len(items))
	critical := 0
	for _, item := range items {
		alert := inventory.DeriveAlert(item)
		if alert == nil {
			continue
		}
		if alert.Level == inventory.AlertLevelCritical {
			critical++
		}
		alerts = append(alerts, *ToAlertResponse(alert))
	}

	return &AlertsResponse{
		TotalAlerts:    len(alerts),
		CriticalAlerts: critical,
		Alerts:         alerts,
	}, nil
}
