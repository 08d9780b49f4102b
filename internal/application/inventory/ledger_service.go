package inventory

import (
	"context"

	"github.com/stocktrack/backend/internal/domain/inventory"
	"github.com/stocktrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const (
	defaultItemHistoryLimit = 50
	defaultAllHistoryLimit  = 100
	maxHistoryLimit         = 500
)

// LedgerService applies stock transactions to items and serves the
// transaction history. Every application is one atomic unit: the item
// mutation and the appended audit record commit or roll back together,
// and the item save carries an optimistic-lock version check so two
// concurrent stock-outs cannot both spend the same units.
type LedgerService struct {
	scope    TransactionScope
	itemRepo inventory.InventoryItemRepository
	txnRepo  inventory.StockTransactionRepository
	logger   *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	scope TransactionScope,
	itemRepo inventory.InventoryItemRepository,
	txnRepo inventory.StockTransactionRepository,
	logger *zap.Logger,
) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{
		scope:    scope,
		itemRepo: itemRepo,
		txnRepo:  txnRepo,
		logger:   logger,
	}
}

// Apply applies one stock transaction and returns the persisted record,
// the updated item, and a low-stock alert when the post-transaction
// quantity is at or below the minimum threshold.
func (s *LedgerService) Apply(ctx context.Context, input ApplyTransactionInput) (*ApplyTransactionResponse, error) {
	kind, err := inventory.ParseTransactionKind(input.Kind)
	if err != nil {
		return nil, err
	}
	if kind == inventory.TransactionKindInitialStock {
		return nil, shared.ErrInvalidInput.WithMessage(
			"Transaction type InitialStock cannot be requested directly")
	}

	var (
		item *inventory.InventoryItem
		txn  *inventory.StockTransaction
	)

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		item, err = repos.ItemRepo().FindByID(ctx, input.ItemID)
		if err != nil {
			return err
		}

		txn, err = item.ApplyTransaction(kind, input.Quantity, input.Notes, input.PerformedBy)
		if err != nil {
			return err
		}

		if err := repos.ItemRepo().SaveWithLock(ctx, item); err != nil {
			return err
		}
		return repos.TransactionRepo().Append(ctx, txn)
	})
	if err != nil {
		return nil, err
	}

	alert := inventory.DeriveAlert(item)
	if alert != nil {
		s.logger.Warn("low stock alert",
			zap.Int64("item_id", item.ID),
			zap.String("sku", item.SKU),
			zap.Int("quantity", item.Quantity),
			zap.Int("minimum_stock", item.MinimumStock),
			zap.String("level", alert.Level.String()),
		)
	}

	return &ApplyTransactionResponse{
		Transaction: ToTransactionResponse(txn),
		Item:        ToItemResponse(item),
		Alert:       ToAlertResponse(alert),
	}, nil
}

// ListItemTransactions returns one item's history, newest first.
// Fails with NotFound when the item does not exist.
func (s *LedgerService) ListItemTransactions(ctx context.Context, itemID int64, limit int) ([]TransactionResponse, error) {
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindByItemID(ctx, itemID, normalizeLimit(limit, defaultItemHistoryLimit))
	if err != nil {
		return nil, err
	}
	return ToTransactionResponses(txns), nil
}

// ListAllTransactions returns the most recent transactions across all
// items, newest first, with item display fields attached.
func (s *LedgerService) ListAllTransactions(ctx context.Context, limit int) ([]TransactionViewResponse, error) {
	views, err := s.txnRepo.FindRecent(ctx, normalizeLimit(limit, defaultAllHistoryLimit))
	if err != nil {
		return nil, err
	}
	return ToTransactionViewResponses(views), nil
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
