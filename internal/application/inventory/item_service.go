package inventory

import (
	"context"
	"fmt"

	"github.com/stocktrack/backend/internal/domain/inventory"
	"github.com/stocktrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const recentHistoryPerItem = 10

// ItemService implements the inventory directory: item CRUD, filtered
// listing, category and low-stock queries. Creation also writes the
// item's InitialStock ledger entry in the same atomic unit.
type ItemService struct {
	scope    TransactionScope
	itemRepo inventory.InventoryItemRepository
	txnRepo  inventory.StockTransactionRepository
	logger   *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(
	scope TransactionScope,
	itemRepo inventory.InventoryItemRepository,
	txnRepo inventory.StockTransactionRepository,
	logger *zap.Logger,
) *ItemService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemService{
		scope:    scope,
		itemRepo: itemRepo,
		txnRepo:  txnRepo,
		logger:   logger,
	}
}

// CreateItem creates a new item. A duplicate SKU fails with AlreadyExists
// and writes nothing. On success the starting quantity is recorded as an
// InitialStock transaction in the same database transaction as the item.
func (s *ItemService) CreateItem(ctx context.Context, input CreateItemInput) (*ItemResponse, error) {
	item, err := inventory.NewInventoryItem(
		input.Name, input.SKU, input.Category,
		input.UnitPrice, input.Quantity, input.MinimumStock,
		input.Description, input.Location,
	)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.ItemRepo().ExistsBySKU(ctx, item.SKU)
		if err != nil {
			return err
		}
		if exists {
			return shared.ErrAlreadyExists.WithMessage(
				fmt.Sprintf("An item with SKU '%s' already exists", item.SKU))
		}

		if err := repos.ItemRepo().Save(ctx, item); err != nil {
			return err
		}

		txn, err := item.ApplyTransaction(
			inventory.TransactionKindInitialStock, item.Quantity,
			"Initial stock entry", "System",
		)
		if err != nil {
			return err
		}
		return repos.TransactionRepo().Append(ctx, txn)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("inventory item created",
		zap.Int64("item_id", item.ID),
		zap.String("sku", item.SKU),
		zap.Int("quantity", item.Quantity),
	)

	resp := ToItemResponse(item)
	return &resp, nil
}

// UpdateItem updates the descriptive fields of an item. Quantity and SKU
// are not settable through this path.
func (s *ItemService) UpdateItem(ctx context.Context, id int64, input UpdateItemInput) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.UpdateDetails(
		input.Name, input.Description, input.Category,
		input.UnitPrice, input.MinimumStock, input.Location,
	); err != nil {
		return nil, err
	}

	if err := s.itemRepo.SaveWithLock(ctx, item); err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// DeleteItem removes an item and its whole transaction history in one
// atomic unit.
func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ItemRepo().FindByID(ctx, id); err != nil {
			return err
		}
		if err := repos.TransactionRepo().DeleteByItemID(ctx, id); err != nil {
			return err
		}
		return repos.ItemRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("inventory item deleted", zap.Int64("item_id", id))
	return nil
}

// GetItem returns one item with its most recent transactions attached
func (s *ItemService) GetItem(ctx context.Context, id int64) (*ItemDetailResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindByItemID(ctx, id, recentHistoryPerItem)
	if err != nil {
		return nil, err
	}

	return &ItemDetailResponse{
		ItemResponse:       ToItemResponse(item),
		RecentTransactions: ToTransactionResponses(txns),
	}, nil
}

// ListItems lists items matching the filter, ordered by name ascending
func (s *ItemService) ListItems(ctx context.Context, input ListItemsInput) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx, inventory.ItemFilter{
		Category:     input.Category,
		LowStockOnly: input.LowStockOnly,
		Search:       input.Search,
	})
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// ListCategories returns the distinct item categories, sorted ascending
func (s *ItemService) ListCategories(ctx context.Context) ([]string, error) {
	return s.itemRepo.ListCategories(ctx)
}

// ListLowStock returns low-stock items ordered by quantity ascending
func (s *ItemService) ListLowStock(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}
