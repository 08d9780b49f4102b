package inventory

import (
	"context"

	"github.com/stocktrack/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the inventory
// repositories. All repository operations performed inside Execute are
// part of one database transaction and commit or roll back together.
type TransactionScope interface {
	// Execute runs fn within a database transaction. A returned error
	// rolls the transaction back; nil commits it.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the repositories scoped to the
// current transaction. The item mutation and the matching transaction
// append always travel through the same scope so a stock change can
// never land without its audit record or vice versa.
type TransactionalRepositories interface {
	// ItemRepo returns the item repository scoped to the transaction
	ItemRepo() inventory.InventoryItemRepository
	// TransactionRepo returns the transaction log repository scoped to
	// the transaction
	TransactionRepo() inventory.StockTransactionRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in unit tests where repositories are in-memory fakes.
type NoOpTransactionScope struct {
	itemRepo inventory.InventoryItemRepository
	txnRepo  inventory.StockTransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given
// repositories.
func NewNoOpTransactionScope(itemRepo inventory.InventoryItemRepository, txnRepo inventory.StockTransactionRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{itemRepo: itemRepo, txnRepo: txnRepo}
}

// Execute runs fn directly, without transactional guarantees.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ItemRepo returns the item repository
func (s *NoOpTransactionScope) ItemRepo() inventory.InventoryItemRepository {
	return s.itemRepo
}

// TransactionRepo returns the transaction log repository
func (s *NoOpTransactionScope) TransactionRepo() inventory.StockTransactionRepository {
	return s.txnRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
